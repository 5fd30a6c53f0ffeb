package response

import (
	"encoding/json"
	"testing"
	"time"

	"orcamentos_arq/internal/domain/entities"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:           "pay-1",
		EstimateID:   "est-1",
		Amount:       1350,
		PaymentType:  entities.PaymentTypeCash,
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromBillingPayment(p)
	if res.PaymentID != "pay-1" || res.EstimateID != "est-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 1350 || res.PaymentType != "cash" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
