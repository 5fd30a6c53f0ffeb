package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, zap.NewNop())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":1350,"external_reference":"est-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1700000000000000000" || status != "approved" {
		t.Fatalf("unexpected id/status: %s %s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("response should be json: %v", err)
	}
	if body["external_reference"] != "est-1" || body["transaction_amount"] != float64(1350) || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}

	g = &MercadoPagoGateway{log: zap.NewNop()}
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
