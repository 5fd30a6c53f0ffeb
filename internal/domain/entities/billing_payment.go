package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// PaymentStatusFromProvider maps a Mercado Pago status onto ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusNegado
	default:
		return PaymentStatusPendente
	}
}

// BillingPayment is the payment of an approved estimate.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (estimate_id-index): estimate_id
//
// MPPayloadRaw keeps the provider response as received; MPPayload is its
// parsed form when the response is a JSON object.
type BillingPayment struct {
	ID          string        `json:"id"`
	EstimateID  string        `json:"estimateId"`
	Amount      float64       `json:"amount"`
	PaymentType PaymentType   `json:"paymentType"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}
