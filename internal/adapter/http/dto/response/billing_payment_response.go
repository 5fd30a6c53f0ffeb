package response

import (
	"time"

	"orcamentos_arq/internal/domain/entities"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"paymentId"`
	EstimateID  string    `json:"estimateId"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"paymentType,omitempty"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mpPayloadRaw,omitempty"`
	MPPayload    map[string]interface{} `json:"mpPayload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		EstimateID:   p.EstimateID,
		Amount:       p.Amount,
		PaymentType:  string(p.PaymentType),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
