package request

import "encoding/json"

// BillingPaymentCreateRequest documents the payment route body.
//
// The handler also accepts the Mercado Pago payload unwrapped. `mp_payload`
// is forwarded as raw JSON because the provider schema varies per method.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
