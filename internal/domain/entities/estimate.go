package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (orçamento).
//
// Domain notes:
//   - pendente is the only state in which the quote can be recalculated.
//   - aprovado can still be cancelado; rejeitado and cancelado are final.
type EstimateStatus string

const (
	EstimateStatusPendente  EstimateStatus = "pendente"
	EstimateStatusAprovado  EstimateStatus = "aprovado"
	EstimateStatusRejeitado EstimateStatus = "rejeitado"
	EstimateStatusCancelado EstimateStatus = "cancelado"
)

// CanTransitionTo reports whether the status may move to next.
func (s EstimateStatus) CanTransitionTo(next EstimateStatus) bool {
	switch s {
	case EstimateStatusPendente:
		return next == EstimateStatusAprovado || next == EstimateStatusRejeitado || next == EstimateStatusCancelado
	case EstimateStatusAprovado:
		return next == EstimateStatusCancelado
	}
	return false
}

// Estimate is a persisted quote for one client project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (project_id-index): project_id
//
// Price mirrors Calculation.PriceWithDiscount rounded to cents; it is the
// amount charged when the estimate is paid.
type Estimate struct {
	ID             string         `json:"id"`
	ProjectID      string         `json:"projectId"`
	ClientName     string         `json:"clientName,omitempty"`
	ServiceType    ServiceType    `json:"serviceType"`
	ServiceDetails ServiceDetails `json:"serviceDetails"`
	Calculation    Calculation    `json:"calculation"`
	Price          float64        `json:"price"`
	Status         EstimateStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
