package response

import (
	"time"

	"orcamentos_arq/internal/domain/entities"
)

type EstimateResponse struct {
	ID             string                  `json:"id"`
	ProjectID      string                  `json:"projectId"`
	ClientName     string                  `json:"clientName,omitempty"`
	ServiceType    string                  `json:"serviceType"`
	ServiceDetails entities.ServiceDetails `json:"serviceDetails"`
	Calculation    CalculationResponse     `json:"calculation"`
	Price          float64                 `json:"price"`
	Status         string                  `json:"status"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		ClientName:     e.ClientName,
		ServiceType:    string(e.ServiceType),
		ServiceDetails: e.ServiceDetails,
		Calculation:    FromCalculation(e.Calculation),
		Price:          e.Price,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
