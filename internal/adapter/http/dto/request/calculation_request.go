package request

import "orcamentos_arq/internal/domain/entities"

// CalculationRequest prices a quote without storing it.
type CalculationRequest struct {
	ServiceType    entities.ServiceType    `json:"serviceType"`
	ServiceDetails entities.ServiceDetails `json:"serviceDetails"`
}
