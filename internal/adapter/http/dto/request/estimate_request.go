package request

import (
	"strings"

	"orcamentos_arq/internal/domain/entities"
)

type CreateEstimateRequest struct {
	ProjectID      string                  `json:"projectId" binding:"required"`
	ClientName     string                  `json:"clientName"`
	ServiceType    entities.ServiceType    `json:"serviceType"`
	ServiceDetails entities.ServiceDetails `json:"serviceDetails"`
}

type RecalculateEstimateRequest struct {
	ServiceDetails entities.ServiceDetails `json:"serviceDetails"`
}

// EstimateStatusRequest selects the estimate of a project for approve, reject or cancel.
type EstimateStatusRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
}

func (r EstimateStatusRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}

func (r CreateEstimateRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}

func (r CreateEstimateRequest) ResolveClientName() string {
	return strings.TrimSpace(r.ClientName)
}
