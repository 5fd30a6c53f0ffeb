package interfaces

import (
	"context"
	"errors"

	"orcamentos_arq/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when a conditional write finds
// the item in a different state than expected.
var ErrConditionFailed = errors.New("conditional write failed")

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Lookups return a zero Estimate (empty ID) and a nil error when nothing matches.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
	// UpdateStatusByID moves the estimate from one status to another and fails
	// with ErrConditionFailed when the stored status is not from.
	UpdateStatusByID(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error)
	// UpdateCalculation stores new details, calculation and price for a pending estimate.
	UpdateCalculation(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
