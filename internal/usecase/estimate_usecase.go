package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrEstimateAlreadyExists   = errors.New("estimate already exists")
	ErrInvalidProjectID        = errors.New("invalid project_id")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
	ErrInvalidStatusTransition = errors.New("invalid estimate status transition")
	ErrEstimateNotPending      = errors.New("estimate is not pending")
	ErrExporterNotConfigured   = errors.New("estimate exporter not configured")
)

// ExportedFile is a rendered estimate ready to be downloaded.
type ExportedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// IEstimateUseCase exposes the estimate lifecycle.
//
//   - CreateEstimate prices the project and stores it as pendente.
//   - Recalculate reprices a pendente estimate with new details.
//   - Approve/Reject/CancelByProjectID drive the status machine.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, projectID, clientName string, serviceType entities.ServiceType, details entities.ServiceDetails) (entities.Estimate, error)
	Recalculate(ctx context.Context, estimateID string, details entities.ServiceDetails) (entities.Estimate, error)
	ApproveByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
	RejectByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
	CancelByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error)
	Export(ctx context.Context, id string) (ExportedFile, error)
}

type EstimateUseCase struct {
	repo       interfaces.IEstimateRepository
	calculator ICalculationUseCase
	exporter   interfaces.IEstimateExporter
	log        *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, calculator ICalculationUseCase, exporter interfaces.IEstimateExporter, log *zap.Logger) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{repo: repo, calculator: calculator, exporter: exporter, log: log}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, projectID, clientName string, serviceType entities.ServiceType, details entities.ServiceDetails) (entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}

	calc, err := u.calculator.Calculate(ctx, serviceType, details)
	if err != nil {
		return entities.Estimate{}, err
	}

	// One estimate per project.
	if existing, err := u.repo.GetByProjectID(ctx, projectID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		ClientName:     strings.TrimSpace(clientName),
		ServiceType:    serviceType,
		ServiceDetails: details,
		Calculation:    calc,
		Price:          priceOf(calc),
		Status:         entities.EstimateStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	u.log.Info("estimate created",
		zap.String("estimate_id", created.ID),
		zap.String("project_id", projectID),
		zap.Float64("price", created.Price))
	return created, nil
}

func (u *EstimateUseCase) Recalculate(ctx context.Context, estimateID string, details entities.ServiceDetails) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status != entities.EstimateStatusPendente {
		return entities.Estimate{}, fmt.Errorf("%w: status is %s", ErrEstimateNotPending, e.Status)
	}

	calc, err := u.calculator.Calculate(ctx, e.ServiceType, details)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.ServiceDetails = details
	e.Calculation = calc
	e.Price = priceOf(calc)
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdateCalculation(ctx, e)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Estimate{}, ErrEstimateNotPending
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.log.Info("estimate recalculated", zap.String("estimate_id", updated.ID), zap.Float64("price", updated.Price))
	return updated, nil
}

func (u *EstimateUseCase) ApproveByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.EstimateStatusAprovado)
}

func (u *EstimateUseCase) RejectByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.EstimateStatusRejeitado)
}

func (u *EstimateUseCase) CancelByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.EstimateStatusCancelado)
}

func (u *EstimateUseCase) updateStatusByProjectID(ctx context.Context, projectID string, status entities.EstimateStatus) (entities.Estimate, error) {
	current, err := u.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Estimate{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, current.Status, status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Estimate{}, fmt.Errorf("%w: %s changed concurrently", ErrInvalidStatusTransition, current.ID)
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	u.log.Info("estimate status changed",
		zap.String("estimate_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Estimate{}, ErrInvalidProjectID
	}

	e, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Export(ctx context.Context, id string) (ExportedFile, error) {
	if u.exporter == nil {
		return ExportedFile{}, ErrExporterNotConfigured
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return ExportedFile{}, err
	}

	data, err := u.exporter.Export(e)
	if err != nil {
		return ExportedFile{}, fmt.Errorf("export estimate %s: %w", e.ID, err)
	}
	return ExportedFile{
		Name:        "orcamento-" + e.ProjectID + u.exporter.Extension(),
		ContentType: u.exporter.ContentType(),
		Data:        data,
	}, nil
}

func priceOf(calc entities.Calculation) float64 {
	return calc.PriceWithDiscount.Round(2).InexactFloat64()
}
