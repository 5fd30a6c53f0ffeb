package usecase

import (
	"context"
	"errors"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

// ICalculationUseCase prices a quote without persisting it.
type ICalculationUseCase interface {
	Calculate(ctx context.Context, serviceType entities.ServiceType, details entities.ServiceDetails) (entities.Calculation, error)
}

type CalculationUseCase struct {
	calculator *pricing.Calculator
	observer   interfaces.ICalculationObserver
	log        *zap.Logger
}

var _ ICalculationUseCase = (*CalculationUseCase)(nil)

// NewCalculationUseCase wires the calculator. observer may be nil.
func NewCalculationUseCase(calculator *pricing.Calculator, observer interfaces.ICalculationObserver, log *zap.Logger) *CalculationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalculationUseCase{calculator: calculator, observer: observer, log: log}
}

func (u *CalculationUseCase) Calculate(ctx context.Context, serviceType entities.ServiceType, details entities.ServiceDetails) (entities.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Calculation{}, err
	}

	start := time.Now()
	calc, err := u.calculator.Calculate(serviceType, details)
	elapsed := time.Since(start)

	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			u.log.Info("calculation rejected",
				zap.String("service_type", string(serviceType)),
				zap.Int("invalid_fields", len(verr.Fields)))
			u.observe(serviceType, outcomeInvalid, elapsed)
			return entities.Calculation{}, err
		}
		u.log.Error("calculation failed", zap.String("service_type", string(serviceType)), zap.Error(err))
		u.observe(serviceType, outcomeError, elapsed)
		return entities.Calculation{}, err
	}

	u.log.Debug("calculation done",
		zap.String("service_type", string(serviceType)),
		zap.String("tier", calc.Tier),
		zap.Stringer("price_with_discount", calc.PriceWithDiscount),
		zap.String("efficiency", string(calc.Efficiency)),
		zap.Duration("elapsed", elapsed))
	u.observe(serviceType, string(calc.Efficiency), elapsed)
	return calc, nil
}

func (u *CalculationUseCase) observe(serviceType entities.ServiceType, outcome string, elapsed time.Duration) {
	if u.observer != nil {
		u.observer.ObserveCalculation(serviceType, outcome, elapsed)
	}
}
