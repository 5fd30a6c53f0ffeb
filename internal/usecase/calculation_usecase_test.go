package usecase

import (
	"context"
	"errors"
	"testing"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/domain/pricing"
	mock_interfaces "orcamentos_arq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newCalculator(t *testing.T) *pricing.Calculator {
	t.Helper()
	calc, err := pricing.NewCalculator(pricing.DefaultTables())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return calc
}

func singleRoom() entities.ServiceDetails {
	return entities.ServiceDetails{
		EnvironmentCount: 1,
		ServiceModality:  entities.ModalityOnline,
		PaymentType:      entities.PaymentTypeCash,
	}
}

func TestCalculationUseCase_Calculate(t *testing.T) {
	t.Run("success is observed with the efficiency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		observer := mock_interfaces.NewMockICalculationObserver(ctrl)
		uc := NewCalculationUseCase(newCalculator(t), observer, zap.NewNop())

		observer.EXPECT().ObserveCalculation(entities.ServiceTypeDecoration, string(entities.EfficiencyBom), gomock.Any())

		calc, err := uc.Calculate(context.Background(), entities.ServiceTypeDecoration, singleRoom())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calc.Tier != "decor1" || calc.FinalPrice.IntPart() != 1500 {
			t.Fatalf("unexpected calculation: %+v", calc)
		}
	})

	t.Run("validation error is observed as invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		observer := mock_interfaces.NewMockICalculationObserver(ctrl)
		uc := NewCalculationUseCase(newCalculator(t), observer, zap.NewNop())

		observer.EXPECT().ObserveCalculation(entities.ServiceTypeDesign, outcomeInvalid, gomock.Any())

		_, err := uc.Calculate(context.Background(), entities.ServiceTypeDesign, singleRoom())
		var verr *pricing.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("nil observer", func(t *testing.T) {
		uc := NewCalculationUseCase(newCalculator(t), nil, nil)
		if _, err := uc.Calculate(context.Background(), entities.ServiceTypeProduction, singleRoom()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		uc := NewCalculationUseCase(newCalculator(t), nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := uc.Calculate(ctx, entities.ServiceTypeProduction, singleRoom()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
