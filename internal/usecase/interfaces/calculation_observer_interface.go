package interfaces

import (
	"time"

	"orcamentos_arq/internal/domain/entities"
)

// ICalculationObserver receives one observation per calculation attempt.
// outcome is the efficiency label, "invalid" or "error".
type ICalculationObserver interface {
	ObserveCalculation(serviceType entities.ServiceType, outcome string, elapsed time.Duration)
}
