package interfaces

import "orcamentos_arq/internal/domain/entities"

// IEstimateExporter renders an estimate as a downloadable document.
type IEstimateExporter interface {
	Export(e entities.Estimate) ([]byte, error)
	ContentType() string
	Extension() string
}
