// Package export renders estimates into downloadable documents.
package export

import (
	"fmt"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Resumo"
	environmentsSheet = "Ambientes"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WorkbookExporter writes an estimate as an XLSX workbook with a summary sheet
// and, for environment-priced services, a per-environment breakdown.
type WorkbookExporter struct{}

var _ interfaces.IEstimateExporter = (*WorkbookExporter)(nil)

func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

func (w *WorkbookExporter) ContentType() string { return xlsxContentType }

func (w *WorkbookExporter) Extension() string { return ".xlsx" }

func (w *WorkbookExporter) Export(e entities.Estimate) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	// NewFile starts with "Sheet1"; rename it instead of leaving an empty sheet behind.
	if err := xl.SetSheetName(xl.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(xl, summarySheet, summaryRows(e)); err != nil {
		return nil, err
	}

	if len(e.Calculation.EnvironmentDetails) > 0 {
		if _, err := xl.NewSheet(environmentsSheet); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", environmentsSheet, err)
		}
		if err := writeRows(xl, environmentsSheet, environmentRows(e.Calculation.EnvironmentDetails)); err != nil {
			return nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(xl *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func summaryRows(e entities.Estimate) [][]interface{} {
	c := e.Calculation
	rows := [][]interface{}{
		{"Campo", "Valor"},
		{"Orçamento", e.ID},
		{"Projeto", e.ProjectID},
		{"Cliente", e.ClientName},
		{"Serviço", string(e.ServiceType)},
		{"Status", string(e.Status)},
		{"Faixa", c.Tier},
		{"Preço base", money(c.BasePrice)},
		{"Horas base", money(c.BaseHours)},
		{"Multiplicador médio", factor(c.AverageMultiplier)},
		{"Ambientes extras", money(c.Extras.Value)},
		{"Taxa de levantamento", money(c.SurveyFee.Value)},
		{"Gerenciamento", money(c.Management.Value)},
		{"Preço final", money(c.FinalPrice)},
		{"Desconto (%)", money(c.DiscountPercentage)},
		{"Valor do desconto", money(c.DiscountValue)},
		{"Preço com desconto", money(c.PriceWithDiscount)},
		{"Horas estimadas", money(c.EstimatedHours)},
	}
	if c.HourlyRate != nil {
		rows = append(rows, []interface{}{"Valor hora", money(*c.HourlyRate)})
	} else {
		rows = append(rows, []interface{}{"Valor hora", "-"})
	}
	rows = append(rows, []interface{}{"Eficiência", string(c.Efficiency)})
	if c.OverflowEnvironments > 0 {
		rows = append(rows, []interface{}{"Ambientes acima da faixa", c.OverflowEnvironments})
	}
	return rows
}

func environmentRows(details []entities.EnvironmentDetail) [][]interface{} {
	rows := make([][]interface{}, 0, len(details)+1)
	rows = append(rows, []interface{}{"#", "Tipo", "Tamanho", "Mult. tipo", "Mult. tamanho", "Mult. combinado"})
	for _, d := range details {
		rows = append(rows, []interface{}{
			d.Index + 1,
			string(d.Type),
			string(d.Size),
			factor(d.TypeMultiplier),
			factor(d.SizeMultiplier),
			factor(d.CombinedMultiplier),
		})
	}
	return rows
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func factor(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}
