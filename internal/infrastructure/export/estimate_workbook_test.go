package export

import (
	"bytes"
	"testing"

	"orcamentos_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleEstimate() entities.Estimate {
	rate := decimal.RequireFromString("125")
	return entities.Estimate{
		ID:          "e-1",
		ProjectID:   "p-1",
		ClientName:  "Ana",
		ServiceType: entities.ServiceTypeDecoration,
		Status:      entities.EstimateStatusPendente,
		Calculation: entities.Calculation{
			ServiceType:       entities.ServiceTypeDecoration,
			Tier:              "decor1",
			BasePrice:         decimal.RequireFromString("1500"),
			BaseHours:         decimal.RequireFromString("12"),
			AverageMultiplier: decimal.RequireFromString("1"),
			FinalPrice:        decimal.RequireFromString("1500"),
			PriceWithDiscount: decimal.RequireFromString("1500"),
			EstimatedHours:    decimal.RequireFromString("12"),
			HourlyRate:        &rate,
			Efficiency:        entities.EfficiencyBom,
			EnvironmentDetails: []entities.EnvironmentDetail{
				{
					Index:              0,
					Type:               entities.EnvironmentTypeHigh,
					Size:               entities.EnvironmentSizeLarge,
					TypeMultiplier:     decimal.RequireFromString("1.3"),
					SizeMultiplier:     decimal.RequireFromString("1.2"),
					CombinedMultiplier: decimal.RequireFromString("1.56"),
				},
			},
		},
	}
}

func TestWorkbookExporter_Export(t *testing.T) {
	w := NewWorkbookExporter()

	data, err := w.Export(sampleEstimate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed reopening workbook: %v", err)
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) != 2 || sheets[0] != summarySheet || sheets[1] != environmentsSheet {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	if v, _ := xl.GetCellValue(summarySheet, "B3"); v != "p-1" {
		t.Fatalf("expected project p-1, got %q", v)
	}
	if v, _ := xl.GetCellValue(summarySheet, "B17"); v != "1500" {
		t.Fatalf("expected price with discount 1500, got %q", v)
	}
	if v, _ := xl.GetCellValue(summarySheet, "B19"); v != "125" {
		t.Fatalf("expected hourly rate 125, got %q", v)
	}
	if v, _ := xl.GetCellValue(environmentsSheet, "F2"); v != "1.56" {
		t.Fatalf("expected combined multiplier 1.56, got %q", v)
	}
}

func TestWorkbookExporter_AverageMultiplierPrecision(t *testing.T) {
	e := sampleEstimate()
	e.Calculation.AverageMultiplier = decimal.RequireFromString("4.96").Div(decimal.NewFromInt(3))

	data, err := NewWorkbookExporter().Export(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed reopening workbook: %v", err)
	}
	defer xl.Close()

	if v, _ := xl.GetCellValue(summarySheet, "B10"); v != "1.6533" {
		t.Fatalf("expected average multiplier 1.6533, got %q", v)
	}
}

func TestWorkbookExporter_ExportWithoutEnvironments(t *testing.T) {
	e := sampleEstimate()
	e.ServiceType = entities.ServiceTypeDesign
	e.Calculation.EnvironmentDetails = nil
	e.Calculation.HourlyRate = nil

	data, err := NewWorkbookExporter().Export(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed reopening workbook: %v", err)
	}
	defer xl.Close()

	if sheets := xl.GetSheetList(); len(sheets) != 1 {
		t.Fatalf("expected only the summary sheet, got %v", sheets)
	}
	if v, _ := xl.GetCellValue(summarySheet, "B19"); v != "-" {
		t.Fatalf("expected '-' for missing hourly rate, got %q", v)
	}
}

func TestWorkbookExporter_Metadata(t *testing.T) {
	w := NewWorkbookExporter()
	if w.Extension() != ".xlsx" || w.ContentType() != xlsxContentType {
		t.Fatalf("unexpected metadata: %s %s", w.Extension(), w.ContentType())
	}
}
