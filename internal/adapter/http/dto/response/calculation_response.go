package response

import (
	"time"

	"orcamentos_arq/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type EnvironmentDetailResponse struct {
	Index              int     `json:"index"`
	Type               string  `json:"type"`
	Size               string  `json:"size"`
	TypeMultiplier     float64 `json:"typeMultiplier"`
	SizeMultiplier     float64 `json:"sizeMultiplier"`
	CombinedMultiplier float64 `json:"combinedMultiplier"`
}

type LineItemResponse struct {
	Quantity  int     `json:"quantity,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Value     float64 `json:"value"`
	Hours     float64 `json:"hours"`
}

// CalculationResponse is the presentation form of a Calculation: money and
// hours are rounded to cents here and nowhere earlier.
type CalculationResponse struct {
	ServiceType          string                      `json:"serviceType"`
	Tier                 string                      `json:"tier"`
	OverflowEnvironments int                         `json:"overflowEnvironments,omitempty"`
	BasePrice            float64                     `json:"basePrice"`
	BaseHours            float64                     `json:"baseHours"`
	AverageMultiplier    float64                     `json:"averageMultiplier"`
	PriceBeforeExtras    float64                     `json:"priceBeforeExtras"`
	HoursBeforeExtras    float64                     `json:"hoursBeforeExtras"`
	EnvironmentDetails   []EnvironmentDetailResponse `json:"environmentDetails,omitempty"`
	Extras               LineItemResponse            `json:"extras"`
	SurveyFee            LineItemResponse            `json:"surveyFee"`
	Management           LineItemResponse            `json:"management"`
	FinalPrice           float64                     `json:"finalPrice"`
	DiscountPercentage   float64                     `json:"discountPercentage"`
	DiscountValue        float64                     `json:"discountValue"`
	PriceWithDiscount    float64                     `json:"priceWithDiscount"`
	EstimatedHours       float64                     `json:"estimatedHours"`
	HourlyRate           *float64                    `json:"hourlyRate,omitempty"`
	Efficiency           string                      `json:"efficiency"`
}

type CalculationInputResponse struct {
	ServiceType    entities.ServiceType    `json:"serviceType"`
	ServiceDetails entities.ServiceDetails `json:"serviceDetails"`
}

type CalculationResultResponse struct {
	Input        CalculationInputResponse `json:"input"`
	Calculation  CalculationResponse      `json:"calculation"`
	CalculatedAt time.Time                `json:"calculatedAt"`
}

func FromCalculationResult(serviceType entities.ServiceType, d entities.ServiceDetails, c entities.Calculation, at time.Time) CalculationResultResponse {
	return CalculationResultResponse{
		Input:        CalculationInputResponse{ServiceType: serviceType, ServiceDetails: d},
		Calculation:  FromCalculation(c),
		CalculatedAt: at.UTC(),
	}
}

func FromCalculation(c entities.Calculation) CalculationResponse {
	res := CalculationResponse{
		ServiceType:          string(c.ServiceType),
		Tier:                 c.Tier,
		OverflowEnvironments: c.OverflowEnvironments,
		BasePrice:            cents(c.BasePrice),
		BaseHours:            cents(c.BaseHours),
		AverageMultiplier:    factor(c.AverageMultiplier),
		PriceBeforeExtras:    cents(c.PriceBeforeExtras),
		HoursBeforeExtras:    cents(c.HoursBeforeExtras),
		Extras:               fromLineItem(c.Extras),
		SurveyFee:            fromLineItem(c.SurveyFee),
		Management:           fromLineItem(c.Management),
		FinalPrice:           cents(c.FinalPrice),
		DiscountPercentage:   cents(c.DiscountPercentage),
		DiscountValue:        cents(c.DiscountValue),
		PriceWithDiscount:    cents(c.PriceWithDiscount),
		EstimatedHours:       cents(c.EstimatedHours),
		Efficiency:           string(c.Efficiency),
	}
	if c.HourlyRate != nil {
		rate := cents(*c.HourlyRate)
		res.HourlyRate = &rate
	}
	for _, d := range c.EnvironmentDetails {
		res.EnvironmentDetails = append(res.EnvironmentDetails, EnvironmentDetailResponse{
			Index:              d.Index,
			Type:               string(d.Type),
			Size:               string(d.Size),
			TypeMultiplier:     factor(d.TypeMultiplier),
			SizeMultiplier:     factor(d.SizeMultiplier),
			CombinedMultiplier: factor(d.CombinedMultiplier),
		})
	}
	return res
}

func fromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		Quantity:  li.Quantity,
		UnitPrice: cents(li.UnitPrice),
		Value:     cents(li.Value),
		Hours:     cents(li.Hours),
	}
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// factor keeps enough places for basePrice * averageMultiplier to reproduce
// priceBeforeExtras at cent precision.
func factor(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}
