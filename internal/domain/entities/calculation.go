package entities

import "github.com/shopspring/decimal"

// Efficiency classifies the effective hourly rate of a quote against the target rate.
type Efficiency string

const (
	EfficiencyOtimo     Efficiency = "Ótimo"
	EfficiencyBom       Efficiency = "Bom"
	EfficiencyReajustar Efficiency = "Reajustar"
)

// EnvironmentDetail is the multiplier breakdown of one configured environment.
type EnvironmentDetail struct {
	Index              int             `json:"index"`
	Type               EnvironmentType `json:"type"`
	Size               EnvironmentSize `json:"size"`
	TypeMultiplier     decimal.Decimal `json:"typeMultiplier"`
	SizeMultiplier     decimal.Decimal `json:"sizeMultiplier"`
	CombinedMultiplier decimal.Decimal `json:"combinedMultiplier"`
}

// LineItem is a priced addition to the base tier (extras, survey, management).
type LineItem struct {
	Quantity  int             `json:"quantity,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Value     decimal.Decimal `json:"value"`
	Hours     decimal.Decimal `json:"hours"`
}

// Calculation is the result of pricing one ServiceDetails.
//
// Money keeps full precision; rounding to cents happens at presentation.
// HourlyRate is nil when EstimatedHours is zero.
type Calculation struct {
	ServiceType          ServiceType         `json:"serviceType"`
	Tier                 string              `json:"tier"`
	OverflowEnvironments int                 `json:"overflowEnvironments,omitempty"`
	BasePrice            decimal.Decimal     `json:"basePrice"`
	BaseHours            decimal.Decimal     `json:"baseHours"`
	AverageMultiplier    decimal.Decimal     `json:"averageMultiplier"`
	PriceBeforeExtras    decimal.Decimal     `json:"priceBeforeExtras"`
	HoursBeforeExtras    decimal.Decimal     `json:"hoursBeforeExtras"`
	EnvironmentDetails   []EnvironmentDetail `json:"environmentDetails,omitempty"`
	Extras               LineItem            `json:"extras"`
	SurveyFee            LineItem            `json:"surveyFee"`
	Management           LineItem            `json:"management"`
	FinalPrice           decimal.Decimal     `json:"finalPrice"`
	DiscountPercentage   decimal.Decimal     `json:"discountPercentage"`
	DiscountValue        decimal.Decimal     `json:"discountValue"`
	PriceWithDiscount    decimal.Decimal     `json:"priceWithDiscount"`
	EstimatedHours       decimal.Decimal     `json:"estimatedHours"`
	HourlyRate           *decimal.Decimal    `json:"hourlyRate,omitempty"`
	Efficiency           Efficiency          `json:"efficiency"`
}
