package pricing

import (
	"fmt"

	"orcamentos_arq/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Calculator prices quotes against a fixed set of tables. It keeps no state
// between calls and is safe for concurrent use.
type Calculator struct {
	tables    Tables
	validator *validator.Validate
}

func NewCalculator(t Tables) (*Calculator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{tables: t.clone(), validator: newValidator()}, nil
}

// Tables returns a copy of the tables in use.
func (c *Calculator) Tables() Tables {
	return c.tables.clone()
}

// Calculate prices one service. It returns either a complete Calculation or a
// *ValidationError / *ComputationError.
func (c *Calculator) Calculate(serviceType entities.ServiceType, d entities.ServiceDetails) (entities.Calculation, error) {
	if err := c.validate(serviceType, d); err != nil {
		return entities.Calculation{}, err
	}

	var (
		calc entities.Calculation
		err  error
	)
	switch serviceType {
	case entities.ServiceTypeDecoration, entities.ServiceTypeProduction:
		calc, err = c.environmentBase(serviceType, d)
	case entities.ServiceTypeDesign:
		calc, err = c.areaBase(d)
	default:
		err = &ComputationError{Op: "calculate", Err: fmt.Errorf("unknown service type %q", serviceType)}
	}
	if err != nil {
		return entities.Calculation{}, err
	}
	calc.ServiceType = serviceType

	calc.Extras = c.extras(d)
	calc.SurveyFee = c.survey(d)
	calc.Management = c.management(d)

	calc.FinalPrice = calc.PriceBeforeExtras.
		Add(calc.Extras.Value).
		Add(calc.SurveyFee.Value).
		Add(calc.Management.Value)

	calc.DiscountPercentage = decimal.NewFromFloat(d.DiscountPercentage)
	calc.PriceWithDiscount = calc.FinalPrice.Mul(one.Sub(calc.DiscountPercentage.Div(hundred)))
	calc.DiscountValue = calc.FinalPrice.Sub(calc.PriceWithDiscount)

	calc.EstimatedHours = calc.HoursBeforeExtras.
		Add(calc.Extras.Hours).
		Add(calc.SurveyFee.Hours).
		Add(calc.Management.Hours)

	if calc.EstimatedHours.IsPositive() {
		rate := calc.PriceWithDiscount.Div(calc.EstimatedHours)
		calc.HourlyRate = &rate
	}
	calc.Efficiency = c.classify(calc.HourlyRate)

	return calc, nil
}

func (c *Calculator) environmentBase(serviceType entities.ServiceType, d entities.ServiceDetails) (entities.Calculation, error) {
	table, ok := c.tables.environmentTable(serviceType)
	if !ok {
		return entities.Calculation{}, &ComputationError{Op: "environment tier", Err: fmt.Errorf("no environment table for %q", serviceType)}
	}

	count := environmentCount(d)
	tier, overflow, ok := table.tierFor(count)
	if !ok {
		return entities.Calculation{}, &ComputationError{Op: "environment tier", Err: fmt.Errorf("no %s tier for %d environments", serviceType, count)}
	}

	extra := decimal.NewFromInt(int64(overflow))
	basePrice := decimal.NewFromFloat(tier.BasePrice).Add(decimal.NewFromFloat(table.Overflow.Price).Mul(extra))
	baseHours := decimal.NewFromFloat(tier.BaseHours).Add(decimal.NewFromFloat(table.Overflow.Hours).Mul(extra))

	avg, details, err := c.averageMultiplier(d.EnvironmentsConfig)
	if err != nil {
		return entities.Calculation{}, err
	}

	return entities.Calculation{
		Tier:                 tier.Key,
		OverflowEnvironments: overflow,
		BasePrice:            basePrice,
		BaseHours:            baseHours,
		AverageMultiplier:    avg,
		PriceBeforeExtras:    basePrice.Mul(avg),
		HoursBeforeExtras:    baseHours.Mul(avg),
		EnvironmentDetails:   details,
	}, nil
}

// averageMultiplier averages type×size over the configured environments.
// Without configuration the tier is used flat.
func (c *Calculator) averageMultiplier(envs []entities.EnvironmentConfig) (decimal.Decimal, []entities.EnvironmentDetail, error) {
	if len(envs) == 0 {
		return one, nil, nil
	}

	sum := decimal.Zero
	details := make([]entities.EnvironmentDetail, 0, len(envs))
	for i, env := range envs {
		typeMult, ok := c.tables.TypeMultipliers[env.Type]
		if !ok {
			return decimal.Zero, nil, &ComputationError{Op: "multiplier", Err: fmt.Errorf("no type multiplier for %q", env.Type)}
		}
		sizeMult, ok := c.tables.SizeMultipliers[env.Size]
		if !ok {
			return decimal.Zero, nil, &ComputationError{Op: "multiplier", Err: fmt.Errorf("no size multiplier for %q", env.Size)}
		}

		tm, sm := decimal.NewFromFloat(typeMult), decimal.NewFromFloat(sizeMult)
		combined := tm.Mul(sm)
		sum = sum.Add(combined)
		details = append(details, entities.EnvironmentDetail{
			Index:              i,
			Type:               env.Type,
			Size:               env.Size,
			TypeMultiplier:     tm,
			SizeMultiplier:     sm,
			CombinedMultiplier: combined,
		})
	}
	return sum.Div(decimal.NewFromInt(int64(len(envs)))), details, nil
}

func (c *Calculator) areaBase(d entities.ServiceDetails) (entities.Calculation, error) {
	tier, ok := c.tables.Design.tierFor(d.ProjectArea)
	if !ok {
		return entities.Calculation{}, &ComputationError{Op: "area tier", Err: fmt.Errorf("no design tier for %g m²", d.ProjectArea)}
	}

	projectType := d.ProjectType
	if projectType == "" {
		projectType = entities.ProjectTypeNew
	}
	mult, ok := c.tables.ProjectTypeMultipliers[projectType]
	if !ok {
		return entities.Calculation{}, &ComputationError{Op: "multiplier", Err: fmt.Errorf("no project type multiplier for %q", projectType)}
	}

	area := decimal.NewFromFloat(d.ProjectArea)
	m := decimal.NewFromFloat(mult)
	basePrice := area.Mul(decimal.NewFromFloat(tier.PricePerM2))
	baseHours := area.Mul(decimal.NewFromFloat(tier.HoursPerM2))

	return entities.Calculation{
		Tier:              tier.Key,
		BasePrice:         basePrice,
		BaseHours:         baseHours,
		AverageMultiplier: m,
		PriceBeforeExtras: basePrice.Mul(m),
		HoursBeforeExtras: baseHours.Mul(m),
	}, nil
}

func (c *Calculator) extras(d entities.ServiceDetails) entities.LineItem {
	if d.ExtraEnvironments == 0 {
		return entities.LineItem{}
	}
	unit := d.ExtraEnvironmentPrice
	if unit == 0 {
		unit = c.tables.DefaultExtraEnvironmentPrice
	}
	unitPrice := decimal.NewFromFloat(unit)
	value := unitPrice.Mul(decimal.NewFromInt(int64(d.ExtraEnvironments)))
	return entities.LineItem{
		Quantity:  d.ExtraEnvironments,
		UnitPrice: unitPrice,
		Value:     value,
		Hours:     value.Div(decimal.NewFromFloat(c.tables.StandardHourlyRate)),
	}
}

func (c *Calculator) survey(d entities.ServiceDetails) entities.LineItem {
	if d.ServiceModality != entities.ModalityInPerson {
		return entities.LineItem{}
	}
	fee := d.SurveyFee
	if fee == 0 {
		fee = c.tables.DefaultSurveyFee
	}
	value := decimal.NewFromFloat(fee)
	return entities.LineItem{
		Quantity:  1,
		UnitPrice: value,
		Value:     value,
		Hours:     decimal.NewFromFloat(c.tables.SurveyHours),
	}
}

func (c *Calculator) management(d entities.ServiceDetails) entities.LineItem {
	if !d.IncludeManagement {
		return entities.LineItem{}
	}
	fee := d.ManagementFee
	if fee == 0 {
		fee = c.tables.DefaultManagementFee
	}
	value := decimal.NewFromFloat(fee)
	return entities.LineItem{
		Quantity:  1,
		UnitPrice: value,
		Value:     value,
		Hours:     value.Div(decimal.NewFromFloat(c.tables.StandardHourlyRate)),
	}
}

// classify compares the effective hourly rate with the target. An undefined
// rate (no hours) is always Reajustar.
func (c *Calculator) classify(rate *decimal.Decimal) entities.Efficiency {
	if rate == nil {
		return entities.EfficiencyReajustar
	}
	target := decimal.NewFromFloat(c.tables.TargetHourlyRate)
	if rate.GreaterThanOrEqual(target) {
		return entities.EfficiencyOtimo
	}
	floor := target.Mul(one.Sub(decimal.NewFromFloat(c.tables.EfficiencyTolerance)))
	if rate.GreaterThanOrEqual(floor) {
		return entities.EfficiencyBom
	}
	return entities.EfficiencyReajustar
}

// tierFor picks the largest tier not above count; environments beyond it are overflow.
func (t EnvironmentTable) tierFor(count int) (EnvironmentTier, int, bool) {
	idx := -1
	for i, tier := range t.Tiers {
		if tier.Environments <= count {
			idx = i
		}
	}
	if idx < 0 {
		return EnvironmentTier{}, 0, false
	}
	tier := t.Tiers[idx]
	return tier, count - tier.Environments, true
}

// tierFor resolves area into [MinArea, MaxArea); the top tier also takes its MaxArea.
func (a AreaTable) tierFor(area float64) (AreaTier, bool) {
	last := len(a.Tiers) - 1
	for i, tier := range a.Tiers {
		if area < tier.MinArea {
			continue
		}
		if area < tier.MaxArea || (i == last && area == tier.MaxArea) {
			return tier, true
		}
	}
	return AreaTier{}, false
}
