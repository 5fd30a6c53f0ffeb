// Package pricing holds the quote calculator and the pricing tables it reads.
package pricing

import (
	"fmt"
	"math"
	"os"

	"orcamentos_arq/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// EnvironmentTier prices a project with a given number of environments.
type EnvironmentTier struct {
	Key          string  `yaml:"key"`
	Environments int     `yaml:"environments"`
	BasePrice    float64 `yaml:"basePrice"`
	BaseHours    float64 `yaml:"baseHours"`
	Description  string  `yaml:"description"`
}

// OverflowRate is added once per environment beyond the largest tier.
type OverflowRate struct {
	Price float64 `yaml:"price"`
	Hours float64 `yaml:"hours"`
}

type EnvironmentTable struct {
	Tiers    []EnvironmentTier `yaml:"tiers"`
	Overflow OverflowRate      `yaml:"overflowEnvironment"`
}

// AreaTier covers [MinArea, MaxArea); the last tier of a table also includes MaxArea.
type AreaTier struct {
	Key         string  `yaml:"key"`
	MinArea     float64 `yaml:"minArea"`
	MaxArea     float64 `yaml:"maxArea"`
	PricePerM2  float64 `yaml:"pricePerM2"`
	HoursPerM2  float64 `yaml:"hoursPerM2"`
	Description string  `yaml:"description"`
}

type AreaTable struct {
	Tiers []AreaTier `yaml:"tiers"`
}

// Tables is the full pricing configuration. It is loaded once and must not be
// mutated after being handed to NewCalculator.
type Tables struct {
	Decoration EnvironmentTable `yaml:"decoration"`
	Production EnvironmentTable `yaml:"production"`
	Design     AreaTable        `yaml:"design"`

	TypeMultipliers        map[entities.EnvironmentType]float64 `yaml:"typeMultipliers"`
	SizeMultipliers        map[entities.EnvironmentSize]float64 `yaml:"sizeMultipliers"`
	ProjectTypeMultipliers map[entities.ProjectType]float64     `yaml:"projectTypeMultipliers"`

	StandardHourlyRate           float64 `yaml:"standardHourlyRate"`
	TargetHourlyRate             float64 `yaml:"targetHourlyRate"`
	EfficiencyTolerance          float64 `yaml:"efficiencyTolerance"`
	DefaultExtraEnvironmentPrice float64 `yaml:"defaultExtraEnvironmentPrice"`
	DefaultSurveyFee             float64 `yaml:"defaultSurveyFee"`
	SurveyHours                  float64 `yaml:"surveyHours"`
	DefaultManagementFee         float64 `yaml:"defaultManagementFee"`
	MaxEnvironments              int     `yaml:"maxEnvironments"`
}

func DefaultTables() Tables {
	return Tables{
		Decoration: EnvironmentTable{
			Tiers: []EnvironmentTier{
				{Key: "decor1", Environments: 1, BasePrice: 1500, BaseHours: 12, Description: "Decoração de 1 ambiente"},
				{Key: "decor2", Environments: 2, BasePrice: 2800, BaseHours: 22, Description: "Decoração de 2 ambientes"},
				{Key: "decor3", Environments: 3, BasePrice: 3900, BaseHours: 30, Description: "Decoração de 3 ambientes"},
			},
			Overflow: OverflowRate{Price: 1200, Hours: 9},
		},
		Production: EnvironmentTable{
			Tiers: []EnvironmentTier{
				{Key: "prod1", Environments: 1, BasePrice: 1000, BaseHours: 8, Description: "Produção de 1 ambiente"},
				{Key: "prod2", Environments: 2, BasePrice: 1800, BaseHours: 14, Description: "Produção de 2 ambientes"},
				{Key: "prod3", Environments: 3, BasePrice: 2500, BaseHours: 19, Description: "Produção de 3 ambientes"},
			},
			Overflow: OverflowRate{Price: 750, Hours: 6},
		},
		Design: AreaTable{
			Tiers: []AreaTier{
				{Key: "area1", MinArea: 20, MaxArea: 50, PricePerM2: 85, HoursPerM2: 0.8, Description: "Projeto de 20 a 50 m²"},
				{Key: "area2", MinArea: 50, MaxArea: 100, PricePerM2: 75, HoursPerM2: 0.7, Description: "Projeto de 50 a 100 m²"},
				{Key: "area3", MinArea: 100, MaxArea: 150, PricePerM2: 65, HoursPerM2: 0.6, Description: "Projeto de 100 a 150 m²"},
				{Key: "area4", MinArea: 150, MaxArea: 200, PricePerM2: 58, HoursPerM2: 0.55, Description: "Projeto de 150 a 200 m²"},
				{Key: "area5", MinArea: 200, MaxArea: 300, PricePerM2: 52, HoursPerM2: 0.5, Description: "Projeto de 200 a 300 m²"},
			},
		},
		TypeMultipliers: map[entities.EnvironmentType]float64{
			entities.EnvironmentTypeStandard: 1.0,
			entities.EnvironmentTypeMedium:   1.3,
			entities.EnvironmentTypeHigh:     1.6,
		},
		SizeMultipliers: map[entities.EnvironmentSize]float64{
			entities.EnvironmentSizeSmall:  1.0,
			entities.EnvironmentSizeMedium: 1.2,
			entities.EnvironmentSizeLarge:  1.5,
		},
		ProjectTypeMultipliers: map[entities.ProjectType]float64{
			entities.ProjectTypeNew:        1.0,
			entities.ProjectTypeRenovation: 1.15,
		},
		StandardHourlyRate:           150,
		TargetHourlyRate:             150,
		EfficiencyTolerance:          0.2,
		DefaultExtraEnvironmentPrice: 1200,
		DefaultSurveyFee:             350,
		SurveyHours:                  4,
		DefaultManagementFee:         2000,
		MaxEnvironments:              10,
	}
}

// LoadTables reads a YAML tables file. An empty path returns DefaultTables.
// Keys missing from the file keep their default values.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read pricing tables: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("failed to parse pricing tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Validate checks the invariants the calculator relies on.
func (t Tables) Validate() error {
	if err := validateEnvironmentTable("decoration", t.Decoration); err != nil {
		return err
	}
	if err := validateEnvironmentTable("production", t.Production); err != nil {
		return err
	}
	if err := validateAreaTable(t.Design); err != nil {
		return err
	}

	for _, k := range []entities.EnvironmentType{entities.EnvironmentTypeStandard, entities.EnvironmentTypeMedium, entities.EnvironmentTypeHigh} {
		if !positive(t.TypeMultipliers[k]) {
			return fmt.Errorf("pricing tables: type multiplier %q must be positive", k)
		}
	}
	for _, k := range []entities.EnvironmentSize{entities.EnvironmentSizeSmall, entities.EnvironmentSizeMedium, entities.EnvironmentSizeLarge} {
		if !positive(t.SizeMultipliers[k]) {
			return fmt.Errorf("pricing tables: size multiplier %q must be positive", k)
		}
	}
	for _, k := range []entities.ProjectType{entities.ProjectTypeNew, entities.ProjectTypeRenovation} {
		if !positive(t.ProjectTypeMultipliers[k]) {
			return fmt.Errorf("pricing tables: project type multiplier %q must be positive", k)
		}
	}

	if !positive(t.StandardHourlyRate) || !positive(t.TargetHourlyRate) {
		return fmt.Errorf("pricing tables: hourly rates must be positive")
	}
	if !(t.EfficiencyTolerance >= 0 && t.EfficiencyTolerance < 1) {
		return fmt.Errorf("pricing tables: efficiencyTolerance must be in [0, 1)")
	}
	if !nonNegative(t.DefaultExtraEnvironmentPrice, t.DefaultSurveyFee, t.SurveyHours, t.DefaultManagementFee) {
		return fmt.Errorf("pricing tables: default fees and survey hours must be finite and not negative")
	}
	largest := t.Decoration.Tiers[len(t.Decoration.Tiers)-1].Environments
	if p := t.Production.Tiers[len(t.Production.Tiers)-1].Environments; p > largest {
		largest = p
	}
	if t.MaxEnvironments < largest {
		return fmt.Errorf("pricing tables: maxEnvironments %d is below the largest tier (%d)", t.MaxEnvironments, largest)
	}
	return nil
}

func validateEnvironmentTable(name string, table EnvironmentTable) error {
	if len(table.Tiers) == 0 {
		return fmt.Errorf("pricing tables: %s has no tiers", name)
	}
	if first := table.Tiers[0]; first.Environments != 1 {
		return fmt.Errorf("pricing tables: %s tier %q must start at 1 environment", name, first.Key)
	}
	prev := 0
	for _, tier := range table.Tiers {
		if tier.Key == "" {
			return fmt.Errorf("pricing tables: %s tier without key", name)
		}
		if tier.Environments <= prev {
			return fmt.Errorf("pricing tables: %s tier %q must have more environments than the previous tier", name, tier.Key)
		}
		if !positive(tier.BasePrice, tier.BaseHours) {
			return fmt.Errorf("pricing tables: %s tier %q needs positive finite price and hours", name, tier.Key)
		}
		prev = tier.Environments
	}
	if !nonNegative(table.Overflow.Price, table.Overflow.Hours) {
		return fmt.Errorf("pricing tables: %s overflow rate must be finite and not negative", name)
	}
	return nil
}

func validateAreaTable(table AreaTable) error {
	if len(table.Tiers) == 0 {
		return fmt.Errorf("pricing tables: design has no tiers")
	}
	for i, tier := range table.Tiers {
		if tier.Key == "" {
			return fmt.Errorf("pricing tables: design tier without key")
		}
		if !nonNegative(tier.MinArea) || !positive(tier.MaxArea) || tier.MaxArea <= tier.MinArea {
			return fmt.Errorf("pricing tables: design tier %q has an empty range", tier.Key)
		}
		if !positive(tier.PricePerM2, tier.HoursPerM2) {
			return fmt.Errorf("pricing tables: design tier %q needs positive finite rates", tier.Key)
		}
		if i > 0 && tier.MinArea != table.Tiers[i-1].MaxArea {
			return fmt.Errorf("pricing tables: design tier %q does not start where %q ends", tier.Key, table.Tiers[i-1].Key)
		}
	}
	return nil
}

func positive(vs ...float64) bool {
	for _, v := range vs {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func nonNegative(vs ...float64) bool {
	for _, v := range vs {
		if !(v >= 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MinArea and MaxArea bound the areas the design table can price.
func (a AreaTable) MinArea() float64 { return a.Tiers[0].MinArea }
func (a AreaTable) MaxArea() float64 { return a.Tiers[len(a.Tiers)-1].MaxArea }

func (t Tables) environmentTable(s entities.ServiceType) (EnvironmentTable, bool) {
	switch s {
	case entities.ServiceTypeDecoration:
		return t.Decoration, true
	case entities.ServiceTypeProduction:
		return t.Production, true
	}
	return EnvironmentTable{}, false
}

func (t Tables) clone() Tables {
	cp := t
	cp.Decoration.Tiers = append([]EnvironmentTier(nil), t.Decoration.Tiers...)
	cp.Production.Tiers = append([]EnvironmentTier(nil), t.Production.Tiers...)
	cp.Design.Tiers = append([]AreaTier(nil), t.Design.Tiers...)
	cp.TypeMultipliers = make(map[entities.EnvironmentType]float64, len(t.TypeMultipliers))
	for k, v := range t.TypeMultipliers {
		cp.TypeMultipliers[k] = v
	}
	cp.SizeMultipliers = make(map[entities.EnvironmentSize]float64, len(t.SizeMultipliers))
	for k, v := range t.SizeMultipliers {
		cp.SizeMultipliers[k] = v
	}
	cp.ProjectTypeMultipliers = make(map[entities.ProjectType]float64, len(t.ProjectTypeMultipliers))
	for k, v := range t.ProjectTypeMultipliers {
		cp.ProjectTypeMultipliers[k] = v
	}
	return cp
}
