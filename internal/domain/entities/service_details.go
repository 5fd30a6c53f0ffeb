package entities

// ServiceType selects the pricing family used for a quote.
type ServiceType string

const (
	ServiceTypeDecoration ServiceType = "decoration"
	ServiceTypeProduction ServiceType = "production"
	ServiceTypeDesign     ServiceType = "design"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeDecoration, ServiceTypeProduction, ServiceTypeDesign:
		return true
	}
	return false
}

// UsesEnvironmentTiers reports whether the service is priced by environment count.
func (s ServiceType) UsesEnvironmentTiers() bool {
	return s == ServiceTypeDecoration || s == ServiceTypeProduction
}

type ProjectType string

const (
	ProjectTypeNew        ProjectType = "new"
	ProjectTypeRenovation ProjectType = "renovation"
)

type EnvironmentType string

const (
	EnvironmentTypeStandard EnvironmentType = "standard"
	EnvironmentTypeMedium   EnvironmentType = "medium"
	EnvironmentTypeHigh     EnvironmentType = "high"
)

type EnvironmentSize string

const (
	EnvironmentSizeSmall  EnvironmentSize = "P"
	EnvironmentSizeMedium EnvironmentSize = "M"
	EnvironmentSizeLarge  EnvironmentSize = "G"
)

type Modality string

const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in-person"
)

type PaymentType string

const (
	PaymentTypeCash         PaymentType = "cash"
	PaymentTypeInstallments PaymentType = "installments"
)

// EnvironmentConfig describes one room of a decoration/production project.
type EnvironmentConfig struct {
	Type EnvironmentType `json:"type" yaml:"type" validate:"required,oneof=standard medium high"`
	Size EnvironmentSize `json:"size" yaml:"size" validate:"required,oneof=P M G"`
}

// ServiceDetails is the caller-supplied parameter set for one quote.
//
// Zero-valued optional prices (extraEnvironmentPrice, surveyFee, managementFee)
// fall back to the defaults of the active pricing tables.
type ServiceDetails struct {
	ProjectType           ProjectType         `json:"projectType,omitempty" yaml:"projectType,omitempty" validate:"omitempty,oneof=new renovation"`
	ProjectArea           float64             `json:"projectArea,omitempty" yaml:"projectArea,omitempty" validate:"finite,gte=0"`
	EnvironmentCount      int                 `json:"environmentCount,omitempty" yaml:"environmentCount,omitempty" validate:"gte=0"`
	EnvironmentsConfig    []EnvironmentConfig `json:"environmentsConfig,omitempty" yaml:"environmentsConfig,omitempty" validate:"omitempty,dive"`
	ExtraEnvironments     int                 `json:"extraEnvironments,omitempty" yaml:"extraEnvironments,omitempty" validate:"gte=0"`
	ExtraEnvironmentPrice float64             `json:"extraEnvironmentPrice,omitempty" yaml:"extraEnvironmentPrice,omitempty" validate:"finite,gte=0"`
	ServiceModality       Modality            `json:"serviceModality" yaml:"serviceModality" validate:"required,oneof=online in-person"`
	SurveyFee             float64             `json:"surveyFee" yaml:"surveyFee" validate:"finite,gte=0"`
	PaymentType           PaymentType         `json:"paymentType" yaml:"paymentType" validate:"required,oneof=cash installments"`
	DiscountPercentage    float64             `json:"discountPercentage" yaml:"discountPercentage" validate:"finite,gte=0,lte=100"`
	IncludeManagement     bool                `json:"includeManagement,omitempty" yaml:"includeManagement,omitempty"`
	ManagementFee         float64             `json:"managementFee,omitempty" yaml:"managementFee,omitempty" validate:"finite,gte=0"`
}
