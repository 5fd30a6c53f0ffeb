package pricing

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"orcamentos_arq/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const serviceDetailsPath = "serviceDetails"

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// gte and lte let +Inf through and decimal cannot represent it.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	return v
}

// validate runs the struct tags first and the table-dependent business rules
// second. All problems found are reported together.
func (c *Calculator) validate(serviceType entities.ServiceType, d entities.ServiceDetails) error {
	verr := &ValidationError{}

	if !serviceType.Valid() {
		verr.add("serviceType", "serviceType must be one of: decoration production design")
	}

	if err := c.validator.Struct(d); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return &ComputationError{Op: "validate", Err: err}
		}
		for _, fe := range fieldErrs {
			verr.add(fieldPath(fe), validationMessage(fe))
		}
	}

	if d.DiscountPercentage > 0 && d.PaymentType != entities.PaymentTypeCash {
		verr.add(serviceDetailsPath+".discountPercentage", "discount is only allowed for cash payment")
	}

	switch {
	case serviceType.UsesEnvironmentTiers():
		c.validateEnvironments(d, verr)
	case serviceType == entities.ServiceTypeDesign:
		c.validateArea(d, verr)
	}

	return verr.orNil()
}

func (c *Calculator) validateEnvironments(d entities.ServiceDetails, verr *ValidationError) {
	configured := len(d.EnvironmentsConfig)
	if configured > 0 && d.EnvironmentCount > 0 && configured != d.EnvironmentCount {
		verr.add(serviceDetailsPath+".environmentCount",
			fmt.Sprintf("environmentCount (%d) does not match environmentsConfig (%d entries)", d.EnvironmentCount, configured))
		return
	}

	count := environmentCount(d)
	if count == 0 {
		verr.add(serviceDetailsPath+".environmentsConfig", "at least one environment is required")
		return
	}
	if count > c.tables.MaxEnvironments {
		verr.add(serviceDetailsPath+".environmentsConfig",
			fmt.Sprintf("at most %d environments are supported", c.tables.MaxEnvironments))
	}
}

func (c *Calculator) validateArea(d entities.ServiceDetails, verr *ValidationError) {
	minArea, maxArea := c.tables.Design.MinArea(), c.tables.Design.MaxArea()
	switch {
	case d.ProjectArea < 0, math.IsInf(d.ProjectArea, 0), math.IsNaN(d.ProjectArea):
		// already reported by the struct tags
	case d.ProjectArea == 0:
		verr.add(serviceDetailsPath+".projectArea", "projectArea is required")
	case d.ProjectArea < minArea || d.ProjectArea > maxArea:
		verr.add(serviceDetailsPath+".projectArea",
			fmt.Sprintf("projectArea must be between %g and %g m²", minArea, maxArea))
	}
}

func environmentCount(d entities.ServiceDetails) int {
	if len(d.EnvironmentsConfig) > 0 {
		return len(d.EnvironmentsConfig)
	}
	return d.EnvironmentCount
}

// fieldPath turns "ServiceDetails.environmentsConfig[0].size" into
// "serviceDetails.environmentsConfig[0].size".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return serviceDetailsPath + ns[i:]
	}
	return serviceDetailsPath + "." + ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "finite":
		return fe.Field() + " must be a finite number"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
