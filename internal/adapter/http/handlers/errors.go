package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errValidation     = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid quote input", http.StatusBadRequest)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapBindError reports JSON type mismatches against the offending field and
// everything else as a plain invalid request.
func mapBindError(err error) *pkg.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errValidation.WithDetails(pkg.ErrorDetail{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be a " + typeErr.Type.String(),
		})
	}
	return errInvalidRequest
}

// mapValidationError turns a calculator ValidationError into a 400 carrying
// one detail per field. ok is false for any other error.
func mapValidationError(err error) (*pkg.AppError, bool) {
	var verr *pricing.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	details := make([]pkg.ErrorDetail, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		details = append(details, pkg.ErrorDetail{Field: f.Field, Message: f.Message})
	}
	return errValidation.WithDetails(details...), true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
