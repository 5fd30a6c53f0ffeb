package handlers

import (
	"net/http"
	"time"

	request "orcamentos_arq/internal/adapter/http/dto/request"
	response "orcamentos_arq/internal/adapter/http/dto/response"
	"orcamentos_arq/internal/usecase"
	"orcamentos_arq/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalculationHandler prices quotes on demand. Nothing is persisted.
type CalculationHandler struct {
	usecase usecase.ICalculationUseCase
	log     *zap.Logger
	now     func() time.Time
}

func NewCalculationHandler(uc usecase.ICalculationUseCase, log *zap.Logger) *CalculationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalculationHandler{usecase: uc, log: log.Named("calculation"), now: time.Now}
}

// Calculate godoc
// @Summary      Calcula um orçamento
// @Description  Prices a quote from the service type and details without storing it
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CalculationRequest  true  "Quote input"
// @Success      200      {object}  response.CalculationResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /calculations [post]
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var payload request.CalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Debug("invalid payload", zap.Error(err))
		abortWithError(c, mapBindError(err))
		return
	}

	calc, err := h.usecase.Calculate(c.Request.Context(), payload.ServiceType, payload.ServiceDetails)
	if err != nil {
		abortWithError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculationResult(payload.ServiceType, payload.ServiceDetails, calc, h.now()))
}

func mapCalculationError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	return internalError(err)
}
