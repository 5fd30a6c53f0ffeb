package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "orcamentos_arq/internal/adapter/http/dto/request"
	response "orcamentos_arq/internal/adapter/http/dto/response"
	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase"
	"orcamentos_arq/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstimateHandler handles HTTP requests for stored estimates (orçamentos).
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log *zap.Logger) *EstimateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateHandler{usecase: uc, log: log.Named("estimate")}
}

// CreateEstimate godoc
// @Summary      Cria um orçamento
// @Description  Prices the project and stores the estimate as pendente
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEstimateRequest  true  "Estimate input"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapBindError(err))
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		abortWithError(c, errInvalidRequest)
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), projectID, payload.ResolveClientName(), payload.ServiceType, payload.ServiceDetails)
	if err != nil {
		abortWithError(c, mapEstimateError(err))
		return
	}
	h.log.Info("estimate created",
		zap.String("estimate_id", estimate.ID),
		zap.String("project_id", estimate.ProjectID),
		zap.Float64("price", estimate.Price))

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Busca um orçamento
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// RecalculateEstimate godoc
// @Summary      Recalcula um orçamento pendente
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Estimate ID"
// @Param        request  body      request.RecalculateEstimateRequest  true  "New service details"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/{id}/recalculate [patch]
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	var payload request.RecalculateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapBindError(err))
		return
	}

	estimate, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"), payload.ServiceDetails)
	if err != nil {
		abortWithError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ExportEstimate godoc
// @Summary      Exporta um orçamento em XLSX
// @Tags         estimates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id}/export [get]
func (h *EstimateHandler) ExportEstimate(c *gin.Context) {
	file, err := h.usecase.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapEstimateError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ApproveEstimate godoc
// @Summary      Aprova o orçamento de um projeto
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateStatusRequest  true  "Project"
// @Success      200      {object}  response.EstimateResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/approve [patch]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, entities.EstimateStatusAprovado, h.usecase.ApproveByProjectID)
}

// RejectEstimate godoc
// @Summary      Rejeita o orçamento de um projeto
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateStatusRequest  true  "Project"
// @Success      200      {object}  response.EstimateResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/reject [patch]
func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, entities.EstimateStatusRejeitado, h.usecase.RejectByProjectID)
}

// CancelEstimate godoc
// @Summary      Cancela o orçamento de um projeto
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateStatusRequest  true  "Project"
// @Success      200      {object}  response.EstimateResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/cancel [patch]
func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, entities.EstimateStatusCancelado, h.usecase.CancelByProjectID)
}

func (h *EstimateHandler) patchEstimateStatusByRequest(
	c *gin.Context,
	target entities.EstimateStatus,
	updater func(ctx context.Context, projectID string) (entities.Estimate, error),
) {
	var payload request.EstimateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapBindError(err))
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		abortWithError(c, errInvalidRequest)
		return
	}

	estimate, err := updater(c.Request.Context(), projectID)
	if err != nil {
		abortWithError(c, mapEstimateError(err))
		return
	}
	h.log.Info("estimate status changed",
		zap.String("estimate_id", estimate.ID),
		zap.String("project_id", projectID),
		zap.String("status", string(target)))

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Estimate status does not allow this change", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotPending):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PENDING", "Only pending estimates can be recalculated", http.StatusConflict)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Estimate export is not available", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
