package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "orcamentos_arq/internal/adapter/http/dto/response"
	"orcamentos_arq/internal/usecase"
	"orcamentos_arq/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// BillingPaymentHandler handles HTTP requests for estimate payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

// NewBillingPaymentHandler builds the handler. In mockMode an unreadable body
// falls back to an empty payload instead of failing the request.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, log *zap.Logger) *BillingPaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("payment")}
}

// CreatePaymentByEstimateID godoc
// @Summary      Cria e processa o pagamento de um orçamento aprovado
// @Description  Accepts the Mercado Pago payload either raw or wrapped in mp_payload. The amount always comes from the estimate.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                              true  "Estimate ID"
// @Param        request      body      request.BillingPaymentCreateRequest  false "Mercado Pago payload"
// @Success      200          {object}  response.BillingPaymentResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Failure      409          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log := h.log.With(zap.String("estimate_id", estimateID))
	log.Debug("create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			abortWithError(c, errInvalidRequest)
			return
		}
		log.Info("invalid payload in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), estimateID, mpPayload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		abortWithError(c, mapBillingPaymentError(err))
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByEstimateID godoc
// @Summary      Último pagamento de um orçamento
// @Tags         payments
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.BillingPaymentResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id} [get]
func (h *BillingPaymentHandler) GetPaymentByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		abortWithError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		abortWithError(c, errPaymentNotFound)
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetPayment godoc
// @Summary      Busca um pagamento de um orçamento
// @Tags         payments
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Param        payment_id   path      string  true  "Payment ID"
// @Success      200          {object}  response.BillingPaymentResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /payments/{estimate_id}/{payment_id} [get]
func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		abortWithError(c, mapBillingPaymentError(err))
		return
	}
	if p.EstimateID != c.Param("estimate_id") {
		abortWithError(c, errPaymentNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// readMPPayload accepts either {"mp_payload": {...}} or the provider payload itself.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return errPaymentNotFound
	default:
		return internalError(err)
	}
}
