package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentEstimateID       = errors.New("invalid estimate_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrEstimateNotApproved            = errors.New("estimate not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how strictly incoming payloads are checked.
//
// In MockMode the gateway answers locally, so payment_method_id and payer are
// not required. TestPayerEmail fills payer.email when the caller sent neither
// an id nor an email.
type PaymentOptions struct {
	MockMode       bool
	TestPayerEmail string
}

// IBillingPaymentUseCase charges an approved estimate.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo         interfaces.IBillingPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	log          *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, log *zap.Logger) *BillingPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BillingPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway, opts: opts, log: log}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log := u.log.With(zap.String("estimate_id", estimateID))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentEstimateID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Info("invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Error("failed loading estimate", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if est.ID == "" {
		return entities.BillingPayment{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusAprovado {
		log.Info("estimate not approved", zap.String("status", string(est.Status)))
		return entities.BillingPayment{}, ErrEstimateNotApproved
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		if !u.opts.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		ensurePayerDefaults(reqMap, u.opts.TestPayerEmail)
		if !hasPayer(reqMap) {
			log.Info("missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = estimateID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento %s (projeto %s)", estimateID, est.ProjectID)
	}
	// The stored estimate is the source of truth for the amount.
	reqMap["transaction_amount"] = est.Price
	if est.ServiceDetails.PaymentType == entities.PaymentTypeCash {
		reqMap["installments"] = 1
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.Info("payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response is not a json object", zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		EstimateID:   estimateID,
		Amount:       est.Price,
		PaymentType:  est.ServiceDetails.PaymentType,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	log.Info("payment stored", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.BillingPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func ensurePayerDefaults(m map[string]any, testPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && testPayerEmail != "" {
		payer["email"] = testPayerEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
