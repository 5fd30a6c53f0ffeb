package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orcamentos_arq/internal/adapter/http/handlers/mocks"
	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createEstimateBody = `{
	"projectId": " proj-1 ",
	"clientName": "Ana",
	"serviceType": "decoration",
	"serviceDetails": {
		"environmentsConfig": [{"type": "standard", "size": "M"}],
		"serviceModality": "online",
		"surveyFee": 0,
		"paymentType": "cash",
		"discountPercentage": 0
	}
}`

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIEstimateUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)
		return uc, r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		_, r := setup(t)
		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing project id", func(t *testing.T) {
		_, r := setup(t)
		if w := post(r, `{"projectId":"   ","serviceType":"decoration"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong field type reports the field", func(t *testing.T) {
		_, r := setup(t)
		w := post(r, `{"projectId":"proj-1","serviceType":"design","serviceDetails":{"discountPercentage":"ten"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "VALIDATION_ERROR" || len(body.Details) != 1 || body.Details[0].Field != "serviceDetails.discountPercentage" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error carries details", func(t *testing.T) {
		uc, r := setup(t)
		verr := &pricing.ValidationError{Fields: []pricing.FieldError{
			{Field: "serviceDetails.environmentsConfig", Message: "at least one environment is required"},
		}}
		uc.EXPECT().CreateEstimate(gomock.Any(), "proj-1", "Ana", entities.ServiceTypeDecoration, gomock.Any()).Return(entities.Estimate{}, verr)

		w := post(r, createEstimateBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, _ := body["details"].([]any)
		if body["code"] != "VALIDATION_ERROR" || len(details) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().CreateEstimate(gomock.Any(), "proj-1", "Ana", entities.ServiceTypeDecoration, gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateAlreadyExists)

		if w := post(r, createEstimateBody); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := setup(t)
		now := time.Now().UTC()
		uc.EXPECT().
			CreateEstimate(gomock.Any(), "proj-1", "Ana", entities.ServiceTypeDecoration, gomock.Any()).
			DoAndReturn(func(_ any, projectID, clientName string, st entities.ServiceType, d entities.ServiceDetails) (entities.Estimate, error) {
				if len(d.EnvironmentsConfig) != 1 || d.EnvironmentsConfig[0].Size != entities.EnvironmentSizeMedium {
					t.Fatalf("unexpected details: %+v", d)
				}
				return entities.Estimate{ID: "est-1", ProjectID: projectID, ClientName: clientName, ServiceType: st, Price: 1500, Status: entities.EstimateStatusPendente, CreatedAt: now, UpdatedAt: now}, nil
			})

		w := post(r, createEstimateBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["status"] != "pendente" || body["price"] != 1500.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetAndRecalculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIEstimateUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)
		r.PATCH("/v1/estimates/:id/recalculate", h.RecalculateEstimate)
		return uc, r
	}

	t.Run("get not found", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/missing", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", ProjectID: "proj-1", Status: entities.EstimateStatusAprovado}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("recalculate not pending", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Recalculate(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/recalculate", bytes.NewBufferString(`{"serviceDetails":{"serviceModality":"online","paymentType":"cash"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("recalculate success", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Recalculate(gomock.Any(), "est-1", gomock.Any()).Return(entities.Estimate{ID: "est-1", Price: 2100, Status: entities.EstimateStatusPendente}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/est-1/recalculate", bytes.NewBufferString(`{"serviceDetails":{"serviceModality":"online","paymentType":"cash"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ExportEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/estimates/:id/export", h.ExportEstimate)

	uc.EXPECT().Export(gomock.Any(), "est-1").Return(usecase.ExportedFile{
		Name:        "orcamento-proj-1.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}, nil)
	uc.EXPECT().Export(gomock.Any(), "est-2").Return(usecase.ExportedFile{}, usecase.ErrExporterNotConfigured)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="orcamento-proj-1.xlsx"` {
		t.Fatalf("unexpected disposition: %s", got)
	}
	if got := w.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if w.Body.String() != "PK" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimates/est-2/export", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestEstimateHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(path string, f gin.HandlerFunc) (*gin.Engine, string) {
		r := gin.New()
		r.PATCH(path, f)
		return r, path
	}
	patch := func(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("approve success", func(t *testing.T) {
		uc := mocks.NewMockIEstimateUseCase(gomock.NewController(t))
		h := NewEstimateHandler(uc, nil)
		r, path := build("/v1/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().ApproveByProjectID(gomock.Any(), "proj-1").Return(entities.Estimate{ID: "est-1", ProjectID: "proj-1", Status: entities.EstimateStatusAprovado}, nil)

		if w := patch(r, path, `{"projectId":"proj-1"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject invalid json", func(t *testing.T) {
		uc := mocks.NewMockIEstimateUseCase(gomock.NewController(t))
		h := NewEstimateHandler(uc, nil)
		r, path := build("/v1/estimates/reject", h.RejectEstimate)

		if w := patch(r, path, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel missing project id", func(t *testing.T) {
		uc := mocks.NewMockIEstimateUseCase(gomock.NewController(t))
		h := NewEstimateHandler(uc, nil)
		r, path := build("/v1/estimates/cancel", h.CancelEstimate)

		if w := patch(r, path, `{"projectId":"  "}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject after approval conflicts", func(t *testing.T) {
		uc := mocks.NewMockIEstimateUseCase(gomock.NewController(t))
		h := NewEstimateHandler(uc, nil)
		r, path := build("/v1/estimates/reject", h.RejectEstimate)

		uc.EXPECT().RejectByProjectID(gomock.Any(), "proj-1").Return(entities.Estimate{}, fmt.Errorf("aprovado -> rejeitado: %w", usecase.ErrInvalidStatusTransition))

		if w := patch(r, path, `{"projectId":"proj-1"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve mapped error", func(t *testing.T) {
		uc := mocks.NewMockIEstimateUseCase(gomock.NewController(t))
		h := NewEstimateHandler(uc, nil)
		r, path := build("/v1/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().ApproveByProjectID(gomock.Any(), "proj-1").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		if w := patch(r, path, `{"projectId":"proj-1"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidProjectID, http.StatusBadRequest},
		{usecase.ErrInvalidEstimateID, http.StatusBadRequest},
		{&pricing.ValidationError{Fields: []pricing.FieldError{{Field: "serviceType", Message: "required"}}}, http.StatusBadRequest},
		{usecase.ErrEstimateAlreadyExists, http.StatusConflict},
		{usecase.ErrEstimateNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{usecase.ErrEstimateNotPending, http.StatusConflict},
		{usecase.ErrExporterNotConfigured, http.StatusServiceUnavailable},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapEstimateError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}

	if got := mapEstimateError(errors.New("boom")); got.Message != "An internal error occurred" {
		t.Fatalf("internal errors must not leak: %q", got.Message)
	}
}
