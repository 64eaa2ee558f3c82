package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catering_xpto/internal/adapter/http/handlers/mocks"
	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/workflow"
	"catering_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkflowHandler_GetNextAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("executable action with progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/next-action", h.GetNextAction)

		uc.EXPECT().NextAction(gomock.Any(), "inv-1").Return(usecase.NextActionResult{
			Action: workflow.Action{
				Name:       "start_review",
				Title:      "Start review",
				Target:     entities.StatusUnderReview,
				CanExecute: true,
			},
			Progress: 0,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/next-action", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Name       string `json:"name"`
			CanExecute bool   `json:"can_execute"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Name != "start_review" || !body.CanExecute {
			t.Fatalf("unexpected action payload: %+v", body)
		}
	})

	t.Run("completed workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/next-action", h.GetNextAction)

		uc.EXPECT().NextAction(gomock.Any(), "inv-1").
			Return(usecase.NextActionResult{Progress: 100}, usecase.ErrWorkflowCompleted)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/next-action", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gate refusal returns requirements", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "inv-1").Return(entities.Invoice{}, &usecase.TransitionRefusedError{
			Action: workflow.Action{Name: "generate_estimate", Requirements: []string{"service type must be set"}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "TRANSITION_BLOCKED" {
			t.Fatalf("expected TRANSITION_BLOCKED code, got %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.StatusUnderReview}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_SendEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "inv-1").
			Return(entities.Invoice{}, usecase.ErrMissingRecipient)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.StatusSent}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_ResolveChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/change-request/resolve", h.ResolveChange)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/change-request/resolve",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/change-request/resolve", h.ResolveChange)

		uc.EXPECT().ResolveChange(gomock.Any(), "inv-1", entities.InvoiceStatus("completed")).
			Return(entities.Invoice{}, workflow.ErrResolveNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/change-request/resolve",
			bytes.NewBufferString(`{"target":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/change-request/resolve", h.ResolveChange)

		uc.EXPECT().ResolveChange(gomock.Any(), "inv-1", entities.StatusEstimated).
			Return(entities.Invoice{ID: "inv-1", Status: entities.StatusEstimated}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/change-request/resolve",
			bytes.NewBufferString(`{"target":"Estimated"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_RequestChange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("branch not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/change-request", h.RequestChange)

		uc.EXPECT().RequestChange(gomock.Any(), "inv-1").
			Return(entities.Invoice{}, workflow.ErrBranchNotAllowed)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/change-request", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
