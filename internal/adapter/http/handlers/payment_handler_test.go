package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catering_xpto/internal/adapter/http/handlers/mocks"
	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RegenerateSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready without a total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/schedule", h.RegenerateSchedule)

		uc.EXPECT().RegenerateSchedule(gomock.Any(), "inv-1").
			Return(nil, usecase.ErrNoEstimatedTotal)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/schedule", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "SCHEDULE_NOT_READY" {
			t.Fatalf("expected SCHEDULE_NOT_READY code, got %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/schedule", h.RegenerateSchedule)

		due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RegenerateSchedule(gomock.Any(), "inv-1").Return([]entities.PaymentMilestone{
			{ID: "ms-1", InvoiceID: "inv-1", AmountCents: 27250, Percentage: 25, DueDate: due, Status: entities.MilestonePending},
			{ID: "ms-2", InvoiceID: "inv-1", AmountCents: 54500, Percentage: 50, DueDate: due, Status: entities.MilestonePending, SortOrder: 1},
			{ID: "ms-3", InvoiceID: "inv-1", AmountCents: 27250, Percentage: 25, DueDate: due, Status: entities.MilestonePending, SortOrder: 2},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/schedule", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 3 {
			t.Fatalf("expected 3 milestones, got %d", len(body))
		}
	})
}

func TestPaymentHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payment-link", h.CreatePaymentLink)

		uc.EXPECT().CreatePaymentLink(gomock.Any(), "inv-1").
			Return("", usecase.ErrGatewayNotWired)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payment-link", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payment-link", h.CreatePaymentLink)

		uc.EXPECT().CreatePaymentLink(gomock.Any(), "inv-1").
			Return("https://checkout.test/pay/abc", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payment-link", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			CheckoutURL string `json:"checkout_url"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.CheckoutURL != "https://checkout.test/pay/abc" {
			t.Fatalf("unexpected checkout url %q", body.CheckoutURL)
		}
	})
}

func TestPaymentHandler_GetContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/contract", h.GetContract)

		uc.EXPECT().RenderContract(gomock.Any(), "inv-1").
			Return("<html><body>Catering Agreement</body></html>", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/contract", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		if !strings.Contains(w.Body.String(), "Catering Agreement") {
			t.Fatalf("expected contract body, got %q", w.Body.String())
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/contract", h.GetContract)

		uc.EXPECT().RenderContract(gomock.Any(), "inv-x").
			Return("", usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-x/contract", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
