package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catering_xpto/internal/adapter/http/handlers/mocks"
	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVersionHandler_CreateVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body creates an unannotated snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/versions", h.CreateVersion)

		uc.EXPECT().CreateVersion(gomock.Any(), "inv-1", "").
			Return(entities.EstimateVersion{ID: "ver-1", InvoiceID: "inv-1", VersionNumber: 1, Status: entities.VersionActive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/versions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("notes forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/versions", h.CreateVersion)

		uc.EXPECT().CreateVersion(gomock.Any(), "inv-1", "after menu change").
			Return(entities.EstimateVersion{ID: "ver-2", InvoiceID: "inv-1", VersionNumber: 2, Status: entities.VersionActive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/versions",
			bytes.NewBufferString(`{"notes":"after menu change"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/versions", h.CreateVersion)

		uc.EXPECT().CreateVersion(gomock.Any(), "inv-x", "").
			Return(entities.EstimateVersion{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-x/versions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVersionHandler_CompareVersions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/versions/compare", h.CompareVersions)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/versions/compare?from=ver-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/versions/compare", h.CompareVersions)

		uc.EXPECT().Compare(gomock.Any(), "inv-1", "ver-1", "ver-9").
			Return(pricing.VersionDiff{}, usecase.ErrVersionWrongInvoice)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/versions/compare?from=ver-1&to=ver-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/versions/compare", h.CompareVersions)

		uc.EXPECT().Compare(gomock.Any(), "inv-1", "ver-1", "ver-2").Return(pricing.VersionDiff{
			Added:       []entities.LineItem{{ID: "item-2", Title: "Service fee"}},
			Removed:     []entities.LineItem{},
			Modified:    []pricing.ModifiedLineItem{},
			PriceChange: 5000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/versions/compare?from=ver-1&to=ver-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			PriceChangeCents int64 `json:"price_change_cents"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.PriceChangeCents != 5000 {
			t.Fatalf("expected price change 5000, got %d", body.PriceChangeCents)
		}
	})
}

func TestVersionHandler_ArchiveVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:invoice_id/versions/:version_id/archive", h.ArchiveVersion)

		uc.EXPECT().Archive(gomock.Any(), "inv-1", "ver-x").
			Return(entities.EstimateVersion{}, usecase.ErrVersionNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/versions/ver-x/archive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVersionUseCase(ctrl)
		h := NewVersionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/invoices/:invoice_id/versions/:version_id/archive", h.ArchiveVersion)

		uc.EXPECT().Archive(gomock.Any(), "inv-1", "ver-1").
			Return(entities.EstimateVersion{ID: "ver-1", InvoiceID: "inv-1", Status: entities.VersionArchived}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/versions/ver-1/archive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
