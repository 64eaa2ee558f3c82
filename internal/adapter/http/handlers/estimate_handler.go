package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "catering_xpto/internal/adapter/http/dto/request"
	response "catering_xpto/internal/adapter/http/dto/response"
	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/domain/pricing"
	"catering_xpto/internal/usecase"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg"
	"catering_xpto/pkg/money"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	errInvalidItemPayload    = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for invoice pricing: invoice
// creation, line-item editing and the per-guest quick calculation.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	eventDate, err := payload.ResolveEventDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT_DATE", "Invalid event date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), usecase.CreateInvoiceInput{
		CustomerName:         payload.CustomerName,
		CustomerEmail:        payload.CustomerEmail,
		ServiceType:          payload.ServiceType,
		GuestCount:           payload.GuestCount,
		EventDate:            eventDate,
		IsGovernmentContract: payload.IsGovernmentContract,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *EstimateHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// GetTotals returns only the totals block of the invoice, as last persisted.
func (h *EstimateHandler) GetTotals(c *gin.Context) {
	invoice, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice).Totals)
}

func (h *EstimateHandler) ListLineItems(c *gin.Context) {
	items, err := h.usecase.ListLineItems(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("invoice_id"), usecase.LineItemInput{
		Title:       payload.Title,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitPrice:   money.Cents(payload.UnitPriceCents),
		Category:    entities.ItemCategory(strings.TrimSpace(payload.Category)),
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.UpdateLineItem(c.Request.Context(), c.Param("invoice_id"), c.Param("item_id"), patch)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *EstimateHandler) RemoveLineItem(c *gin.Context) {
	invoice, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("invoice_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *EstimateHandler) GeneratePerGuestItems(c *gin.Context) {
	// Body is optional here; an empty body means "use invoice defaults".
	var payload request.PerGuestRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.GeneratePerGuestItems(c.Request.Context(), c.Param("invoice_id"), usecase.PerGuestInput{
		GuestCount:     payload.GuestCount,
		PerGuestPrice:  money.Cents(payload.PerGuestPriceCents),
		ServiceFeeRate: payload.ServiceFeeRate,
	})
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *EstimateHandler) RecomputeTotals(c *gin.Context) {
	invoice, err := h.usecase.RecomputeTotals(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrNegativeGuestCount),
		errors.Is(err, pricing.ErrNegativeQuantity),
		errors.Is(err, pricing.ErrNegativeUnitPrice),
		errors.Is(err, pricing.ErrInvalidCategory),
		errors.Is(err, pricing.ErrInvalidGuestCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrDuplicateItemID):
		return pkg.NewDomainErrorSimple("DUPLICATE_LINE_ITEM", "Line item already exists", http.StatusConflict)
	case errors.Is(err, pricing.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Invoice was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
