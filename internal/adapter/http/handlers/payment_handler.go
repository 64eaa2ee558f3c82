package handlers

import (
	"errors"
	"log"
	"net/http"

	response "catering_xpto/internal/adapter/http/dto/response"
	"catering_xpto/internal/usecase"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment schedules, checkout
// links and the contract document.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RegenerateSchedule rebuilds the pending portion of the payment schedule
// from the invoice's current total.
func (h *PaymentHandler) RegenerateSchedule(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] regenerate start invoice_id=%s", invoiceID)

	milestones, err := h.usecase.RegenerateSchedule(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] regenerate failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] regenerate success invoice_id=%s milestones=%d", invoiceID, len(milestones))

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

func (h *PaymentHandler) GetSchedule(c *gin.Context) {
	milestones, err := h.usecase.GetSchedule(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMilestones(milestones))
}

// CreatePaymentLink creates a hosted checkout link for the invoice's
// booking deposit (or the full amount for government contracts).
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] link start invoice_id=%s", invoiceID)

	link, err := h.usecase.CreatePaymentLink(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[payment][handler] link failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] link success invoice_id=%s", invoiceID)

	c.JSON(http.StatusOK, response.PaymentLinkResponse{InvoiceID: invoiceID, CheckoutURL: link})
}

// GetContract renders the estimate contract document as HTML.
func (h *PaymentHandler) GetContract(c *gin.Context) {
	html, err := h.usecase.RenderContract(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoEstimatedTotal),
		errors.Is(err, usecase.ErrMissingEventDate),
		errors.Is(err, usecase.ErrNothingToSchedule):
		return pkg.NewDomainErrorSimple("SCHEDULE_NOT_READY", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotWired):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Invoice was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
