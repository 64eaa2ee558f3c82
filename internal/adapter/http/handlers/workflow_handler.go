package handlers

import (
	"errors"
	"log"
	"net/http"

	request "catering_xpto/internal/adapter/http/dto/request"
	response "catering_xpto/internal/adapter/http/dto/response"
	"catering_xpto/internal/domain/workflow"
	"catering_xpto/internal/usecase"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler handles HTTP requests for invoice lifecycle transitions.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// GetNextAction returns the gated next step for an invoice without
// executing it.
func (h *WorkflowHandler) GetNextAction(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	result, err := h.usecase.NextAction(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNextAction(result))
}

// Advance executes the single forward transition for the invoice's
// current status.
func (h *WorkflowHandler) Advance(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[workflow][handler] advance start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.Advance(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[workflow][handler] advance failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] advance success invoice_id=%s status=%s", invoiceID, invoice.Status)

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *WorkflowHandler) SendEstimate(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[workflow][handler] send start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.SendEstimate(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[workflow][handler] send failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] send success invoice_id=%s", invoiceID)

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *WorkflowHandler) ApproveOverride(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[workflow][handler] approve-override start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.ApproveOverride(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[workflow][handler] approve-override failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *WorkflowHandler) RequestChange(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	invoice, err := h.usecase.RequestChange(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *WorkflowHandler) ResolveChange(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	var payload request.ChangeResolutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RESOLUTION_INPUT", "Invalid change resolution payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	invoice, err := h.usecase.ResolveChange(c.Request.Context(), invoiceID, payload.ResolveTarget())
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapWorkflowError(err error) *pkg.AppError {
	var refused *usecase.TransitionRefusedError
	if errors.As(err, &refused) {
		return pkg.NewDomainErrorSimple("TRANSITION_BLOCKED", refused.Error(), http.StatusConflict)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkflowCompleted),
		errors.Is(err, workflow.ErrNoForwardAction):
		return pkg.NewDomainErrorSimple("WORKFLOW_COMPLETED", "Workflow already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAwaitingApproval),
		errors.Is(err, usecase.ErrMissingRecipient),
		errors.Is(err, workflow.ErrIllegalTransition),
		errors.Is(err, workflow.ErrBranchNotAllowed),
		errors.Is(err, workflow.ErrNotBranchedStatus),
		errors.Is(err, workflow.ErrResolveNotAllowed),
		errors.Is(err, workflow.ErrTransitionBlocked):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Invoice was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
