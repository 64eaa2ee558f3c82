package routes

import (
	"catering_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addCateringRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	workflowHandler *handlers.WorkflowHandler,
	versionHandler *handlers.VersionHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", estimateHandler.CreateInvoice)
		invoices.GET("/:invoice_id", estimateHandler.GetInvoice)
		invoices.GET("/:invoice_id/totals", estimateHandler.GetTotals)
		invoices.POST("/:invoice_id/recompute", estimateHandler.RecomputeTotals)

		invoices.GET("/:invoice_id/items", estimateHandler.ListLineItems)
		invoices.POST("/:invoice_id/items", estimateHandler.AddLineItem)
		invoices.PATCH("/:invoice_id/items/:item_id", estimateHandler.UpdateLineItem)
		invoices.DELETE("/:invoice_id/items/:item_id", estimateHandler.RemoveLineItem)
		invoices.POST("/:invoice_id/items/bulk", estimateHandler.GeneratePerGuestItems)

		invoices.GET("/:invoice_id/next-action", workflowHandler.GetNextAction)
		invoices.POST("/:invoice_id/advance", workflowHandler.Advance)
		invoices.POST("/:invoice_id/send", workflowHandler.SendEstimate)
		invoices.POST("/:invoice_id/approve-override", workflowHandler.ApproveOverride)
		invoices.POST("/:invoice_id/change-request", workflowHandler.RequestChange)
		invoices.POST("/:invoice_id/change-request/resolve", workflowHandler.ResolveChange)

		invoices.POST("/:invoice_id/versions", versionHandler.CreateVersion)
		invoices.GET("/:invoice_id/versions", versionHandler.ListVersions)
		invoices.GET("/:invoice_id/versions/compare", versionHandler.CompareVersions)
		invoices.PATCH("/:invoice_id/versions/:version_id/archive", versionHandler.ArchiveVersion)

		invoices.GET("/:invoice_id/schedule", paymentHandler.GetSchedule)
		invoices.POST("/:invoice_id/schedule", paymentHandler.RegenerateSchedule)
		invoices.POST("/:invoice_id/payment-link", paymentHandler.CreatePaymentLink)
		invoices.GET("/:invoice_id/contract", paymentHandler.GetContract)
	}
}
