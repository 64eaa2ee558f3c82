package interfaces

import (
	"context"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/pkg/money"
)

// IPaymentLinkGateway abstracts the external payment provider (Mercado Pago).
// The billing-service only needs a hosted checkout URL for an invoice amount.
type IPaymentLinkGateway interface {
	CreateCheckoutLink(ctx context.Context, invoiceID string, amount money.Cents, title string) (string, error)
}

// IEmailDispatcher abstracts the email edge function. Delivery contract is a
// bare success/failure; no retry or confirmation beyond the returned error.
type IEmailDispatcher interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}

// IContractRenderer produces the static contract/estimate HTML document for
// an invoice, its line items, and its payment schedule.
type IContractRenderer interface {
	RenderContract(inv entities.Invoice, items []entities.LineItem, milestones []entities.PaymentMilestone) (string, error)
}
