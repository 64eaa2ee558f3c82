package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"catering_xpto/pkg/money"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted checkout preferences and returns the
// init point URL the customer pays through.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutLink(ctx context.Context, invoiceID string, amount money.Cents, title string) (string, error) {
	if g != nil && g.mockMode {
		link := fmt.Sprintf("https://mock.checkout.local/pay/%s?ts=%d", invoiceID, time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock checkout link invoice_id=%s amount_cents=%d link=%s", invoiceID, amount, link)
		return link, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] checkout link start invoice_id=%s amount_cents=%d", invoiceID, amount)

	resp, err := g.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        invoiceID,
				Title:     title,
				Quantity:  1,
				UnitPrice: float64(amount) / 100,
			},
		},
		ExternalReference: invoiceID,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway] checkout link success invoice_id=%s preference_id=%s", invoiceID, resp.ID)

	return resp.InitPoint, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
