package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"catering_xpto/internal/domain/entities"
)

var ErrMissingEmailFunctionURL = errors.New("missing EMAIL_FUNCTION_URL")
var ErrEmailDispatcherNotConfigured = errors.New("email dispatcher not configured")

// HTTPDispatcher delivers estimate emails through an HTTP mail function.
// The function receives a JSON payload with the recipient, subject, body
// and an optional HTML attachment.
type HTTPDispatcher struct {
	endpoint string
	apiKey   string
	client   *http.Client
	mockMode bool
}

func NewHTTPDispatcher(endpoint, apiKey string) (*HTTPDispatcher, error) {
	if isEmailMockEnabled() {
		log.Printf("[email][dispatcher] mock mode enabled")
		return &HTTPDispatcher{mockMode: true}, nil
	}

	if endpoint == "" {
		log.Printf("[email][dispatcher] missing EMAIL_FUNCTION_URL")
		return nil, ErrMissingEmailFunctionURL
	}

	return &HTTPDispatcher{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (d *HTTPDispatcher) Send(ctx context.Context, msg entities.EmailMessage) error {
	if d != nil && d.mockMode {
		log.Printf("[email][dispatcher] mock send to=%s subject=%q body_len=%d attachment_len=%d",
			msg.Recipient, msg.Subject, len(msg.Body), len(msg.AttachmentHTML))
		return nil
	}

	if d == nil || d.client == nil {
		log.Printf("[email][dispatcher] dispatcher not configured")
		return ErrEmailDispatcherNotConfigured
	}

	payload, err := json.Marshal(map[string]string{
		"to":              msg.Recipient,
		"subject":         msg.Subject,
		"body":            msg.Body,
		"attachment_html": msg.AttachmentHTML,
	})
	if err != nil {
		log.Printf("[email][dispatcher] payload marshal failed err=%v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("[email][dispatcher] request build failed err=%v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[email][dispatcher] send failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("[email][dispatcher] send rejected status=%d to=%s", resp.StatusCode, msg.Recipient)
		return fmt.Errorf("email function returned status %d", resp.StatusCode)
	}
	log.Printf("[email][dispatcher] send success to=%s subject=%q", msg.Recipient, msg.Subject)

	return nil
}

func isEmailMockEnabled() bool {
	for _, key := range []string{"EMAIL_MOCK", "EMAIL_DISPATCHER_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
