package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gtkpad369/LegalSch/internal/config"
)

// WhatsAppSender posts messages to a WhatsApp gateway API.
type WhatsAppSender struct {
	apiURL    string
	apiToken  string
	fromPhone string
	client    *http.Client
}

func NewWhatsAppSender(cfg *config.Config) *WhatsAppSender {
	return &WhatsAppSender{
		apiURL:    cfg.NotifyAPIURL,
		apiToken:  cfg.NotifyAPIToken,
		fromPhone: cfg.NotifyFromPhone,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WhatsAppSender) Send(ctx context.Context, toPhone, message string) error {
	if s.apiURL == "" {
		// Gateway not configured; treat as delivered in development.
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"from": "whatsapp:" + s.fromPhone,
		"to":   "whatsapp:" + toPhone,
		"body": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return nil
}
