package caselookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/gtkpad369/LegalSch/internal/config"
)

// ProcessResult is whatever the lookup API returned for a client CPF.
// The shape is opaque to the rest of the system.
type ProcessResult map[string]any

// JusBrasilClient queries the JusBrasil process API. Any failure
// (network, auth, decoding) degrades to nil so a flaky upstream never
// breaks a booking flow.
type JusBrasilClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewJusBrasilClient(cfg *config.Config) *JusBrasilClient {
	return &JusBrasilClient{
		baseURL: cfg.JusBrasilAPIURL,
		apiKey:  cfg.JusBrasilAPIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *JusBrasilClient) SearchProcesses(ctx context.Context, cpf string) ProcessResult {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/processes?cpf="+url.QueryEscape(cpf),
		nil,
	)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Warn("jusbrasil lookup failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("jusbrasil lookup rejected", zap.Int("status", resp.StatusCode))
		return nil
	}

	var result ProcessResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		zap.L().Warn("jusbrasil response malformed", zap.Error(err))
		return nil
	}

	return result
}
