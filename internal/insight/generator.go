// Package insight calls an external text-generation service for advisory
// commentary on the current inventory. Nothing in reconciliation depends
// on it; failures always degrade to a static placeholder upstream.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"stoper/internal/config"
	"stoper/internal/domain"
)

// Fallback is shown whenever the generator is unavailable or errors out.
const Fallback = "Não foi possível carregar os insights no momento."

var ErrNotConfigured = errors.New("insight endpoint not configured")

type Generator interface {
	Generate(ctx context.Context, inventory []domain.Tool, recent []domain.Withdrawal) (string, error)
}

type HTTPGenerator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPGenerator(cfg config.InsightConfig) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Prompt      string              `json:"prompt"`
	Inventory   []domain.Tool       `json:"inventory"`
	Withdrawals []domain.Withdrawal `json:"withdrawals"`
}

type generateResponse struct {
	Text string `json:"text"`
}

const prompt = `Analise o estoque de ferramentas de perfuração e o histórico ` +
	`de retiradas recentes. Forneça um breve resumo (máximo 3 parágrafos) sobre: ` +
	`1. Quais modelos (T45, T50, T51) estão sendo mais exigidos. ` +
	`2. Alertas críticos de reposição. ` +
	`3. Sugestão de otimização baseada nos motivos de retirada.`

// Generate posts the inventory and the last 10 withdrawals to the
// configured endpoint and returns the advisory text.
func (g *HTTPGenerator) Generate(ctx context.Context, inventory []domain.Tool, recent []domain.Withdrawal) (string, error) {
	if g.endpoint == "" {
		return "", ErrNotConfigured
	}

	if len(recent) > 10 {
		recent = recent[:10]
	}

	body, err := json.Marshal(generateRequest{
		Prompt:      prompt,
		Inventory:   inventory,
		Withdrawals: recent,
	})
	if err != nil {
		return "", fmt.Errorf("marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call insight endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight endpoint returned %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode insight response: %w", err)
	}

	if parsed.Text == "" {
		return "", errors.New("insight endpoint returned empty text")
	}

	return parsed.Text, nil
}
