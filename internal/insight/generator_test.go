package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoper/internal/config"
	"stoper/internal/domain"
)

func testConfig(endpoint string) config.InsightConfig {
	return config.InsightConfig{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
	}
}

func TestHTTPGenerator_Generate(t *testing.T) {
	t.Run("posts snapshot and returns text", func(t *testing.T) {
		var received generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(generateResponse{Text: "Reposição urgente de Haste T51."})
		}))
		defer srv.Close()

		g := NewHTTPGenerator(testConfig(srv.URL))
		text, err := g.Generate(context.Background(), domain.InitialInventory, nil)
		require.NoError(t, err)
		assert.Equal(t, "Reposição urgente de Haste T51.", text)
		assert.Len(t, received.Inventory, 11)
		assert.NotEmpty(t, received.Prompt)
	})

	t.Run("truncates history to last 10", func(t *testing.T) {
		var received generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(generateResponse{Text: "ok"})
		}))
		defer srv.Close()

		recent := make([]domain.Withdrawal, 25)
		g := NewHTTPGenerator(testConfig(srv.URL))
		_, err := g.Generate(context.Background(), nil, recent)
		require.NoError(t, err)
		assert.Len(t, received.Withdrawals, 10)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewHTTPGenerator(testConfig(srv.URL))
		_, err := g.Generate(context.Background(), nil, nil)
		assert.Error(t, err)
	})

	t.Run("empty endpoint", func(t *testing.T) {
		g := NewHTTPGenerator(testConfig(""))
		_, err := g.Generate(context.Background(), nil, nil)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("empty text is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(generateResponse{})
		}))
		defer srv.Close()

		g := NewHTTPGenerator(testConfig(srv.URL))
		_, err := g.Generate(context.Background(), nil, nil)
		assert.Error(t, err)
	})
}
