package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subweave/subweave/internal/fault"
)

func TestAzureRequiresKey(t *testing.T) {
	_, err := NewAzureBackend(BackendConfig{SourceLang: "fi", TargetLang: "en"})
	require.Error(t, err)
	assert.True(t, fault.IsConfig(err))
}

func TestAzureTranslateBatch(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "3.0", r.URL.Query().Get("api-version"))
		assert.Equal(t, "fi", r.URL.Query().Get("from"))
		assert.Equal(t, "en", r.URL.Query().Get("to"))

		var body []struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)

		fmt.Fprintf(w, `[{"translations":[{"text":"en:%s"}]}]`, body[0].Text)
	}))
	defer server.Close()

	b, err := NewAzureBackend(BackendConfig{
		SourceLang:    "fi",
		TargetLang:    "en",
		AzureKey:      "secret",
		AzureEndpoint: server.URL,
	})
	require.NoError(t, err)

	mapping, err := b.TranslateBatch(context.Background(), []Fragment{{0, "Hei"}, {1, "Moi"}})
	require.NoError(t, err)

	// one request per fragment
	assert.Equal(t, 2, requests)
	assert.Equal(t, map[int]string{0: "en:Hei", 1: "en:Moi"}, mapping)
}

func TestAzureNon2xxIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	b, err := NewAzureBackend(BackendConfig{
		SourceLang:    "fi",
		TargetLang:    "en",
		AzureKey:      "secret",
		AzureEndpoint: server.URL,
	})
	require.NoError(t, err)

	_, err = b.TranslateBatch(context.Background(), []Fragment{{0, "Hei"}})
	require.Error(t, err)
	assert.True(t, fault.IsTransport(err))
}
