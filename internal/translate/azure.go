package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/subweave/subweave/internal/fault"
	"github.com/subweave/subweave/pkg/log"
)

// DefaultAzureEndpoint is the Microsoft Translator text API.
const DefaultAzureEndpoint = "https://api.cognitive.microsofttranslator.com/translate"

// AzureBackend translates over the Microsoft Translator HTTP API, one
// request per fragment. Auth is a subscription key injected into every
// request header; the key's absence is caught at construction, before any
// request goes out.
type AzureBackend struct {
	key        string
	endpoint   string
	sourceLang string
	targetLang string
	client     *http.Client
}

func NewAzureBackend(cfg BackendConfig) (*AzureBackend, error) {
	if cfg.AzureKey == "" {
		return nil, fault.New(fault.KindConfig, "AZURE_KEY is not set")
	}
	endpoint := cfg.AzureEndpoint
	if endpoint == "" {
		endpoint = DefaultAzureEndpoint
	}
	return &AzureBackend{
		key:        cfg.AzureKey,
		endpoint:   endpoint,
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		client:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (b *AzureBackend) Name() string { return "azure" }

// ByteBudget is unbounded: each fragment travels in its own request.
func (b *AzureBackend) ByteBudget() int { return 0 }

func (b *AzureBackend) TranslateBatch(ctx context.Context, fragments []Fragment) (map[int]string, error) {
	ret := make(map[int]string, len(fragments))
	chars := 0
	for _, f := range fragments {
		translated, err := b.translateOne(ctx, f.Text)
		if err != nil {
			return nil, err
		}
		log.Debug("azure: %q -> %q", f.Text, translated)
		ret[f.Tag] = translated
		chars += len(f.Text)
	}
	log.Info("azure: translated %d characters in %d requests", chars, len(fragments))
	return ret, nil
}

func (b *AzureBackend) translateOne(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal([]map[string]string{{"text": text}})
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("api-version", "3.0")
	params.Set("from", b.sourceLang)
	params.Set("to", b.targetLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.endpoint+"?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", b.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "azure request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fault.Newf(fault.KindTransport,
			"azure returned %s: %s", resp.Status, string(payload))
	}

	var decoded []struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fault.Wrap(err, fault.KindTransport, "decode azure response")
	}
	if len(decoded) == 0 || len(decoded[0].Translations) == 0 {
		return "", fault.New(fault.KindTransport, "azure response contained no translation")
	}
	return decoded[0].Translations[0].Text, nil
}

func (b *AzureBackend) Close() error { return nil }
