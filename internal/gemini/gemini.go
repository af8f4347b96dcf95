// Package gemini wraps the external text-generation service. It turns
// structured requests into prompts, parses the free-text responses
// tolerantly, and resolves every failure to a deterministic fallback so
// the rest of the app stays usable with zero AI availability.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"artquest/internal/config"
)

// ErrNoAPIKey is returned when no credential has been configured.
var ErrNoAPIKey = errors.New("gemini: api key not configured")

// APIError is a non-2xx response from the generation endpoint. The body is
// intentionally not carried: it may echo request content.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: api status %d", e.Status)
}

// ClientConfig configures the gateway client.
type ClientConfig struct {
	// Endpoint is the generateContent URL.
	Endpoint string

	// APIKey authenticates the request. Never logged; use RedactKey for
	// anything user-visible.
	APIKey string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured logging.
	Logger *slog.Logger
}

// Client calls the generation service. One call per user action; the
// gateway itself never retries (the service has user-visible cost and
// latency, so retry is a caller decision).
type Client struct {
	endpoint string
	key      string
	httpc    *http.Client
	logger   *slog.Logger
}

// NewClient creates a gateway client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = config.DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		key:      cfg.APIKey,
		httpc:    &http.Client{Timeout: cfg.Timeout},
		logger:   cfg.Logger,
	}
}

// HasKey reports whether a credential is configured.
func (c *Client) HasKey() bool { return c.key != "" }

// RedactKey returns a truncated prefix safe for display.
func RedactKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 6 {
		return key[:1] + "…"
	}
	return key[:6] + "…"
}

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends one prompt and returns the generated free text.
func (c *Client) GenerateContent(ctx context.Context, prompt string, temperature float64) (string, error) {
	if c.key == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels in a header, never the URL: transport errors embed
	// the request URL verbatim and must stay safe to log and display.
	req.Header.Set("x-goog-api-key", c.key)

	c.logger.Debug("gemini request", "endpoint", c.endpoint, "prompt_len", len(prompt))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// TestConnection performs a minimal round trip to verify the credential.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.GenerateContent(ctx, "Hello. This is a connection test.", 0.1)
	return err
}
