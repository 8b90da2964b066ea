// Package gemini is the Google Gemini client behind the optional currency
// insight feature.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// Config holds the Gemini connection settings.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

type client struct {
	config     Config
	httpClient *http.Client
}

// New creates the Gemini insight provider.
func New(cfg Config) portsprov.InsightProvider {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// insightPayload mirrors the structured-output schema the model is told to
// produce.
type insightPayload struct {
	Analysis  string   `json:"analysis"`
	Tips      []string `json:"tips"`
	Sentiment string   `json:"sentiment"`
}

func (c *client) GenerateInsight(ctx context.Context, from, to string, amount float64) (*domain.Insight, error) {
	prompt := fmt.Sprintf("Explain the current currency market context for %s to %s. "+
		"The user is converting %g %s. Give a brief fun lesson about this pair, "+
		"one insight about why rates might change, and 3 travel spending tips.",
		from, to, amount, from)

	return c.generate(ctx, prompt)
}

func (c *client) TranslateInsight(ctx context.Context, insight domain.Insight, targetLang string) (*domain.Insight, error) {
	encoded, err := json.Marshal(insightPayload{
		Analysis:  insight.Analysis,
		Tips:      insight.Tips,
		Sentiment: string(insight.Sentiment),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode insight: %w", err)
	}

	prompt := fmt.Sprintf("Translate the following JSON object to %s. "+
		"Keep the exact same structure.\nObject: %s", targetLang, encoded)

	return c.generate(ctx, prompt)
}

func (c *client) generate(ctx context.Context, prompt string) (*domain.Insight, error) {
	text, err := c.callGemini(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload := insightPayload{}
	if err := json.Unmarshal([]byte(stripFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse insight payload: %w", err)
	}

	sentiment := domain.Sentiment(payload.Sentiment)
	switch sentiment {
	case domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		sentiment = domain.SentimentNeutral
	}

	return &domain.Insight{
		Analysis:  payload.Analysis,
		Tips:      payload.Tips,
		Sentiment: sentiment,
	}, nil
}

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

// insightSchema constrains the model to the insight structure.
var insightSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"analysis": {"type": "STRING"},
		"tips": {"type": "ARRAY", "items": {"type": "STRING"}},
		"sentiment": {"type": "STRING", "enum": ["positive", "negative", "neutral"]}
	},
	"required": ["analysis", "tips", "sentiment"]
}`)

// geminiResponse is the generateContent response body.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *client) callGemini(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		c.config.Endpoint, c.config.Model, c.config.APIKey)

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	geminiResp := geminiResponse{}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", geminiResp.Error.Code, geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite the mime-type hint.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
