package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/gemini"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) string {
	reply := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	out, _ := json.Marshal(reply)
	return string(out)
}

func TestGenerateInsight_ParsesStructuredReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(geminiReply(`{"analysis": "fun fact", "tips": ["a", "b", "c"], "sentiment": "positive"}`)))
	}))
	defer srv.Close()

	client := gemini.New(gemini.Config{APIKey: "test-key", Endpoint: srv.URL})

	insight, err := client.GenerateInsight(context.Background(), "USD", "EUR", 10)
	require.NoError(t, err)

	assert.Equal(t, "fun fact", insight.Analysis)
	assert.Len(t, insight.Tips, 3)
	assert.Equal(t, domain.SentimentPositive, insight.Sentiment)
}

func TestGenerateInsight_StripsCodeFence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n{\"analysis\": \"x\", \"tips\": [], \"sentiment\": \"neutral\"}\n```"
		_, _ = w.Write([]byte(geminiReply(fenced)))
	}))
	defer srv.Close()

	client := gemini.New(gemini.Config{APIKey: "k", Endpoint: srv.URL})

	insight, err := client.GenerateInsight(context.Background(), "USD", "EUR", 1)
	require.NoError(t, err)
	assert.Equal(t, "x", insight.Analysis)
}

func TestGenerateInsight_UnknownSentimentDefaultsToNeutral(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geminiReply(`{"analysis": "x", "tips": [], "sentiment": "bullish"}`)))
	}))
	defer srv.Close()

	client := gemini.New(gemini.Config{APIKey: "k", Endpoint: srv.URL})

	insight, err := client.GenerateInsight(context.Background(), "USD", "EUR", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNeutral, insight.Sentiment)
}

func TestGenerateInsight_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	client := gemini.New(gemini.Config{APIKey: "k", Endpoint: srv.URL})

	_, err := client.GenerateInsight(context.Background(), "USD", "EUR", 1)
	require.Error(t, err)
}

func TestTranslateInsight_SendsInsightInPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Spanish")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "hello")
		_, _ = w.Write([]byte(geminiReply(`{"analysis": "hola", "tips": ["uno"], "sentiment": "neutral"}`)))
	}))
	defer srv.Close()

	client := gemini.New(gemini.Config{APIKey: "k", Endpoint: srv.URL})

	insight := domain.Insight{Analysis: "hello", Tips: []string{"one"}, Sentiment: domain.SentimentNeutral}
	translated, err := client.TranslateInsight(context.Background(), insight, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "hola", translated.Analysis)
}
