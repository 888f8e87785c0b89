package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/mamadbah2/agroboard/internal/domain/models"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

// Client is the text-completion and structured-generation provider behind
// the advisory screens. The core never calls it; failures stay at the
// presentation boundary.
type Client interface {
	Complete(ctx context.Context, system string, history []models.ChatMessage, prompt string) (string, error)
	MarketQuotes(ctx context.Context) ([]models.Quote, error)
	Forecast(ctx context.Context, location string) (*models.Forecast, error)
}

type advisoryClient struct {
	httpClient *resty.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient creates a configured advisory client. Calls go through a circuit
// breaker so a degraded upstream stops consuming request budget quickly.
func NewClient(apiKey string) Client {
	httpClient := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "advisory",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &advisoryClient{httpClient: httpClient, breaker: breaker}
}

type messageRequest struct {
	Model     string               `json:"model"`
	MaxTokens int                  `json:"max_tokens"`
	System    string               `json:"system"`
	Messages  []models.ChatMessage `json:"messages"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends the conversation plus the new prompt and returns the free
// text reply.
func (c *advisoryClient) Complete(ctx context.Context, system string, history []models.ChatMessage, prompt string) (string, error) {
	messages := append(append([]models.ChatMessage{}, history...), models.ChatMessage{Role: "user", Content: prompt})
	return c.send(ctx, system, messages, "")
}

const quotesPrompt = `Look up current quotations for: commercial dollar (BRL), 60kg soybean sack (CEPEA/Paranagua), 60kg corn sack (CEPEA) and fat cattle arroba (CEPEA/B3). Return today's values and trend.
Respond with ONLY a JSON object of this exact shape:
{"quotes": [{"name": string, "value": string, "change": string, "trend": "up"|"down"|"stable", "source": string}]}`

// MarketQuotes asks for the commodity board as structured JSON.
func (c *advisoryClient) MarketQuotes(ctx context.Context) ([]models.Quote, error) {
	text, err := c.send(ctx, "You are a commodity market analyst for beef cattle operations.", []models.ChatMessage{{Role: "user", Content: quotesPrompt}}, "{")
	if err != nil {
		return nil, err
	}

	var out struct {
		Quotes []models.Quote `json:"quotes"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode quotes response: %w", err)
	}
	return out.Quotes, nil
}

const forecastSystem = "You are a meteorological consultant for livestock operations. Provide structured data focused on forage growth and animal thermal comfort."

// Forecast asks for a livestock-focused weather forecast as structured JSON.
func (c *advisoryClient) Forecast(ctx context.Context, location string) (*models.Forecast, error) {
	prompt := fmt.Sprintf(`Generate a livestock-focused weather forecast for %s. Consider humidity for pasture growth and animal heat stress.
Respond with ONLY a JSON object of this exact shape:
{"current": {"temp": number, "condition": string, "humidity": number, "wind_speed": number},
 "forecast": [{"date": string, "max": number, "min": number, "condition": string, "rain_prob": number}],
 "insights": {"thermal_comfort": string, "pasture_growth": string, "general_advice": string}}`, location)

	text, err := c.send(ctx, forecastSystem, []models.ChatMessage{{Role: "user", Content: prompt}}, "{")
	if err != nil {
		return nil, err
	}

	var out models.Forecast
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	return &out, nil
}

// send performs one messages-API call. A non-empty prefill is appended as a
// partial assistant turn to force JSON output and is re-attached to the
// response text.
func (c *advisoryClient) send(ctx context.Context, system string, messages []models.ChatMessage, prefill string) (string, error) {
	if prefill != "" {
		messages = append(messages, models.ChatMessage{Role: "assistant", Content: prefill})
	}

	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  messages,
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var respBody messageResponse
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBody(reqBody).
			SetResult(&respBody).
			Post(apiURL)
		if err != nil {
			return nil, fmt.Errorf("advisory api call: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("advisory api error: %s", resp.String())
		}
		if len(respBody.Content) == 0 {
			return nil, fmt.Errorf("empty response from advisory api")
		}
		return respBody.Content[0].Text, nil
	})
	if err != nil {
		return "", err
	}

	text := prefill + result.(string)
	return stripCodeFence(text), nil
}

// stripCodeFence removes markdown code fences the model sometimes wraps
// around JSON answers.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
