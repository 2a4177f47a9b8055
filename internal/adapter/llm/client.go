// Package llm talks to an OpenAI-compatible chat-completions endpoint to
// moderate and generate ad texts.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/IvanSaydyashev/AdEngine/internal/config/configs"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

const moderationPrompt = `You moderate advertising copy. Check the ad text for profanity or ` +
	`offensive language. If the text contains such words, respond with only ` +
	`{"status": "reject", "reason": "<short reason>"}. Otherwise respond with only ` +
	`{"status": "accept"}.`

const generationPrompt = `Generate an advertising text for the following ad based on its name, ` +
	`targeting and the advertiser's name. Be creative and catch the user's attention. ` +
	`Respond with only the generated text, no explanations.`

// Client implements port.TextService.
type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewClient builds a text service from configuration.
func NewClient(cfg configs.LLM) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// Validate asks the model whether the ad text is acceptable. The model's
// verdict must be the JSON contract above; anything else is an error, not a
// rejection.
func (c *Client) Validate(ctx context.Context, adText string) (port.ModerationResult, error) {
	payload, err := json.Marshal(map[string]string{"ad_text": adText})
	if err != nil {
		return port.ModerationResult{}, err
	}
	answer, err := c.complete(ctx, moderationPrompt, string(payload))
	if err != nil {
		return port.ModerationResult{}, err
	}

	var verdict struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err = json.Unmarshal([]byte(answer), &verdict); err != nil {
		return port.ModerationResult{}, fmt.Errorf("malformed moderation verdict %q: %w", answer, err)
	}
	return port.ModerationResult{
		Accepted: verdict.Status == "accept",
		Reason:   verdict.Reason,
	}, nil
}

// Generate produces an ad text from the request parameters.
func (c *Client) Generate(ctx context.Context, req port.GenerationRequest) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"ad_name":         req.AdName,
		"advertiser_name": req.AdvertiserName,
		"targeting":       req.Targeting,
	})
	if err != nil {
		return "", err
	}
	answer, err := c.complete(ctx, generationPrompt, string(payload))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read llm response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm returned %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

var _ port.TextService = (*Client)(nil)
