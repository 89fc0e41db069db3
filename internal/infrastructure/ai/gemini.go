// Package ai implements the generative-AI provider port against the Gemini
// REST API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrEmptyResponse indicates the provider returned no usable candidate.
var ErrEmptyResponse = errors.New("ai: empty provider response")

// Config captures the settings for the provider client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls the Gemini generateContent endpoint over HTTP.
type GeminiClient struct {
	client *resty.Client
	model  string
	apiKey string
}

// NewGeminiClient builds a provider client with sane defaults.
func NewGeminiClient(cfg Config) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &GeminiClient{client: cli, model: cfg.Model, apiKey: cfg.APIKey}
}

// --- Wire types ---

type filePart struct {
	MimeType string `json:"mime_type"`
	FileURI  string `json:"file_uri"`
}

type contentPart struct {
	Text     string    `json:"text,omitempty"`
	FileData *filePart `json:"file_data,omitempty"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate answers a free-form chat prompt.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generateContent(ctx, []contentPart{{Text: prompt}})
}

// LabelImage asks the model for comma-separated labels describing the image.
func (g *GeminiClient) LabelImage(ctx context.Context, imageURL string) ([]string, error) {
	const labelPrompt = "List short descriptive labels for this city image, comma-separated, no explanations."

	text, err := g.generateContent(ctx, []contentPart{
		{Text: labelPrompt},
		{FileData: &filePart{MimeType: "image/jpeg", FileURI: imageURL}},
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, raw := range strings.Split(text, ",") {
		if label := strings.TrimSpace(raw); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return nil, ErrEmptyResponse
	}
	return labels, nil
}

// Transcribe converts the referenced audio file to text.
func (g *GeminiClient) Transcribe(ctx context.Context, audioURL, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/mpeg"
	}
	return g.generateContent(ctx, []contentPart{
		{Text: "Transcribe this audio recording. Return only the transcript."},
		{FileData: &filePart{MimeType: mimeType, FileURI: audioURL}},
	})
}

func (g *GeminiClient) generateContent(ctx context.Context, parts []contentPart) (string, error) {
	var out generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(generateRequest{Contents: []content{{Parts: parts}}}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("ai request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ai request: provider returned %s", resp.Status())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
