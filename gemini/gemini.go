package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"generation-service/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the relay's single owned handle to the Gemini API. It is safe for
// concurrent use and should be constructed once at startup and injected into
// the handlers.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Gemini client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) SourceName() string {
	return "Gemini"
}

// UploadFile pushes media bytes to the Gemini file storage and returns the
// remote reference for use in a generation request. A single attempt is made;
// failures propagate to the caller.
func (c *Client) UploadFile(ctx context.Context, data []byte, mimeType string) (*llm.FileRef, error) {
	file, err := c.client.UploadFile(ctx, "", bytes.NewReader(data), &genai.UploadFileOptions{
		MIMEType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini upload: %w", err)
	}
	return &llm.FileRef{MIMEType: file.MIMEType, URI: file.URI}, nil
}

// GenerateContent submits the content list to the given model and returns the
// first text part of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, model string, parts []llm.Part) (string, error) {
	genParts, err := toGenaiParts(parts)
	if err != nil {
		return "", err
	}

	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, genParts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if text, ok := p.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", errors.New("gemini: no text part in response")
}

// toGenaiParts converts the relay's content parts to SDK parts. Inline data
// arrives base64-encoded and is decoded back to raw bytes here.
func toGenaiParts(parts []llm.Part) ([]genai.Part, error) {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.InlineData != nil:
			raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("gemini: decode inline data: %w", err)
			}
			out = append(out, genai.Blob{MIMEType: p.InlineData.MIMEType, Data: raw})
		case p.FileData != nil:
			out = append(out, genai.FileData{MIMEType: p.FileData.MIMEType, URI: p.FileData.URI})
		default:
			out = append(out, genai.Text(p.Text))
		}
	}
	return out, nil
}
