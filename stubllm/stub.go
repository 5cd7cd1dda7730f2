package stubllm

import (
	"context"
	"sync"

	"generation-service/llm"
)

// Client is a deterministic, no-network provider stub intended for CI and
// handler tests. It records the calls it receives so tests can assert on the
// models and content parts the relay produced.
type Client struct {
	mu sync.Mutex

	// Output is returned from GenerateContent when GenerateErr is nil.
	Output string
	// GenerateErr, when set, makes GenerateContent fail.
	GenerateErr error
	// UploadErr, when set, makes UploadFile fail.
	UploadErr error

	// Calls records every GenerateContent invocation.
	Calls []GenerateCall
	// Uploads records every UploadFile invocation.
	Uploads []UploadCall
}

// GenerateCall is one recorded GenerateContent invocation.
type GenerateCall struct {
	Model string
	Parts []llm.Part
}

// UploadCall is one recorded UploadFile invocation.
type UploadCall struct {
	MIMEType string
	Size     int
}

func NewClient(output string) *Client {
	return &Client{Output: output}
}

func (c *Client) SourceName() string { return "Stub" }

func (c *Client) UploadFile(ctx context.Context, data []byte, mimeType string) (*llm.FileRef, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.UploadErr != nil {
		return nil, c.UploadErr
	}
	c.Uploads = append(c.Uploads, UploadCall{MIMEType: mimeType, Size: len(data)})
	return &llm.FileRef{MIMEType: mimeType, URI: "files/stub-upload"}, nil
}

func (c *Client) GenerateContent(ctx context.Context, model string, parts []llm.Part) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, GenerateCall{Model: model, Parts: parts})
	if c.GenerateErr != nil {
		return "", c.GenerateErr
	}
	return c.Output, nil
}
