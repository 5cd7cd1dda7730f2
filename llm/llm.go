package llm

import "context"

// InlineData is a media payload embedded directly in a generation request.
// Data is base64-encoded, matching the wire representation of the provider API.
type InlineData struct {
	MIMEType string
	Data     string
}

// FileRef points at a file previously uploaded to the provider's file storage.
type FileRef struct {
	MIMEType string
	URI      string
}

// Part is one element of the ordered content list sent to the provider.
// Exactly one of Text, InlineData or FileData is set.
type Part struct {
	Text       string
	InlineData *InlineData
	FileData   *FileRef
}

// Client abstracts the generative provider used by the relay.
// Implementations must be concurrency-safe if used across goroutines.
type Client interface {
	// UploadFile pushes raw media bytes to the provider's file storage and
	// returns a reference usable in a FileData part.
	UploadFile(ctx context.Context, data []byte, mimeType string) (*FileRef, error)
	// GenerateContent submits an ordered content list to the given model and
	// returns the generated text.
	GenerateContent(ctx context.Context, model string, parts []Part) (string, error)
	// SourceName returns a short provider label (e.g., "Gemini", "Stub").
	SourceName() string
}
