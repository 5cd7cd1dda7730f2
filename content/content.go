package content

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"generation-service/llm"
	"generation-service/metrics"
	"generation-service/uploads"
)

// Builder converts a prompt plus a scratch file into the ordered content list
// sent to the provider. Media at or below InlineMaxBytes is embedded as base64
// inline data; anything larger is uploaded to the provider's file storage
// first and referenced by URI. The threshold keeps small payloads to a single
// remote call while keeping large ones out of the generation request body.
type Builder struct {
	InlineMaxBytes int64
}

func NewBuilder(inlineMaxBytes int64) *Builder {
	return &Builder{InlineMaxBytes: inlineMaxBytes}
}

// Build returns the content list [text part, media part] for one request.
func (b *Builder) Build(ctx context.Context, client llm.Client, prompt string, file *uploads.ScratchFile) ([]llm.Part, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch file: %w", err)
	}

	var media llm.Part
	if int64(len(data)) <= b.InlineMaxBytes {
		media = InlinePart(data, file.MIMEType)
	} else {
		start := time.Now()
		ref, err := client.UploadFile(ctx, data, file.MIMEType)
		metrics.RemoteCallDurationSeconds.WithLabelValues("upload").Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}
		media = llm.Part{FileData: ref}
	}

	return []llm.Part{{Text: prompt}, media}, nil
}

// InlinePart wraps raw media bytes as a base64 inline-data part.
func InlinePart(data []byte, mimeType string) llm.Part {
	return llm.Part{
		InlineData: &llm.InlineData{
			MIMEType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		},
	}
}
