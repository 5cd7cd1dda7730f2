package content

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"generation-service/stubllm"
	"generation-service/uploads"
)

func scratchFile(t *testing.T, data []byte, mimeType string) *uploads.ScratchFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scratch.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return &uploads.ScratchFile{Path: path, MIMEType: mimeType}
}

func TestBuildInlineRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mimeType string
	}{
		{"text bytes", []byte("hello world"), "text/plain"},
		{"binary bytes", []byte{0x00, 0xff, 0x10, 0x89, 0x50, 0x4e, 0x47}, "image/png"},
		{"single byte", []byte{0x42}, "application/pdf"},
	}

	builder := NewBuilder(1 << 20)
	stub := stubllm.NewClient("unused")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := builder.Build(context.Background(), stub, "describe", scratchFile(t, tt.data, tt.mimeType))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			if len(parts) != 2 {
				t.Fatalf("len(parts) = %d, want 2", len(parts))
			}
			if parts[0].Text != "describe" {
				t.Errorf("parts[0].Text = %q, want %q", parts[0].Text, "describe")
			}
			if parts[1].InlineData == nil {
				t.Fatal("parts[1].InlineData is nil, expected inline strategy")
			}
			if parts[1].InlineData.MIMEType != tt.mimeType {
				t.Errorf("MIMEType = %q, want %q", parts[1].InlineData.MIMEType, tt.mimeType)
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1].InlineData.Data)
			if err != nil {
				t.Fatalf("DecodeString: %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip = %v, want %v", decoded, tt.data)
			}
		})
	}

	if len(stub.Uploads) != 0 {
		t.Errorf("inline strategy must not upload, got %d uploads", len(stub.Uploads))
	}
}

func TestBuildRemoteOverThreshold(t *testing.T) {
	builder := NewBuilder(4)
	stub := stubllm.NewClient("unused")
	data := []byte("well over four bytes")

	parts, err := builder.Build(context.Background(), stub, "describe", scratchFile(t, data, "audio/mpeg"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(stub.Uploads) != 1 {
		t.Fatalf("len(Uploads) = %d, want 1", len(stub.Uploads))
	}
	if stub.Uploads[0].MIMEType != "audio/mpeg" {
		t.Errorf("uploaded MIMEType = %q, want %q", stub.Uploads[0].MIMEType, "audio/mpeg")
	}
	if stub.Uploads[0].Size != len(data) {
		t.Errorf("uploaded size = %d, want %d", stub.Uploads[0].Size, len(data))
	}

	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if parts[1].FileData == nil {
		t.Fatal("parts[1].FileData is nil, expected remote strategy")
	}
	if parts[1].FileData.URI == "" {
		t.Error("FileData.URI is empty")
	}
	if parts[1].InlineData != nil {
		t.Error("parts[1].InlineData set alongside FileData")
	}
}

func TestBuildExactThresholdStaysInline(t *testing.T) {
	data := []byte("1234")
	builder := NewBuilder(int64(len(data)))
	stub := stubllm.NewClient("unused")

	parts, err := builder.Build(context.Background(), stub, "describe", scratchFile(t, data, "text/plain"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if parts[1].InlineData == nil {
		t.Error("payload at the threshold should stay inline")
	}
	if len(stub.Uploads) != 0 {
		t.Errorf("len(Uploads) = %d, want 0", len(stub.Uploads))
	}
}

func TestBuildMissingScratchFile(t *testing.T) {
	builder := NewBuilder(1 << 20)
	stub := stubllm.NewClient("unused")
	missing := &uploads.ScratchFile{Path: filepath.Join(t.TempDir(), "gone.bin"), MIMEType: "text/plain"}

	if _, err := builder.Build(context.Background(), stub, "describe", missing); err == nil {
		t.Error("expected error for missing scratch file")
	}
}

func TestInlinePart(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	part := InlinePart(data, "application/octet-stream")

	if part.InlineData == nil {
		t.Fatal("InlineData is nil")
	}
	if part.InlineData.MIMEType != "application/octet-stream" {
		t.Errorf("MIMEType = %q", part.InlineData.MIMEType)
	}
	if part.InlineData.Data != base64.StdEncoding.EncodeToString(data) {
		t.Errorf("Data = %q, want base64 of input", part.InlineData.Data)
	}
}
