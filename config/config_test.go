package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// Clear anything the surrounding environment may have set.
	for _, key := range []string{"PORT", "GEMINI_TEXT_MODEL", "UPLOAD_DIR", "INLINE_MAX_BYTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.TextModel != "gemini-1.5-flash" {
		t.Errorf("TextModel = %q, want %q", cfg.TextModel, "gemini-1.5-flash")
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, want %q", cfg.UploadDir, "uploads")
	}
	if cfg.InlineMaxBytes != 20<<20 {
		t.Errorf("InlineMaxBytes = %d, want %d", cfg.InlineMaxBytes, 20<<20)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_IMAGE_MODEL", "gemini-1.5-pro")
	t.Setenv("INLINE_MAX_BYTES", "1024")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "secret")
	}
	if cfg.ImageModel != "gemini-1.5-pro" {
		t.Errorf("ImageModel = %q, want %q", cfg.ImageModel, "gemini-1.5-pro")
	}
	if cfg.InlineMaxBytes != 1024 {
		t.Errorf("InlineMaxBytes = %d, want 1024", cfg.InlineMaxBytes)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("INLINE_MAX_BYTES", "not-a-number")

	cfg := Load()

	if cfg.InlineMaxBytes != 20<<20 {
		t.Errorf("InlineMaxBytes = %d, want default %d", cfg.InlineMaxBytes, 20<<20)
	}
}
