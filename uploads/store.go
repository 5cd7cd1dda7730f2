package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ScratchFile is one materialized upload. It is owned by the handler that
// created it and must be released with Delete on every exit path.
type ScratchFile struct {
	Path     string
	MIMEType string
}

// Store materializes uploads into a scratch directory on local disk.
type Store struct {
	dir string
}

// NewStore creates the scratch directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save copies an uploaded file into the scratch directory under a unique name,
// keeping the original extension. The declared Content-Type is trusted; when
// the upload carries none, the written bytes are sniffed, falling back to
// application/octet-stream.
func (s *Store) Save(fh *multipart.FileHeader) (*ScratchFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close scratch file: %w", err)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		if detected, err := mimetype.DetectFile(path); err == nil {
			mimeType = detected.String()
		} else {
			mimeType = "application/octet-stream"
		}
	}

	return &ScratchFile{Path: path, MIMEType: mimeType}, nil
}

// Delete removes a scratch file. A file that is already gone is not an error,
// so the call is safe on every exit path.
func (s *Store) Delete(f *ScratchFile) error {
	if f == nil {
		return nil
	}
	if _, err := os.Stat(f.Path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(f.Path)
}
