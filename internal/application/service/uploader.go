package service

import (
	"context"
	"io"
)

type Uploader interface {
	// Upload stores file under folder and returns its public https URL.
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	// UploadRaw stores a non-image document, overwriting publicID.
	UploadRaw(ctx context.Context, file io.Reader, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
