package interfaces

import "context"

// Uploader stores a file in external object storage and returns the public
// URL to persist alongside the dokumen mutu row. Implemented by
// pkg/cloudinary; stubbed in tests.
type Uploader interface {
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
}
