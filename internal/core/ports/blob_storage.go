package ports

import (
	"context"
	"io"
)

// BlobStorage stores product images and returns public URLs for them.
type BlobStorage interface {
	// Upload stores the blob under the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the blob behind the given public URL. Unknown URLs are
	// not an error.
	Delete(ctx context.Context, url string) error
}
