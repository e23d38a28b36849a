package s3blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	storage := &Storage{
		bucket:  "caramelt-images",
		baseURL: "https://caramelt-images.s3.eu-west-1.amazonaws.com/",
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "object in this bucket",
			url:     "https://caramelt-images.s3.eu-west-1.amazonaws.com/products/1717000000-abc123.jpg",
			wantKey: "products/1717000000-abc123.jpg",
			wantOK:  true,
		},
		{
			name:   "foreign host",
			url:    "https://cdn.example.com/products/cake.jpg",
			wantOK: false,
		},
		{
			name:   "bucket root without key",
			url:    "https://caramelt-images.s3.eu-west-1.amazonaws.com/",
			wantOK: false,
		},
		{
			name:   "empty url",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := storage.keyFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
