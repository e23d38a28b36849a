// Package s3blob stores product images in an S3 bucket and serves them back
// through their public object URLs.
package s3blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"caramelt/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage implements BlobStorage on top of an S3 bucket.
type Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

var _ ports.BlobStorage = (*Storage)(nil)

// NewStorage creates an S3-backed blob storage using the default AWS
// credential chain. The bucket must allow public reads on uploaded objects.
func NewStorage(ctx context.Context, bucket, region string) (*Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Storage{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		baseURL:  fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region),
	}, nil
}

// Upload stores the blob under the given key and returns its public URL.
func (s *Storage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s: %w", key, err)
	}

	return result.Location, nil
}

// Delete removes the object behind the given public URL. URLs outside this
// bucket are ignored, as are already-deleted keys; product image cleanup is
// best effort.
func (s *Storage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting %s: %w", key, err)
	}

	return nil
}

func (s *Storage) keyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL) {
		return "", false
	}

	key := strings.TrimPrefix(url, s.baseURL)
	if key == "" {
		return "", false
	}
	return key, true
}
