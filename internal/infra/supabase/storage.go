package supabase

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

const pdfContentType = "application/pdf"

// cacheControlHeader turns a max-age in seconds into a Cache-Control value.
// Anything else is taken as a ready-made directive.
func cacheControlHeader(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.Trim(value, "0123456789") != "" {
		return value
	}
	return "max-age=" + value
}

// TrainingStorage implements training.Storage with a Supabase Storage bucket.
type TrainingStorage struct {
	client       *storage_go.Client
	bucket       string
	cacheControl string
}

func NewTrainingStorage(client *storage_go.Client, bucket, cacheControl string) *TrainingStorage {
	return &TrainingStorage{
		client:       client,
		bucket:       bucket,
		cacheControl: cacheControlHeader(cacheControl),
	}
}

// Upload stores content at key, replacing any existing object (upsert).
func (s *TrainingStorage) Upload(ctx context.Context, key string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cacheControl := s.cacheControl
	contentType := pdfContentType
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, content, storage_go.FileOptions{
		CacheControl: &cacheControl,
		ContentType:  &contentType,
		Upsert:       &upsert,
	})
	if err != nil {
		return fmt.Errorf("error uploading %s to bucket %s: %w", key, s.bucket, err)
	}
	return nil
}
