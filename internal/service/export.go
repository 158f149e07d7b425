package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pageza/moodrecipes/backend/internal/model"
)

// ObjectPutter is the subset of the S3 client used for exports
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Snapshot is the document written by an export
type Snapshot struct {
	ExportedAt time.Time      `json:"exported_at"`
	Count      int            `json:"count"`
	Recipes    []model.Recipe `json:"recipes"`
}

// ExportService writes JSON snapshots of the recipe table to S3
type ExportService struct {
	recipes *RecipeService
	client  ObjectPutter
	bucket  string
	now     func() time.Time
}

// NewExportService creates a new ExportService instance
func NewExportService(recipes *RecipeService, client ObjectPutter, bucket string) *ExportService {
	return &ExportService{
		recipes: recipes,
		client:  client,
		bucket:  bucket,
		now:     time.Now,
	}
}

// Export uploads every recipe and returns the object key it wrote
func (s *ExportService) Export(ctx context.Context) (string, error) {
	recipes, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	body, err := json.Marshal(Snapshot{
		ExportedAt: now,
		Count:      len(recipes),
		Recipes:    recipes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := SnapshotKey(now)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	return key, nil
}

// SnapshotKey is the object key for a snapshot taken at t
func SnapshotKey(t time.Time) string {
	return "recipes/" + t.UTC().Format("20060102T150405Z") + ".json"
}
