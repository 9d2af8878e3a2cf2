// Package objectstore implements S3-compatible storage for proof attachments.
// It targets R2-style deployments: custom endpoint, static credentials and a
// public base URL served by a CDN in front of the bucket.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/questlinehq/questline-backend/internal/config"
)

// Store uploads objects to an S3-compatible bucket.
type Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	log           *slog.Logger
}

// New builds a Store from config. The endpoint is the S3 API endpoint of the
// storage provider; PublicBaseURL is what download links are built from.
func New(ctx context.Context, cfg config.ObjectStoreConfig, logger *slog.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		log:           logger.With("adapter", "objectstore"),
	}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("objectstore: put object %s: %w", key, err)
	}

	url := s.publicBaseURL + "/" + key

	s.log.DebugContext(ctx, "uploaded object",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return url, nil
}
