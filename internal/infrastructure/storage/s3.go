package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"crewhub/internal/shared/logger"
)

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional, for S3-compatible stores (MinIO, R2)
	PublicBaseURL   string // Optional, overrides the default object URL base
}

// S3FileStorage stores uploaded assets in an S3 bucket and hands back
// their public URL.
type S3FileStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  logger.Interface
}

func NewS3FileStorage(ctx context.Context, cfg S3Config, log logger.Interface) (*S3FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3FileStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  log,
	}, nil
}

func (s *S3FileStorage) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	s.logger.Debugw("object uploaded", "bucket", s.bucket, "key", key, "size", len(body))

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Delete accepts either a raw object key or the full URL previously
// returned by Upload.
func (s *S3FileStorage) Delete(ctx context.Context, keyOrURL string) error {
	key := s.keyFrom(keyOrURL)
	if key == "" {
		return fmt.Errorf("cannot derive object key from %q", keyOrURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	s.logger.Debugw("object deleted", "bucket", s.bucket, "key", key)

	return nil
}

func (s *S3FileStorage) keyFrom(keyOrURL string) string {
	if !strings.Contains(keyOrURL, "://") {
		return strings.TrimPrefix(keyOrURL, "/")
	}
	if strings.HasPrefix(keyOrURL, s.baseURL+"/") {
		return strings.TrimPrefix(keyOrURL, s.baseURL+"/")
	}
	u, err := url.Parse(keyOrURL)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(u.Path, "/")
	// Path-style URLs carry the bucket as the first segment.
	path = strings.TrimPrefix(path, s.bucket+"/")
	return path
}
