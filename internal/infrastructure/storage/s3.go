// Package storage wraps the S3-compatible object store holding signup
// documents and ticket attachments.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sharedConfig "github.com/Hardik-Dharmik/shipping-b/internal/shared/config"
)

// Client exposes the three operations the services need: upload a file,
// delete it again as a compensating action, and derive its public URL.
type Client interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string, size int64) error
	Delete(ctx context.Context, bucket, key string) error
	PublicURL(bucket, key string) string
}

type S3Client struct {
	client        *s3.Client
	publicBaseURL string
}

// NewS3Client builds a client against the configured S3-compatible endpoint.
func NewS3Client(cfg *sharedConfig.StorageConfig) (*S3Client, error) {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.AccessKeyID,
		cfg.SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		client:        client,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

func (c *S3Client) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string, size int64) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (c *S3Client) Delete(ctx context.Context, bucket, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (c *S3Client) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", c.publicBaseURL, bucket, key)
}

// SignupDocumentKey builds the content-addressed key for a registration
// document: timestamp plus random suffix plus the original extension, under
// a fixed logical folder.
func SignupDocumentKey(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("signup-documents/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// TicketAttachmentKey builds the per-ticket key for a message attachment.
func TicketAttachmentKey(ticketID uint, originalName string) string {
	return fmt.Sprintf("%d/%d_%s", ticketID, time.Now().UnixMilli(), originalName)
}
