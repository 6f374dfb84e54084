package storage

import (
	"context"
	"fmt"
	"io"
)

// SignupStore binds the S3 client to the registration-documents bucket and
// its key scheme.
type SignupStore struct {
	client Client
	bucket string
}

func NewSignupStore(client Client, bucket string) *SignupStore {
	return &SignupStore{client: client, bucket: bucket}
}

// Store uploads a registration document and returns its public URL and the
// object key, which the caller keeps for compensating deletes.
func (s *SignupStore) Store(ctx context.Context, originalName string, body io.Reader, contentType string, size int64) (string, string, error) {
	key := SignupDocumentKey(originalName)
	if err := s.client.Upload(ctx, s.bucket, key, body, contentType, size); err != nil {
		return "", "", fmt.Errorf("failed to upload signup document: %w", err)
	}
	return s.client.PublicURL(s.bucket, key), key, nil
}

// Remove deletes a previously stored document.
func (s *SignupStore) Remove(ctx context.Context, key string) error {
	return s.client.Delete(ctx, s.bucket, key)
}

// TicketStore binds the S3 client to the ticket-attachments bucket and its
// per-ticket key scheme.
type TicketStore struct {
	client Client
	bucket string
}

func NewTicketStore(client Client, bucket string) *TicketStore {
	return &TicketStore{client: client, bucket: bucket}
}

// Store uploads a ticket attachment and returns its public URL.
func (s *TicketStore) Store(ctx context.Context, ticketID uint, originalName string, body io.Reader, contentType string, size int64) (string, error) {
	key := TicketAttachmentKey(ticketID, originalName)
	if err := s.client.Upload(ctx, s.bucket, key, body, contentType, size); err != nil {
		return "", fmt.Errorf("failed to upload ticket attachment: %w", err)
	}
	return s.client.PublicURL(s.bucket, key), nil
}
