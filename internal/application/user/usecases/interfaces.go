package usecases

import (
	"context"
	"io"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues signed, time-limited tokens binding a user id.
type TokenService interface {
	Generate(userID uint) (string, error)
}

// DocumentStore persists registration documents. Store returns the public
// URL and the object key; the key lets the caller delete the document when a
// later step fails.
type DocumentStore interface {
	Store(ctx context.Context, originalName string, body io.Reader, contentType string, size int64) (url string, key string, err error)
	Remove(ctx context.Context, key string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error)
}
