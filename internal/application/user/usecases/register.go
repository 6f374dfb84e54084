package usecases

import (
	"context"
	"io"
	"strings"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterCommand struct {
	Name        string
	Email       string
	Password    string
	CompanyName string

	// The attached business document. FileName and File must both be set;
	// the handler rejects requests without a file part before reaching here.
	FileName        string
	FileContentType string
	FileSize        int64
	File            io.Reader
}

type RegisterResult struct {
	User *UserResult
}

// RegisterUseCase handles new account signups. The document upload happens
// before the row insert; when the insert fails the uploaded object is removed
// so no orphaned document survives a failed registration.
type RegisterUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	documents DocumentStore
	logger    logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	documents DocumentStore,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		documents: documents,
		logger:    logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if _, err := uc.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.NewConflictError("User with this email already exists")
	} else if !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check email availability", "email", email, "error", err)
		return nil, err
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process registration")
	}

	fileURL, fileKey, err := uc.documents.Store(ctx, cmd.FileName, cmd.File, cmd.FileContentType, cmd.FileSize)
	if err != nil {
		uc.logger.Errorw("failed to upload registration document", "file_name", cmd.FileName, "error", err)
		return nil, errors.NewUpstreamError("File upload failed")
	}

	newUser, err := user.NewUser(cmd.Name, email, passwordHash, cmd.CompanyName, fileURL, cmd.FileName)
	if err != nil {
		uc.removeDocument(ctx, fileKey)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Compensating delete so a failed insert leaves no orphaned file.
		// Its own failure is logged, never surfaced over the insert error.
		uc.removeDocument(ctx, fileKey)
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "id", newUser.ID(), "email", newUser.Email())

	return &RegisterResult{User: NewUserResult(newUser)}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if strings.TrimSpace(cmd.Name) == "" ||
		strings.TrimSpace(cmd.Email) == "" ||
		cmd.Password == "" ||
		strings.TrimSpace(cmd.CompanyName) == "" {
		return errors.NewValidationError("Missing required fields: name, email, password, company_name")
	}
	if cmd.File == nil || cmd.FileName == "" {
		return errors.NewValidationError("File is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("Password must be at least 6 characters long")
	}
	return nil
}

func (uc *RegisterUseCase) removeDocument(ctx context.Context, key string) {
	if err := uc.documents.Remove(ctx, key); err != nil {
		uc.logger.Errorw("failed to clean up registration document", "key", key, "error", err)
	}
}
