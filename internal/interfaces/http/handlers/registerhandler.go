package handlers

import (
	"github.com/gin-gonic/gin"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// maxRegistrationFileSize caps the attached business document at 10MB.
const maxRegistrationFileSize = 10 << 20

type RegisterHandler struct {
	registerUC userusecases.RegisterExecutor
	logger     logger.Interface
}

func NewRegisterHandler(registerUC userusecases.RegisterExecutor, logger logger.Interface) *RegisterHandler {
	return &RegisterHandler{registerUC: registerUC, logger: logger}
}

// Register handles POST /api/register (multipart form).
func (h *RegisterHandler) Register(c *gin.Context) {
	cmd := userusecases.RegisterCommand{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Password:    c.PostForm("password"),
		CompanyName: c.PostForm("company_name"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > maxRegistrationFileSize {
			utils.ErrorResponseWithError(c, errors.NewValidationError("File too large. Maximum size is 10MB."))
			return
		}

		file, openErr := fileHeader.Open()
		if openErr != nil {
			h.logger.Errorw("failed to open uploaded file", "file_name", fileHeader.Filename, "error", openErr)
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("File upload error"))
			return
		}
		defer file.Close()

		cmd.File = file
		cmd.FileName = fileHeader.Filename
		cmd.FileContentType = fileHeader.Header.Get("Content-Type")
		cmd.FileSize = fileHeader.Size
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"user": result.User},
		"Registration successful! Your account is pending admin approval.")
}
