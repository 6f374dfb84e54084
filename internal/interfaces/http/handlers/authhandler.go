package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/http/middleware"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	loginUC          userusecases.LoginExecutor
	getCurrentUserUC userusecases.GetCurrentUserExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC userusecases.LoginExecutor,
	getCurrentUserUC userusecases.GetCurrentUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		logger:           logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Email and password are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to invalidate server-side; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK,
		"Logout successful. Please clear your token on the client side.", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CallerIdentity(c)
	if identity.Kind() != auth.IdentityUser {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User profile not found")
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), userusecases.GetCurrentUserQuery{
		UserID: identity.UserID(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"user": result})
}

// VerifyToken handles POST /api/auth/verify-token. Reaching the handler at
// all means the auth middleware accepted the token.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	identity := middleware.CallerIdentity(c)
	utils.SuccessResponse(c, http.StatusOK, "Token is valid", gin.H{
		"user_id": identity.UserID(),
		"role":    identity.Role().String(),
	})
}
