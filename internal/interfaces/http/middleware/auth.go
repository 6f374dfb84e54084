package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/user"
	infraauth "github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// AuthMiddleware authenticates bearer tokens. The token only proves the user
// id; the user row is re-fetched on every request so a rejection or deletion
// takes effect immediately, not at token expiry.
type AuthMiddleware struct {
	jwtService *infraauth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *infraauth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		account, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "User not found")
			} else {
				m.logger.Errorw("failed to resolve token user", "user_id", claims.UserID, "error", err)
				utils.ErrorResponseWithError(c, err)
			}
			c.Abort()
			return
		}

		if !account.IsApproved() {
			utils.ErrorResponseWithError(c, errors.NewPendingApprovalError(account.Status().String()))
			c.Abort()
			return
		}

		c.Set(auth.ContextKey, auth.NewUserIdentity(account.ID(), account.Name(), account.Role()))
		c.Next()
	}
}

// CallerIdentity reads the identity set by RequireAuth or RequireAdmin.
func CallerIdentity(c *gin.Context) auth.Identity {
	value, exists := c.Get(auth.ContextKey)
	if !exists {
		return auth.Identity{}
	}
	identity, ok := value.(auth.Identity)
	if !ok {
		return auth.Identity{}
	}
	return identity
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
