package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// adminTokenHeader carries the static admin secret used by operational
// tooling that has no user account.
const adminTokenHeader = "X-Admin-Token"

// AdminMiddleware gates the admin surface. Two ways in: a bearer token whose
// user has the admin role, or the configured shared-secret header.
type AdminMiddleware struct {
	authMiddleware *AuthMiddleware
	adminToken     string
	logger         logger.Interface
}

func NewAdminMiddleware(authMiddleware *AuthMiddleware, adminToken string, logger logger.Interface) *AdminMiddleware {
	return &AdminMiddleware{
		authMiddleware: authMiddleware,
		adminToken:     adminToken,
		logger:         logger,
	}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	requireAuth := m.authMiddleware.RequireAuth()

	return func(c *gin.Context) {
		if header := c.GetHeader(adminTokenHeader); header != "" {
			if m.adminToken == "" || subtle.ConstantTimeCompare([]byte(header), []byte(m.adminToken)) != 1 {
				m.logger.Warnw("admin token rejected", "client_ip", c.ClientIP())
				utils.ErrorResponseWithError(c, errors.NewAdminRequiredError())
				c.Abort()
				return
			}
			c.Set(auth.ContextKey, auth.NewAdminSecretIdentity())
			c.Next()
			return
		}

		requireAuth(c)
		if c.IsAborted() {
			return
		}

		if !CallerIdentity(c).IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewAdminRequiredError())
			c.Abort()
			return
		}

		c.Next()
	}
}
