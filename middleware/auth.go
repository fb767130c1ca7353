package middleware

import (
	"errors"
	"net/http"

	"ansh-apparels/libs"
	"ansh-apparels/models"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextUser   = "user"
)

// SessionMiddleware requires a live session cookie. Bearer tokens are not
// accepted here.
func SessionMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := auth.SessionUserID(c.Request.Context(), libs.SessionIDFromRequest(c))
		if err != nil {
			abortAuth(c, err)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserMiddleware resolves the current user from the session cookie, falling
// back to an Authorization bearer token when no cookie was sent.
func UserMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Identify(c.Request.Context(), libs.SessionIDFromRequest(c), libs.BearerToken(c))
		if err != nil {
			abortAuth(c, err)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not logged in"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Message: "Not authorized"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func abortAuth(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotLoggedIn):
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Not logged in"})
	case errors.Is(err, models.ErrSessionExpired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Session expired"})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error"})
	}
}
