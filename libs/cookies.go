package libs

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName   = "ansh_session"
	SessionCookieMaxAge = 60 * 60 * 24 * 7
)

// Production cookies are sent cross-site (frontend and API on different
// domains), which browsers only allow for Secure; SameSite=None cookies.
func applyCookiePolicy(c *gin.Context, production bool) {
	if production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

func SetSessionCookie(c *gin.Context, sessionID string, production bool) {
	applyCookiePolicy(c, production)
	c.SetCookie(SessionCookieName, sessionID, SessionCookieMaxAge, "/", "", production, true)
}

func ClearSessionCookie(c *gin.Context, production bool) {
	applyCookiePolicy(c, production)
	c.SetCookie(SessionCookieName, "", -1, "/", "", production, true)
}

func SessionIDFromRequest(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(sessionID)
}

func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
