package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey      = "session_id"
	SessionHeader     = "X-Session-ID"
	defaultSessionTTL = 24 * time.Hour
	defaultCookieID   = "fundsdash_session"
)

// Session identifies the dashboard session of a request from the X-Session-ID
// header or the session cookie. Requests without a valid id get a new one, which
// is echoed back in both the header and the cookie. The cookie lives for ttl,
// or 24h when ttl is not positive.
func Session(cookieName string, ttl time.Duration) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = defaultCookieID
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	maxAge := int(ttl / time.Second)
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(cookieName)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		c.Set(SessionIDKey, id)
		c.Header(SessionHeader, id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id, maxAge, "/", "", false, true)
		c.Next()
	}
}

// GetSessionID retrieves the session id from the context
func GetSessionID(c *gin.Context) (string, bool) {
	id, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	return id.(string), true
}
