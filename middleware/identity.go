package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const identityKey = "cart_identity"

// SessionCookieName carries the guest session ID between requests.
const SessionCookieName = "session-id"

// ResolveCartIdentity derives the opaque key that owns the caller's cart:
// a logged-in user's email, else the guest session cookie, else a throwaway
// key from the client IP and current time. The last form changes on every
// request, so cookie-less guests effectively get a fresh cart each time.
func ResolveCartIdentity(c *gin.Context) {
	if tokenString := c.GetHeader("Authorization"); tokenString != "" {
		if claims, err := parseToken(tokenString); err == nil {
			if email, ok := claims["email"].(string); ok && email != "" {
				c.Set(identityKey, "user_"+email)
				c.Next()
				return
			}
		}
	}

	if sessionID, err := c.Cookie(SessionCookieName); err == nil && sessionID != "" {
		c.Set(identityKey, "session_"+sessionID)
		c.Next()
		return
	}

	c.Set(identityKey, "session_"+c.ClientIP()+"_"+strconv.FormatInt(time.Now().UnixMilli(), 10))
	c.Next()
}

// CartIdentity reads the identity resolved by ResolveCartIdentity.
func CartIdentity(c *gin.Context) string {
	identity, _ := c.Get(identityKey)
	s, _ := identity.(string)
	return s
}
