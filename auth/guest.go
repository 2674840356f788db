package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/DanielaOM24/Cute-Mark/middleware"
)

const guestSessionTTL = 30 * 24 * time.Hour

// POST /auth/guest
//
// Mints the session cookie that keeps a guest's cart stable across requests.
// Without it every request synthesizes a fresh identity and the cart is lost.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := uuid.NewString()
		expiresAt := time.Now().Add(guestSessionTTL)

		c.SetCookie(middleware.SessionCookieName, sessionID, int(guestSessionTTL.Seconds()), "/", "", false, true)

		token, err := issueGuestToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func issueGuestToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": "guest_" + sessionID,
		"role":    "guest",
		"exp":     time.Now().Add(guestSessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
