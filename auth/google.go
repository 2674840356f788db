package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

var (
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// InitFirebase builds the Firebase Auth client used to verify Google ID
// tokens. Called once from main before the routes are wired.
func InitFirebase(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		log.Fatal("❌ FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	firebaseApp, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return err
	}

	firebaseAuth, err = firebaseApp.Auth(ctx)
	return err
}

// GoogleLoginHandler verifies a Google ID token, creates the user on first
// login, and issues the storefront's own JWT. Logging in does not merge any
// guest cart the caller may have had; the identity simply changes.
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if firebaseAuth == nil {
		http.Error(w, "Google sign-in is not configured", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	// Verify the token AND check for revocation
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		log.Printf("❌ ID token verification failed: %v", err)
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	if email == "" {
		http.Error(w, "Token is missing an email claim", http.StatusUnauthorized)
		return
	}

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       token.UID,
			Email:    email,
			Name:     name,
			Picture:  picture,
			Provider: "google",
			Role:     models.RoleUser,
		}
		if user.Name == "" {
			user.Name = "User"
		}

		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	} else if err == nil {
		db.Model(&user).Updates(models.User{
			Name:    name,
			Picture: picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message": "Login successful",
		"user":    user,
		"token":   issueJWT(user.Email, user.Role, user.ID, user.Name),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
