package adminController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

type CreateAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// POST /admin/create-admin
//
// Creates an admin account, or promotes the existing user with that email.
// Guarded by the X-API-KEY middleware, not by a user session.
func CreateAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateAdminInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "All fields are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to create admin"})
			return
		}

		var user models.User
		err = db.Where("email = ?", email).First(&user).Error

		if err == nil {
			// Promote the existing account.
			updates := map[string]interface{}{
				"role":     models.RoleAdmin,
				"password": string(hashed),
			}
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update user"})
				return
			}
			user.Role = models.RoleAdmin

			c.JSON(http.StatusOK, gin.H{
				"ok":      true,
				"message": "User promoted to administrator",
				"user": gin.H{
					"id":    user.ID,
					"email": user.Email,
					"name":  user.Name,
					"role":  user.Role,
				},
			})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to create admin"})
			return
		}

		admin := models.User{
			ID:       uuid.NewString(),
			Email:    email,
			Password: string(hashed),
			Name:     input.Name,
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to create admin"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Administrator created",
			"user": gin.H{
				"id":    admin.ID,
				"email": admin.Email,
				"name":  admin.Name,
				"role":  admin.Role,
			},
		})
	}
}
