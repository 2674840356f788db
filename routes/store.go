package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	emailController "github.com/DanielaOM24/Cute-Mark/controllers/email"
	productcontroller "github.com/DanielaOM24/Cute-Mark/controllers/product"
	uploadController "github.com/DanielaOM24/Cute-Mark/controllers/upload"
	"github.com/DanielaOM24/Cute-Mark/mailer"
)

// SetupStoreRoutes registers the public storefront endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Client, uploadsDir string) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Image Upload ────────────────
	r.POST("/upload-image", uploadController.UploadImage(uploadsDir))

	// ──────────────── Transactional Email ────────────────
	r.POST("/send-email", emailController.SendEmail(mail))
}
