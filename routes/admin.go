package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/DanielaOM24/Cute-Mark/controllers/admin"
	productcontroller "github.com/DanielaOM24/Cute-Mark/controllers/product"
	userControllers "github.com/DanielaOM24/Cute-Mark/controllers/user"
	"github.com/DanielaOM24/Cute-Mark/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. The bootstrap
// create-admin endpoint takes the shared API key; everything else requires a
// JWT with the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")

	// ─────────── Admin Bootstrap (API key, no session) ───────────
	adminGroup.POST("/create-admin", middleware.ValidateAPIKey, adminController.CreateAdmin(db))

	protected := adminGroup.Group("")
	protected.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := protected.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))

			// websocket endpoint for real-time product updates
			productAdmin.GET("/ws", productcontroller.ProductFeedHandler)
		}

		// ─────────── User Management ───────────
		protected.GET("/users", userControllers.GetAllUsers(db))
	}
}
