package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/cart"
	"github.com/DanielaOM24/Cute-Mark/mailer"
)

// SetupRoutes is the single entry-point that wires up the Auth, Cart, Store,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *cart.Engine, mail *mailer.Client, uploadsDir string) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Cart routes (identity resolved per request, works for guests too)
	SetupCartRoutes(r, engine)

	// 3️⃣ Public storefront routes
	SetupStoreRoutes(r, db, mail, uploadsDir)

	// 4️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 5️⃣ Admin routes (JWT + role, API key for bootstrap)
	SetupAdminRoutes(r, db)
}
