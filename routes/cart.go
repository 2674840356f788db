package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DanielaOM24/Cute-Mark/cart"
	cartControllers "github.com/DanielaOM24/Cute-Mark/controllers/cart"
	"github.com/DanielaOM24/Cute-Mark/middleware"
)

// SetupCartRoutes registers the “/cart” resource. The identity middleware
// resolves who owns the cart, so the same endpoints serve logged-in users and
// guests alike.
func SetupCartRoutes(r *gin.Engine, engine *cart.Engine) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ResolveCartIdentity)
	{
		cartGroup.GET("", cartControllers.GetCart(engine))                // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(engine))           // POST /cart
		cartGroup.PUT("", cartControllers.UpdateCartQty(engine))          // PUT /cart
		cartGroup.DELETE("", cartControllers.ClearCart(engine))           // DELETE /cart
		cartGroup.DELETE("/item", cartControllers.RemoveCartItem(engine)) // DELETE /cart/item
	}
}
