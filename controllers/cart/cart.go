package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaOM24/Cute-Mark/cart"
	"github.com/DanielaOM24/Cute-Mark/middleware"
)

type AddItemInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required"` // zero price counts as missing
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

type UpdateQtyInput struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Qty       *int   `json:"qty" binding:"required"`
}

type RemoveItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// GET /cart
func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := engine.Get(middleware.CartIdentity(c))
		if err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart": view})
	}
}

// POST /cart
func AddCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "productId, name and price are required"})
			return
		}

		view, err := engine.AddItem(middleware.CartIdentity(c), cart.AddItemInput{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Color:     input.Color,
			Size:      input.Size,
			Qty:       input.Qty,
			Image:     input.Image,
		})
		if err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product added to cart",
			"cart":    view,
		})
	}
}

// PUT /cart
func UpdateCartQty(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "productId and qty are required"})
			return
		}

		view, removed, err := engine.UpdateQty(middleware.CartIdentity(c), cart.UpdateQtyInput{
			ProductID: input.ProductID,
			Color:     input.Color,
			Size:      input.Size,
			Qty:       *input.Qty,
		})
		if err != nil {
			respondCartError(c, err)
			return
		}

		message := "Quantity updated"
		if removed {
			message = "Product removed from cart"
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": message,
			"cart":    view,
		})
	}
}

// DELETE /cart/item
func RemoveCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "productId is required"})
			return
		}

		view, err := engine.RemoveItem(middleware.CartIdentity(c), cart.ItemKey{
			ProductID: input.ProductID,
			Color:     input.Color,
			Size:      input.Size,
		})
		if err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product removed from cart",
			"cart":    view,
		})
	}
}

// DELETE /cart
func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := engine.Clear(middleware.CartIdentity(c))
		if err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Cart cleared",
			"cart":    view,
		})
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found"})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found in cart"})
	case errors.Is(err, cart.ErrInvalidQty):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Quantity must be at least 1"})
	default:
		log.Printf("❌ Cart operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Cart operation failed"})
	}
}
