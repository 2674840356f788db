package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Colors").Order("product_id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "products": products})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid product id"})
			return
		}

		var product models.Product
		if err := db.Preload("Colors").Where("product_id = ?", productID).First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "product": product})
	}
}

// GET /admin/products
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Colors").Order("created_at desc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
