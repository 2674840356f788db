package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

type ColorInput struct {
	ColorCode string `json:"colorCode" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
	ImageURL  string `json:"imageUrl" binding:"required"`
}

type CreateProductInput struct {
	Name            string       `json:"name" binding:"required,min=3"`
	Collection      string       `json:"collection" binding:"required"`
	Price           float64      `json:"price" binding:"required,gt=0"`
	Description     string       `json:"description"`
	AvailableColors []ColorInput `json:"availableColors" binding:"required,min=1,dive"`
	AvailableSizes  []string     `json:"availableSizes" binding:"required,min=1"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name, collection, price, at least one color and one size are required"})
			return
		}

		// Next productId: one above the highest assigned so far.
		var last models.Product
		productID := 1
		err := db.Order("product_id desc").First(&last).Error
		if err == nil {
			productID = last.ProductID + 1
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		colors := make([]models.ProductColor, 0, len(input.AvailableColors))
		for _, in := range input.AvailableColors {
			colors = append(colors, models.ProductColor{
				ColorCode: in.ColorCode,
				ColorName: in.ColorName,
				ImageURL:  in.ImageURL,
			})
		}

		product := models.Product{
			ProductID:   productID,
			Name:        input.Name,
			Collection:  input.Collection,
			Price:       input.Price,
			Description: input.Description,
			Colors:      colors,
			Sizes:       input.AvailableSizes,
			Image:       colors[0].ImageURL, // Main image (first color)
			InStock:     true,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		log.Printf("✅ Product %d (%s) created", product.ProductID, product.Name)
		broadcastProductEvent("created", product)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product created successfully",
			"product": product,
		})
	}
}
