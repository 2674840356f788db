package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

type UpdateProductInput struct {
	Name            *string      `json:"name"`
	Collection      *string      `json:"collection"`
	Price           *float64     `json:"price"`
	Description     *string      `json:"description"`
	InStock         *bool        `json:"inStock"`
	AvailableColors []ColorInput `json:"availableColors" binding:"omitempty,min=1,dive"`
	AvailableSizes  []string     `json:"availableSizes" binding:"omitempty,min=1"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Colors").Where("product_id = ?", productID).First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Collection != nil {
			product.Collection = *input.Collection
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must be greater than 0"})
				return
			}
			product.Price = *input.Price
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}
		if input.AvailableSizes != nil {
			product.Sizes = input.AvailableSizes
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.AvailableColors != nil {
				if err := tx.Where("product_ref = ?", product.ID).Delete(&models.ProductColor{}).Error; err != nil {
					return err
				}
				product.Colors = nil
				for _, in := range input.AvailableColors {
					product.Colors = append(product.Colors, models.ProductColor{
						ProductRef: product.ID,
						ColorCode:  in.ColorCode,
						ColorName:  in.ColorName,
						ImageURL:   in.ImageURL,
					})
				}
				product.Image = product.Colors[0].ImageURL
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}

		broadcastProductEvent("updated", product)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product updated successfully",
			"product": product,
		})
	}
}
