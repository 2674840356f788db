package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID   int            `gorm:"uniqueIndex;not null" json:"productId"`
	Name        string         `gorm:"not null" json:"name"`
	Collection  string         `gorm:"not null" json:"collection"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `json:"description,omitempty"`
	Colors      []ProductColor `gorm:"foreignKey:ProductRef;constraint:OnDelete:CASCADE" json:"availableColors"`
	Sizes       []string       `gorm:"serializer:json" json:"availableSizes"`
	Image       string         `json:"image"` // Main image (first color)
	InStock     bool           `gorm:"default:true" json:"inStock"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductColor is one purchasable color of a product together with the
// image shown when that color is selected.
type ProductColor struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	ProductRef uint   `gorm:"index" json:"-"`
	ColorCode  string `gorm:"not null" json:"colorCode"`
	ColorName  string `gorm:"not null" json:"colorName"`
	ImageURL   string `gorm:"not null" json:"imageUrl"`
}
