package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	Identity  string     `gorm:"uniqueIndex" json:"-"` // Enforces ONE cart per identity
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    uint      `gorm:"index" json:"-"` // Faster queries
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`  // Catalog snapshot at add time
	Price     float64   `json:"price"` // Catalog snapshot at add time
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Qty       int       `json:"qty"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"-"`
}

// Matches reports whether the item occupies the same cart line, i.e. shares
// the (productId, color, size) composite key.
func (i CartItem) Matches(productID, color, size string) bool {
	return i.ProductID == productID && i.Color == color && i.Size == size
}
