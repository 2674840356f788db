package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `json:"-"` // bcrypt hash, empty for Google accounts
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Provider  string    `json:"provider,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
