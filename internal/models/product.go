package models

import "time"

// Product represents a product in the store. A product is never physically
// removed: IsActive=false marks it as soft-deleted and hides it from listings.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=3,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" gorm:"not null" validate:"required,gt=0"`
	Stock       int       `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl" gorm:"type:varchar(500)"`
	Condition   string    `json:"condition,omitempty" gorm:"type:varchar(50)"`
	IsActive    bool      `json:"isActive" gorm:"not null;index"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(36);not null;index" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews     []Review  `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Aggregates derived from Reviews, never persisted.
	ReviewCount   int     `json:"reviewCount" gorm:"-"`
	AverageRating float64 `json:"averageRating" gorm:"-"`
}
