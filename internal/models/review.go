package models

import "time"

// Review is a rating (1-5) left by a user on a product.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Rating    int       `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:varchar(1000)" validate:"omitempty,max=1000"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;index" validate:"required"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;index" validate:"required"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingSummary holds the review aggregate for a product.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}
