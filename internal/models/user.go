package models

import "time"

// User represents a customer who can leave reviews. Email is unique.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ReviewCount is filled by aggregate queries.
	ReviewCount int `json:"reviewCount" gorm:"-"`
}
