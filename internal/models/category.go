package models

// Category groups products. Name is unique across the store.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=2,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`

	// ProductCount is filled by aggregate queries (active products only).
	ProductCount int `json:"productCount" gorm:"-"`
}
