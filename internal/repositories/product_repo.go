package repositories

import (
	"gadgetstore/internal/models"
)

// ProductFilter narrows a paginated product listing. Zero values mean
// "no filter"; Page and Limit are normalised by the service layer.
type ProductFilter struct {
	Page       int
	Limit      int
	CategoryID string
	Search     string
}

// ProductUpdate is a partial update: nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	ImageURL    *string
	Condition   *string
	CategoryID  *string
	IsActive    *bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, update ProductUpdate) (*models.Product, error)
	Deactivate(id string) error
	Search(term string) ([]models.Product, error)
	ByCategory(categoryID string) ([]models.Product, error)
	LowStock(threshold int) ([]models.Product, error)
	UpdateStock(id string, stock int) (*models.Product, error)
}
