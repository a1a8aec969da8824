package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
	"gadgetstore/internal/repositories"
	"gadgetstore/internal/services"
)

func newProductService() (*services.ProductService, *MockProductRepository, *MockCategoryRepository) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	return services.NewProductService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestProductService_List_PaginationMath(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPage   int
		wantLimit  int
		wantPages  int
	}{
		{"exact fit", 1, 10, 20, 1, 10, 2},
		{"partial last page", 1, 10, 21, 1, 10, 3},
		{"empty result", 1, 10, 0, 1, 10, 0},
		{"single item", 1, 10, 1, 1, 10, 1},
		{"zero page defaults to 1", 0, 10, 5, 1, 10, 1},
		{"negative limit defaults to 10", 3, -1, 25, 3, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, productRepo, _ := newProductService()
			productRepo.On("List", repositories.ProductFilter{
				Page:  tt.wantPage,
				Limit: tt.wantLimit,
			}).Return([]models.Product{}, tt.total, nil).Once()

			_, pagination, err := service.List(services.ProductListOptions{Page: tt.page, Limit: tt.limit})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, pagination.Page)
			assert.Equal(t, tt.wantLimit, pagination.Limit)
			assert.Equal(t, tt.total, pagination.Total)
			assert.Equal(t, tt.wantPages, pagination.TotalPages)
			productRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_List_PassesFilters(t *testing.T) {
	service, productRepo, _ := newProductService()

	expected := []models.Product{{ID: "1", Name: "Laptop", Price: 1200}}
	productRepo.On("List", repositories.ProductFilter{
		Page:       2,
		Limit:      5,
		CategoryID: "cat-1",
		Search:     "lap",
	}).Return(expected, int64(6), nil).Once()

	products, pagination, err := service.List(services.ProductListOptions{
		Page:       2,
		Limit:      5,
		CategoryID: "cat-1",
		Search:     "lap",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	assert.Equal(t, 2, pagination.TotalPages)
	productRepo.AssertExpectations(t)
}

func TestProductService_Create_Valid(t *testing.T) {
	service, productRepo, categoryRepo := newProductService()

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1", Name: "Phones"}, nil).Once()
	productRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "X1" && p.Price == 199.99 && p.Stock == 5 && p.IsActive && p.CategoryID == "cat-1"
	})).Return(nil).Once()

	stock := 5
	product, err := service.Create(services.ProductInput{
		Name:       "X1",
		Price:      199.99,
		Stock:      &stock,
		CategoryID: "cat-1",
	})

	assert.NoError(t, err)
	assert.True(t, product.IsActive)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestProductService_Create_StockDefaultsToZero(t *testing.T) {
	service, productRepo, categoryRepo := newProductService()

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1"}, nil).Once()
	productRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Stock == 0
	})).Return(nil).Once()

	_, err := service.Create(services.ProductInput{
		Name:       "Keyboard",
		Price:      75,
		CategoryID: "cat-1",
	})

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestProductService_Create_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input services.ProductInput
	}{
		{"missing name", services.ProductInput{Price: 10, CategoryID: "cat-1"}},
		{"name too short", services.ProductInput{Name: "ab", Price: 10, CategoryID: "cat-1"}},
		{"missing price", services.ProductInput{Name: "Widget", CategoryID: "cat-1"}},
		{"negative price", services.ProductInput{Name: "Widget", Price: -1, CategoryID: "cat-1"}},
		{"missing category", services.ProductInput{Name: "Widget", Price: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, productRepo, _ := newProductService()

			product, err := service.Create(tt.input)

			assert.Nil(t, product)
			appErr, ok := apperrors.As(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			productRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	service, productRepo, categoryRepo := newProductService()

	categoryRepo.On("GetByID", "missing").Return(nil, apperrors.NewNotFound("Category not found")).Once()

	product, err := service.Create(services.ProductInput{
		Name:       "Widget",
		Price:      10,
		CategoryID: "missing",
	})

	assert.Nil(t, product)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Category does not exist", appErr.Message)
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_Update_PartialFieldsPassThrough(t *testing.T) {
	service, productRepo, _ := newProductService()

	price := 12.5
	updated := &models.Product{ID: "1", Name: "Widget", Price: 12.5}
	productRepo.On("Update", "1", mock.MatchedBy(func(u repositories.ProductUpdate) bool {
		return u.Price != nil && *u.Price == price && u.Name == nil && u.Stock == nil
	})).Return(updated, nil).Once()

	product, err := service.Update("1", services.ProductUpdateInput{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, updated, product)
	productRepo.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	service, productRepo, _ := newProductService()

	name := "Renamed"
	productRepo.On("Update", "99", mock.Anything).Return(nil, apperrors.NewNotFound("Product not found")).Once()

	product, err := service.Update("99", services.ProductUpdateInput{Name: &name})

	assert.Nil(t, product)
	assert.True(t, apperrors.IsNotFound(err))
	productRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	service, productRepo, _ := newProductService()

	productRepo.On("Deactivate", "1").Return(nil).Once()
	assert.NoError(t, service.Delete("1"))

	productRepo.On("Deactivate", "99").Return(apperrors.NewNotFound("Product not found")).Once()
	assert.True(t, apperrors.IsNotFound(service.Delete("99")))
	productRepo.AssertExpectations(t)
}

func TestProductService_Search_RequiresTerm(t *testing.T) {
	service, productRepo, _ := newProductService()

	products, err := service.Search("")

	assert.Nil(t, products)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	productRepo.AssertNotCalled(t, "Search", mock.Anything)
}

func TestProductService_LowStock_DefaultThreshold(t *testing.T) {
	service, productRepo, _ := newProductService()

	productRepo.On("LowStock", 10).Return([]models.Product{}, nil).Once()

	_, err := service.LowStock(0)

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestProductService_UpdateStock_RejectsNegative(t *testing.T) {
	service, productRepo, _ := newProductService()

	product, err := service.UpdateStock("1", -3)

	assert.Nil(t, product)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	productRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything)
}
