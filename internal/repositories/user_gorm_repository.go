package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gadgetstore/internal/apperrors"
	"gadgetstore/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// GetAll retrieves all users ordered by name.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user with their reviews (newest first, each with the
// reviewed product).
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Product").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	user.ReviewCount = len(user.Reviews)
	return &user, nil
}

// GetByEmail retrieves a user by their unique email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// WithReviewCounts retrieves all users annotated with how many reviews each
// has written, ordered by name.
func (r *GORMUserRepository) WithReviewCounts() ([]models.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	type userCount struct {
		UserID string
		Count  int
	}
	var counts []userCount
	err = r.db.Model(&models.Review{}).
		Select("user_id, COUNT(*) AS count").
		Group("user_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews per user: %w", err)
	}

	byID := make(map[string]int, len(counts))
	for _, c := range counts {
		byID[c.UserID] = c.Count
	}
	for i := range users {
		users[i].ReviewCount = byID[users[i].ID]
	}
	return users, nil
}

// Create persists a new user. Emails are unique.
func (r *GORMUserRepository) Create(user *models.User) error {
	var existing int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check user email: %w", err)
	}
	if existing > 0 {
		return apperrors.NewConflict("Email already in use")
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update applies only the fields present in the update.
func (r *GORMUserRepository) Update(id string, update UserUpdate) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if len(changes) > 0 {
		if err := r.db.Model(&user).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update user %s: %w", id, err)
		}
	}
	return &user, nil
}

// Delete removes a user.
func (r *GORMUserRepository) Delete(id string) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("User not found")
	}
	return nil
}
