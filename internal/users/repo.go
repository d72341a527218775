package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/apurvakunkulol/directory-backend/internal/repo"
	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
)

// Repository exposes user-profile persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new profile.
func (r *Repository) Create(ctx context.Context, user *models.User) error {
	return r.DB(ctx).Create(user).Error
}

// FindByEmail retrieves the profile matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists the profile as a full replacement.
func (r *Repository) Save(ctx context.Context, user *models.User) error {
	return r.DB(ctx).Save(user).Error
}

// DeleteByEmail removes at most one profile and reports how many rows went away.
func (r *Repository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := r.DB(ctx).Where("email = ?", email).Delete(&models.User{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
