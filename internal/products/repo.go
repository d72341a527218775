package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/apurvakunkulol/directory-backend/internal/repo"
	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
)

// Repository exposes catalogue persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new catalogue entry.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.DB(ctx).Create(product).Error
}

// FindByProductID loads the entry matching the generated public identifier.
// First match wins; the unique index makes more than one impossible anyway.
func (r *Repository) FindByProductID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).Where("product_id = ?", productID).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
