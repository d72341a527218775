package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
)

// ProductDTO is the transport shape of a catalogue entry.
type ProductDTO struct {
	ID         uuid.UUID      `json:"id"`
	ProductID  string         `json:"product_id"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// CreateProductInput holds the name plus whatever attributes the caller sent.
type CreateProductInput struct {
	Name       string
	Attributes map[string]any
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:         p.ID,
		ProductID:  p.ProductID,
		Name:       p.Name,
		Attributes: map[string]any(p.Attributes),
		CreatedAt:  p.CreatedAt,
	}
}
