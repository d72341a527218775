package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/apurvakunkulol/directory-backend/pkg/db/types"
)

// Product is a catalogue entry. ProductID is the generated public key
// (name plus a random suffix); Attributes carries whatever the caller
// supplied at creation time.
type Product struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID  string          `gorm:"column:product_id;type:text;not null;uniqueIndex:catalogue_product_id_key"`
	Name       string          `gorm:"column:name;type:text;not null"`
	Attributes dbtypes.JSONMap `gorm:"column:attributes;type:jsonb"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the collection name the catalogue has always used.
func (Product) TableName() string {
	return "catalogue_products"
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
