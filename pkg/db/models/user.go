package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a directory profile keyed by its unique email address.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:text;not null;uniqueIndex:users_email_key"`
	Firstname     *string   `gorm:"column:firstname"`
	Lastname      *string   `gorm:"column:lastname"`
	Designation   *string   `gorm:"column:designation"`
	Address       *string   `gorm:"column:address"`
	Website       *string   `gorm:"column:website"`
	Qualification *string   `gorm:"column:qualification"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
