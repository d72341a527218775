package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
)

// UserDTO is the transport shape of a directory profile.
type UserDTO struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Firstname     *string   `json:"firstname,omitempty"`
	Lastname      *string   `json:"lastname,omitempty"`
	Designation   *string   `json:"designation,omitempty"`
	Address       *string   `json:"address,omitempty"`
	Website       *string   `json:"website,omitempty"`
	Qualification *string   `json:"qualification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateUserInput holds the data required to persist a new profile.
type CreateUserInput struct {
	Email         string
	Firstname     *string
	Lastname      *string
	Designation   *string
	Address       *string
	Website       *string
	Qualification *string
}

// UpdateUserInput is the typed partial update applied by the upsert
// operation. The email value is deliberately absent: the identity field can
// never be overwritten through an update. EmailSupplied records that the
// payload carried an email key, which still counts as supplied information
// even though the value is discarded.
type UpdateUserInput struct {
	EmailSupplied bool
	Firstname     *string
	Lastname      *string
	Designation   *string
	Address       *string
	Website       *string
	Qualification *string
}

// IsEmpty reports whether the payload supplied no key at all. An ignored
// email key alone is enough to make the input non-empty.
func (u UpdateUserInput) IsEmpty() bool {
	return !u.EmailSupplied &&
		u.Firstname == nil &&
		u.Lastname == nil &&
		u.Designation == nil &&
		u.Address == nil &&
		u.Website == nil &&
		u.Qualification == nil
}

// Merge returns a copy of existing with the supplied fields overlaid.
func Merge(existing models.User, input UpdateUserInput) models.User {
	merged := existing
	if input.Firstname != nil {
		merged.Firstname = input.Firstname
	}
	if input.Lastname != nil {
		merged.Lastname = input.Lastname
	}
	if input.Designation != nil {
		merged.Designation = input.Designation
	}
	if input.Address != nil {
		merged.Address = input.Address
	}
	if input.Website != nil {
		merged.Website = input.Website
	}
	if input.Qualification != nil {
		merged.Qualification = input.Qualification
	}
	return merged
}

func (c CreateUserInput) ToModel() *models.User {
	return &models.User{
		Email:         c.Email,
		Firstname:     c.Firstname,
		Lastname:      c.Lastname,
		Designation:   c.Designation,
		Address:       c.Address,
		Website:       c.Website,
		Qualification: c.Qualification,
	}
}

func (u UpdateUserInput) toModel(email string) *models.User {
	return &models.User{
		Email:         email,
		Firstname:     u.Firstname,
		Lastname:      u.Lastname,
		Designation:   u.Designation,
		Address:       u.Address,
		Website:       u.Website,
		Qualification: u.Qualification,
	}
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:            u.ID,
		Email:         u.Email,
		Firstname:     u.Firstname,
		Lastname:      u.Lastname,
		Designation:   u.Designation,
		Address:       u.Address,
		Website:       u.Website,
		Qualification: u.Qualification,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
