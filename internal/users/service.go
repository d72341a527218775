package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apurvakunkulol/directory-backend/pkg/db"
	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
)

// UpsertOutcome tells the caller which branch the update operation took.
type UpsertOutcome string

const (
	// OutcomeUpdated means an existing profile was merged and replaced.
	OutcomeUpdated UpsertOutcome = "updated"
	// OutcomeInserted means no profile existed, so one was created instead.
	OutcomeInserted UpsertOutcome = "inserted"
)

// UpsertResult carries the outcome of an update-or-create call.
type UpsertResult struct {
	Outcome    UpsertOutcome
	InsertedID uuid.UUID
}

// Service exposes the user directory operations.
type Service interface {
	Fetch(ctx context.Context, email string) (*UserDTO, error)
	Upsert(ctx context.Context, email string, input UpdateUserInput) (*UpsertResult, error)
	Delete(ctx context.Context, email string) error
	Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error)
}

type repository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type service struct {
	repo repository
}

// NewService wires the directory service to its repository.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// Fetch loads the profile for the given (already validated) email.
func (s *service) Fetch(ctx context.Context, email string) (*UserDTO, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "No user found with the given email.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Exception while retrieving the user.")
	}
	return FromModel(user), nil
}

// Upsert merges the supplied fields into the existing profile, or inserts a
// brand-new one when no profile exists for the email. The identity field is
// never part of the merge.
func (s *service) Upsert(ctx context.Context, email string, input UpdateUserInput) (*UpsertResult, error) {
	if input.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please supply information to update.")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Error while updating information. Please contact support for more information.")
		}

		inserted := input.toModel(email)
		if err := s.repo.Create(ctx, inserted); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Error while updating information. Please contact support for more information.")
		}
		return &UpsertResult{Outcome: OutcomeInserted, InsertedID: inserted.ID}, nil
	}

	merged := Merge(*existing, input)
	if err := s.repo.Save(ctx, &merged); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Could not update record successfully.")
	}
	return &UpsertResult{Outcome: OutcomeUpdated}, nil
}

// Delete removes the profile for the email; at most one row goes away.
func (s *service) Delete(ctx context.Context, email string) error {
	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("Error while deleting info for the email %s", email))
	}
	if deleted < 1 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("User does not exist for email %s.", email))
	}
	return nil
}

// Create inserts a brand-new profile; the store's unique index on email is
// the only duplicate check.
func (s *service) Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error) {
	user := input.ToModel()
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "users_email_key") {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Email already exists. Please provide another unique email ID.")
		}
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("Error while inserting information for the user %s.", input.Email))
	}
	return user.ID, nil
}
