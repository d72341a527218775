package products

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/apurvakunkulol/directory-backend/pkg/db"
	"github.com/apurvakunkulol/directory-backend/pkg/db/models"
	dbtypes "github.com/apurvakunkulol/directory-backend/pkg/db/types"
	pkgerrors "github.com/apurvakunkulol/directory-backend/pkg/errors"
)

const suffixLength = 5

// Service exposes the catalogue operations.
type Service interface {
	FetchByProductID(ctx context.Context, productID string) (*ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
}

type repository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByProductID(ctx context.Context, productID string) (*models.Product, error)
}

type service struct {
	repo repository
}

// NewService wires the catalogue service to its repository.
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// FetchByProductID loads a catalogue entry by its generated identifier.
func (s *service) FetchByProductID(ctx context.Context, productID string) (*ProductDTO, error) {
	product, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("No product found for the given ID: %s", productID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Error while fetching product details")
	}
	return FromModel(product), nil
}

// Create stores the supplied attributes under a freshly generated product
// identifier: the name joined to a random five-letter suffix. Uniqueness is
// best effort; duplicate names stay distinct through the suffix alone.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please provide product details.")
	}

	product := &models.Product{
		ProductID:  fmt.Sprintf("%s_%s", name, randomSuffix(suffixLength)),
		Name:       name,
		Attributes: dbtypes.JSONMap(input.Attributes),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Error while creating product.")
	}
	return FromModel(product), nil
}

func randomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('a' + rand.Intn(26)))
	}
	return b.String()
}
