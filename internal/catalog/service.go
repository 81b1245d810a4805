package catalog

import (
	"context"
	"fmt"

	"github.com/jdclothing/storefront-backend/pkg/enums"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
)

const (
	featuredCount = 4
	relatedLimit  = 4
)

// Service exposes catalog read operations over the loaded product store.
type Service interface {
	List(ctx context.Context, criteria FilterCriteria, sortKey enums.SortKey) []Product
	Detail(ctx context.Context, id string) (*Product, []Product, error)
	Featured(ctx context.Context) []Product
	Facets(ctx context.Context) Facets
	Categories(ctx context.Context, gender enums.Gender) []string
}

type service struct {
	store *Store
}

// NewService builds a catalog service over the provided store.
func NewService(store *Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &service{store: store}, nil
}

// List filters and sorts the catalog snapshot.
func (s *service) List(ctx context.Context, criteria FilterCriteria, sortKey enums.SortKey) []Product {
	return FilterAndSort(s.store.Products(), criteria, sortKey)
}

// Detail returns the product and up to four same-category companions.
func (s *service) Detail(ctx context.Context, id string) (*Product, []Product, error) {
	product, ok := s.store.Get(id)
	if !ok {
		return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	related := make([]Product, 0, relatedLimit)
	for _, p := range s.store.Products() {
		if p.Category == product.Category && p.ID != product.ID {
			related = append(related, p)
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return &product, related, nil
}

// Featured returns the first products in catalog order, used by the home view.
func (s *service) Featured(ctx context.Context) []Product {
	products := s.store.Products()
	if len(products) > featuredCount {
		products = products[:featuredCount]
	}
	return products
}

// Facets returns the distinct filterable values of the loaded catalog.
func (s *service) Facets(ctx context.Context) Facets {
	return BuildFacets(s.store.Products())
}

// Categories returns the distinct categories for a gender's collection page.
func (s *service) Categories(ctx context.Context, gender enums.Gender) []string {
	return CategoriesByGender(s.store.Products(), gender)
}
