package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdclothing/storefront-backend/api/responses"
	"github.com/jdclothing/storefront-backend/api/validators"
	"github.com/jdclothing/storefront-backend/internal/catalog"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
	"github.com/jdclothing/storefront-backend/pkg/logger"
)

// ProductList serves the browse view: filtered, sorted products.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := validators.ParseFilterCriteria(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sortKey, err := validators.ParseSortKey(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.List(r.Context(), criteria, sortKey)
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// ProductFeatured serves the home page's featured strip.
func ProductFeatured(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.Featured(r.Context())
		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

// ProductDetail serves one product plus its related companions.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		product, related, err := svc.Detail(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"product": product,
			"related": related,
		})
	}
}

// CatalogFacets serves the filter sidebar's option lists.
func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Facets(r.Context()))
	}
}

// CatalogCategories serves the category list for a gender's collection page.
func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gender, err := validators.ParseGenderQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"gender":     gender,
			"categories": svc.Categories(r.Context(), gender),
		})
	}
}
