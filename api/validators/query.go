package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jdclothing/storefront-backend/internal/catalog"
	"github.com/jdclothing/storefront-backend/pkg/enums"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
)

// ParseFilterCriteria reads the browse filters off the query string. Each
// axis accepts repeated parameters and comma separated values.
func ParseFilterCriteria(r *http.Request) (catalog.FilterCriteria, error) {
	criteria := catalog.FilterCriteria{
		Categories: queryValues(r, "category"),
		Colors:     queryValues(r, "color"),
		Sizes:      queryValues(r, "size"),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("gender")); raw != "" {
		gender, err := enums.ParseGender(raw)
		if err != nil {
			return catalog.FilterCriteria{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender").
				WithDetails(map[string]any{"field": "gender"})
		}
		criteria.Gender = &gender
	}
	return criteria, nil
}

// ParseSortKey reads the sort parameter, defaulting to the name ordering.
func ParseSortKey(r *http.Request) (enums.SortKey, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("sort"))
	if raw == "" {
		return enums.SortNameAsc, nil
	}
	key, err := enums.ParseSortKey(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key").
			WithDetails(map[string]any{"field": "sort"})
	}
	return key, nil
}

// ParseGenderQuery reads a required gender parameter.
func ParseGenderQuery(r *http.Request) (enums.Gender, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("gender"))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "gender is required").
			WithDetails(map[string]any{"field": "gender"})
	}
	gender, err := enums.ParseGender(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid gender").
			WithDetails(map[string]any{"field": "gender"})
	}
	return gender, nil
}

// ParseLineIndex reads a zero-based cart line index from a URL parameter.
func ParseLineIndex(raw string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || index < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "line index must be a non-negative integer").
			WithDetails(map[string]any{"field": "index"})
	}
	return index, nil
}

func queryValues(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, part := range strings.Split(raw, ",") {
			if v := strings.TrimSpace(part); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
