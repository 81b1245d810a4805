package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jdclothing/storefront-backend/pkg/enums"
)

// FilterAndSort returns the products matching the criteria, stably ordered by
// the sort key. It never fails: criteria that match nothing yield an empty
// slice. The input is not modified.
func FilterAndSort(products []Product, criteria FilterCriteria, sortKey enums.SortKey) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, criteria) {
			result = append(result, p)
		}
	}
	sortProducts(result, sortKey)
	return result
}

func matches(p Product, criteria FilterCriteria) bool {
	if criteria.Gender != nil && p.Gender != *criteria.Gender {
		return false
	}
	if len(criteria.Categories) > 0 && !contains(criteria.Categories, p.Category) {
		return false
	}
	if len(criteria.Colors) > 0 && !anyColor(p, criteria.Colors) {
		return false
	}
	if len(criteria.Sizes) > 0 && !anySize(p, criteria.Sizes) {
		return false
	}
	return true
}

func anyColor(p Product, allowed []string) bool {
	for _, c := range p.Colors {
		if contains(allowed, c.Name) {
			return true
		}
	}
	return false
}

func anySize(p Product, allowed []string) bool {
	for _, s := range p.Sizes {
		if contains(allowed, s) {
			return true
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, sortKey enums.SortKey) {
	switch sortKey {
	case enums.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	default:
		// name_asc is the default, using locale-aware comparison.
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
