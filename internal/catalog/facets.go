package catalog

import (
	"sort"

	"github.com/jdclothing/storefront-backend/pkg/enums"
)

// ColorOption is one distinct color across the catalog, carrying the first
// hex code seen for the name.
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Facets lists the distinct filterable values across the catalog; the filter
// sidebar is built from this.
type Facets struct {
	Categories []string      `json:"categories"`
	Colors     []ColorOption `json:"colors"`
	Sizes      []string      `json:"sizes"`
}

// BuildFacets extracts the distinct categories, colors, and sizes from the
// product list, each sorted by name.
func BuildFacets(products []Product) Facets {
	categories := map[string]struct{}{}
	sizes := map[string]struct{}{}
	colorHex := map[string]string{}
	var colorOrder []string

	for _, p := range products {
		categories[p.Category] = struct{}{}
		for _, s := range p.Sizes {
			sizes[s] = struct{}{}
		}
		for _, c := range p.Colors {
			if _, seen := colorHex[c.Name]; !seen {
				colorHex[c.Name] = c.Hex
				colorOrder = append(colorOrder, c.Name)
			}
		}
	}

	sort.Strings(colorOrder)
	colors := make([]ColorOption, 0, len(colorOrder))
	for _, name := range colorOrder {
		colors = append(colors, ColorOption{Name: name, Hex: colorHex[name]})
	}

	return Facets{
		Categories: sortedKeys(categories),
		Colors:     colors,
		Sizes:      sortedKeys(sizes),
	}
}

// CategoriesByGender returns the distinct categories among the gender's
// products, sorted.
func CategoriesByGender(products []Product, gender enums.Gender) []string {
	categories := map[string]struct{}{}
	for _, p := range products {
		if p.Gender == gender {
			categories[p.Category] = struct{}{}
		}
	}
	return sortedKeys(categories)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
