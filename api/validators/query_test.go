package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/jdclothing/storefront-backend/pkg/enums"
)

func TestParseFilterCriteria(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?gender=mens&category=tees,hoodies&color=black&size=m&size=l", nil)

	criteria, err := ParseFilterCriteria(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if criteria.Gender == nil || *criteria.Gender != enums.GenderMens {
		t.Fatalf("expected mens gender, got %v", criteria.Gender)
	}
	if len(criteria.Categories) != 2 || criteria.Categories[0] != "tees" {
		t.Fatalf("expected split categories, got %v", criteria.Categories)
	}
	if len(criteria.Sizes) != 2 {
		t.Fatalf("expected repeated size params to accumulate, got %v", criteria.Sizes)
	}
}

func TestParseFilterCriteriaInvalidGender(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?gender=kids", nil)

	if _, err := ParseFilterCriteria(r); err == nil {
		t.Fatal("expected error for unknown gender")
	}
}

func TestParseSortKeyDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	key, err := ParseSortKey(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != enums.SortNameAsc {
		t.Fatalf("expected default name sort, got %s", key)
	}
}

func TestParseSortKeyInvalid(t *testing.T) {
	r := httptest.NewRequest("GET", "/products?sort=cheapest", nil)

	if _, err := ParseSortKey(r); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestParseLineIndex(t *testing.T) {
	if _, err := ParseLineIndex("abc"); err == nil {
		t.Fatal("expected error for non-numeric index")
	}
	if _, err := ParseLineIndex("-1"); err == nil {
		t.Fatal("expected error for negative index")
	}
	index, err := ParseLineIndex("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 2 {
		t.Fatalf("expected 2, got %d", index)
	}
}
