package enums

import "testing"

func TestParseGender(t *testing.T) {
	for _, value := range []string{"mens", "womens"} {
		gender, err := ParseGender(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if gender.String() != value {
			t.Fatalf("expected %q, got %q", value, gender)
		}
	}

	if _, err := ParseGender("kids"); err == nil {
		t.Fatal("expected error for unknown gender")
	}
	if Gender("kids").IsValid() {
		t.Fatal("unknown gender must not validate")
	}
}

func TestParseSortKey(t *testing.T) {
	for _, value := range []string{"name_asc", "price_asc", "price_desc"} {
		key, err := ParseSortKey(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if key.String() != value {
			t.Fatalf("expected %q, got %q", value, key)
		}
	}

	if _, err := ParseSortKey("newest"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestParseDestination(t *testing.T) {
	for _, value := range []string{"domestic", "cross_border", "international"} {
		dest, err := ParseDestination(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if !dest.IsValid() {
			t.Fatalf("parsed destination %q must be valid", value)
		}
	}

	if _, err := ParseDestination("moon"); err == nil {
		t.Fatal("expected error for unknown destination")
	}
}

func TestParseShippingMethod(t *testing.T) {
	for _, value := range []string{"standard", "express", "priority"} {
		method, err := ParseShippingMethod(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if !method.IsValid() {
			t.Fatalf("parsed method %q must be valid", value)
		}
	}

	if _, err := ParseShippingMethod("drone"); err == nil {
		t.Fatal("expected error for unknown shipping method")
	}
}
