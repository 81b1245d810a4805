package catalog

import "sync/atomic"

// Store holds the loaded product list. It is populated once at startup and
// read-only afterwards; an empty store is valid and means every browse
// request degrades to "no results".
type Store struct {
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	products []Product
	byID     map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.snapshot.Store(&snapshot{byID: map[string]int{}})
	return s
}

// Replace installs the product list as the current snapshot.
func (s *Store) Replace(products []Product) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	s.snapshot.Store(&snapshot{products: products, byID: byID})
}

// Products returns the current snapshot in catalog order. Callers must not
// modify the returned slice.
func (s *Store) Products() []Product {
	return s.snapshot.Load().products
}

// Get looks up a product by id.
func (s *Store) Get(id string) (Product, bool) {
	snap := s.snapshot.Load()
	idx, ok := snap.byID[id]
	if !ok {
		return Product{}, false
	}
	return snap.products[idx], true
}

// Len reports the number of loaded products.
func (s *Store) Len() int {
	return len(s.snapshot.Load().products)
}
