package client

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ProductStore owns the dashboard's in-memory product list plus the two
// filter inputs (search term, selected category) and derives the filtered
// view from them. CRUD actions call the API, reconcile local state on
// success, and emit one toast per outcome.
type ProductStore struct {
	api      *API
	notifier Notifier

	mu               sync.RWMutex
	products         []Product
	loading          bool
	err              string
	searchTerm       string
	selectedCategory string
	generation       uint64
}

// ProductStats summarizes the loaded catalog for the dashboard header.
type ProductStats struct {
	Count          int
	TotalStock     int
	InventoryValue decimal.Decimal
}

// NewProductStore creates a product store. A nil notifier disables toasts.
func NewProductStore(api *API, notifier Notifier) *ProductStore {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &ProductStore{
		api:      api,
		notifier: notifier,
	}
}

// Refresh reloads the full product list. A refresh superseded by a newer
// one discards its response.
func (s *ProductStore) Refresh() error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	products, err := s.api.GetProducts()

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return nil // stale response, a newer refresh owns the state
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.notifier.Toast(err.Error(), ToastError)
		return err
	}
	s.products = products
	return nil
}

// Add creates a product and appends it to the local list on success.
func (s *ProductStore) Add(form ProductForm) bool {
	created, err := s.api.CreateProduct(form)
	if err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Toast(err.Error(), ToastError)
		return false
	}

	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()
	s.notifier.Toast("Product created successfully!", ToastSuccess)
	return true
}

// Update applies a partial edit and replaces the matching local row on
// success.
func (s *ProductStore) Update(id int, update ProductUpdate) bool {
	updated, err := s.api.UpdateProduct(id, update)
	if err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Toast(err.Error(), ToastError)
		return false
	}

	s.mu.Lock()
	for i, product := range s.products {
		if product.ID == id {
			s.products[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Toast("Product updated successfully!", ToastSuccess)
	return true
}

// Delete soft-deletes a product and filters it out of the local list on
// success.
func (s *ProductStore) Delete(id int) bool {
	if _, err := s.api.DeleteProduct(id); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Toast(err.Error(), ToastError)
		return false
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, product := range s.products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	s.products = kept
	s.mu.Unlock()
	s.notifier.Toast("Product deleted successfully!", ToastSuccess)
	return true
}

// SetSearchTerm sets the free-text filter input.
func (s *ProductStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SetSelectedCategory sets the category filter input; empty selects all.
func (s *ProductStore) SetSelectedCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = name
}

// Filtered derives the visible product list: the search term matches the
// product name or its category name case-insensitively, the selected
// category matches exactly, and both conditions combine with AND.
func (s *ProductStore) Filtered() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.searchTerm)
	out := make([]Product, 0, len(s.products))
	for _, product := range s.products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(product.Name), term) ||
			strings.Contains(strings.ToLower(product.Category.Name), term)
		matchesCategory := s.selectedCategory == "" || product.Category.Name == s.selectedCategory
		if matchesSearch && matchesCategory {
			out = append(out, product)
		}
	}
	return out
}

// CategoryNames returns the distinct category names present in the loaded
// products, in first-seen order.
func (s *ProductStore) CategoryNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, product := range s.products {
		if !seen[product.Category.Name] {
			seen[product.Category.Name] = true
			names = append(names, product.Category.Name)
		}
	}
	return names
}

// Stats summarizes the loaded products. Inventory value is computed with
// decimal arithmetic so the money total does not drift.
func (s *ProductStore) Stats() ProductStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ProductStats{Count: len(s.products), InventoryValue: decimal.Zero}
	for _, product := range s.products {
		stats.TotalStock += product.Stock
		value := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(product.Stock)))
		stats.InventoryValue = stats.InventoryValue.Add(value)
	}
	return stats
}

// Products returns a copy of the unfiltered list.
func (s *ProductStore) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether a refresh is in flight.
func (s *ProductStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last action error, empty when the last action succeeded.
func (s *ProductStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
