package client

import (
	"fmt"
	"strings"
	"sync"
)

// CategoryStore owns the dashboard's in-memory category list: the data, a
// loading flag, the last error, and CRUD actions that call the API and
// reconcile local state on success, emitting one toast per outcome.
type CategoryStore struct {
	api      *API
	notifier Notifier

	mu         sync.RWMutex
	categories []Category
	loading    bool
	err        string
	generation uint64
}

// NewCategoryStore creates a category store. A nil notifier disables toasts.
func NewCategoryStore(api *API, notifier Notifier) *CategoryStore {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &CategoryStore{
		api:      api,
		notifier: notifier,
	}
}

// Refresh reloads the full category list. A refresh that was superseded by
// a newer one discards its response instead of clobbering fresher state.
func (s *CategoryStore) Refresh() error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	categories, err := s.api.GetCategories()

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
	s.categories = categories
	return nil
}

// Add creates a category and appends it to the local list on success.
func (s *CategoryStore) Add(id int, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if id == 0 || name == "" {
		s.notifier.Toast("Category ID and name cannot be empty", ToastError)
		return nil, fmt.Errorf("category ID and name cannot be empty")
	}

	created, err := s.api.CreateCategory(id, name)
	if err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Toast(err.Error(), ToastError)
		return nil, err
	}

	s.mu.Lock()
	s.categories = append(s.categories, *created)
	s.mu.Unlock()
	s.notifier.Toast("Category created successfully!", ToastSuccess)
	return created, nil
}

// Delete soft-deletes a category and filters it out of the local list on
// success. It reports whether the delete went through.
func (s *CategoryStore) Delete(id int) bool {
	if _, err := s.api.DeleteCategory(id); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Toast(err.Error(), ToastError)
		return false
	}

	s.mu.Lock()
	kept := s.categories[:0]
	for _, category := range s.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	s.categories = kept
	s.mu.Unlock()
	s.notifier.Toast("Category deleted successfully!", ToastSuccess)
	return true
}

// Categories returns a copy of the current list.
func (s *CategoryStore) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Names returns the category names in list order.
func (s *CategoryStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.categories))
	for i, category := range s.categories {
		names[i] = category.Name
	}
	return names
}

// Loading reports whether a refresh is in flight.
func (s *CategoryStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last action error, empty when the last action succeeded.
func (s *CategoryStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
