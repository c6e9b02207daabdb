package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"shopadmin/pkg/client"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// toastRecorder captures toast notifications for assertions.
type toastRecorder struct {
	mu      sync.Mutex
	entries []string
}

func (r *toastRecorder) Toast(message string, level client.ToastLevel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, string(level)+": "+message)
}

func (r *toastRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1]
}

// fakeBackend is an in-memory stand-in for the admin API, speaking the
// same envelope the real handlers produce.
type fakeBackend struct {
	mu         sync.Mutex
	categories []client.Category
	products   []client.Product
	nextID     int
	failWith   string // when set, the next request fails with this reason
}

func (b *fakeBackend) ok(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true, "message": message, "data": data,
	})
}

func (b *fakeBackend) fail(w http.ResponseWriter, status int, message, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false, "message": message, "error": reason,
	})
}

func (b *fakeBackend) failNext(w http.ResponseWriter) bool {
	if b.failWith == "" {
		return false
	}
	reason := b.failWith
	b.failWith = ""
	b.fail(w, http.StatusBadRequest, "Request failed", reason)
	return true
}

func (b *fakeBackend) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		b.ok(w, http.StatusOK, "Categories fetched successfully", b.categories)
	})

	mux.HandleFunc("POST /api/v1/category", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		var req struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		category := client.Category{ID: req.ID, Name: req.Name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		b.categories = append(b.categories, category)
		b.ok(w, http.StatusCreated, "Category created successfully", category)
	})

	mux.HandleFunc("DELETE /api/v1/category/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		for i, category := range b.categories {
			if category.ID == id {
				b.categories[i].IsDeleted = true
				b.ok(w, http.StatusOK, "Category deleted successfully", b.categories[i])
				return
			}
		}
		b.fail(w, http.StatusBadRequest, "Category deletion failed", "Category not found")
	})

	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		b.ok(w, http.StatusOK, "Products fetched successfully", b.products)
	})

	mux.HandleFunc("POST /api/v1/product", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		var req client.ProductForm
		json.NewDecoder(r.Body).Decode(&req)
		b.nextID++
		product := client.Product{
			ID: b.nextID, Name: req.Name, CategoryID: req.CategoryID,
			Price: req.Price, Stock: req.Stock,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}
		for _, category := range b.categories {
			if category.ID == req.CategoryID {
				product.Category = client.CategoryRef{ID: category.ID, Name: category.Name}
			}
		}
		b.products = append(b.products, product)
		b.ok(w, http.StatusCreated, "Product created successfully", product)
	})

	mux.HandleFunc("PUT /api/v1/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		var req client.ProductUpdate
		json.NewDecoder(r.Body).Decode(&req)
		for i := range b.products {
			if b.products[i].ID != id {
				continue
			}
			if req.Name != nil {
				b.products[i].Name = *req.Name
			}
			if req.Price != nil {
				b.products[i].Price = *req.Price
			}
			if req.Stock != nil {
				b.products[i].Stock = *req.Stock
			}
			b.products[i].UpdatedAt = time.Now()
			b.ok(w, http.StatusOK, "Product updated successfully", b.products[i])
			return
		}
		b.fail(w, http.StatusBadRequest, "Product update failed", "Product not found")
	})

	mux.HandleFunc("DELETE /api/v1/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failNext(w) {
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		for i, product := range b.products {
			if product.ID == id {
				b.products[i].IsDeleted = true
				b.ok(w, http.StatusOK, "Product deleted successfully", b.products[i])
				return
			}
		}
		b.fail(w, http.StatusBadRequest, "Product deletion failed", "Product not found")
	})

	return httptest.NewServer(mux)
}

func TestCategoryStore_RefreshAddDelete(t *testing.T) {
	backend := &fakeBackend{}
	server := backend.server()
	defer server.Close()

	toasts := &toastRecorder{}
	store := client.NewCategoryStore(client.New(server.URL), toasts)

	assert.NoError(t, store.Refresh())
	assert.Empty(t, store.Categories())
	assert.False(t, store.Loading())

	created, err := store.Add(1, "Books")
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, []string{"Books"}, store.Names())
	assert.Equal(t, "success: Category created successfully!", toasts.last())

	assert.True(t, store.Delete(1))
	assert.Empty(t, store.Categories())
	assert.Equal(t, "success: Category deleted successfully!", toasts.last())
}

func TestCategoryStore_AddValidatesLocally(t *testing.T) {
	backend := &fakeBackend{}
	server := backend.server()
	defer server.Close()

	toasts := &toastRecorder{}
	store := client.NewCategoryStore(client.New(server.URL), toasts)

	created, err := store.Add(0, "   ")
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Equal(t, "error: Category ID and name cannot be empty", toasts.last())
}

func TestCategoryStore_ServerFailureSurfacesAsToast(t *testing.T) {
	backend := &fakeBackend{failWith: "Category already exists"}
	server := backend.server()
	defer server.Close()

	toasts := &toastRecorder{}
	store := client.NewCategoryStore(client.New(server.URL), toasts)

	created, err := store.Add(1, "Books")
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Equal(t, "Category already exists", store.Err())
	assert.Equal(t, "error: Category already exists", toasts.last())
	assert.Empty(t, store.Categories())
}

func TestProductStore_FilteredView(t *testing.T) {
	backend := &fakeBackend{
		products: []client.Product{
			{ID: 1, Name: "Smartphone", Category: client.CategoryRef{ID: 1, Name: "Electronics"}, Price: 499.99, Stock: 5},
			{ID: 2, Name: "Phone Case", Category: client.CategoryRef{ID: 2, Name: "Clothing"}, Price: 9.99, Stock: 50},
			{ID: 3, Name: "Laptop", Category: client.CategoryRef{ID: 1, Name: "Electronics"}, Price: 1299.99, Stock: 3},
		},
	}
	server := backend.server()
	defer server.Close()

	store := client.NewProductStore(client.New(server.URL), nil)
	assert.NoError(t, store.Refresh())

	// Case-insensitive substring match on the product name.
	store.SetSearchTerm("PHONE")
	filtered := store.Filtered()
	assert.Len(t, filtered, 2)

	// AND-combined with the selected category.
	store.SetSelectedCategory("Electronics")
	filtered = store.Filtered()
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Smartphone", filtered[0].Name)

	// The search term also matches the category name.
	store.SetSelectedCategory("")
	store.SetSearchTerm("electronics")
	assert.Len(t, store.Filtered(), 2)

	assert.Equal(t, []string{"Electronics", "Clothing"}, store.CategoryNames())
}

func TestProductStore_AddUpdateDelete(t *testing.T) {
	backend := &fakeBackend{
		categories: []client.Category{{ID: 1, Name: "Electronics"}},
	}
	server := backend.server()
	defer server.Close()

	toasts := &toastRecorder{}
	store := client.NewProductStore(client.New(server.URL), toasts)
	assert.NoError(t, store.Refresh())

	assert.True(t, store.Add(client.ProductForm{Name: "Phone", CategoryID: 1, Price: 499.99, Stock: 10}))
	products := store.Products()
	assert.Len(t, products, 1)
	assert.Equal(t, "Electronics", products[0].Category.Name)
	assert.Equal(t, "success: Product created successfully!", toasts.last())

	stock := 7
	assert.True(t, store.Update(products[0].ID, client.ProductUpdate{Stock: &stock}))
	products = store.Products()
	assert.Equal(t, 7, products[0].Stock)
	assert.Equal(t, "Phone", products[0].Name)
	assert.Equal(t, "success: Product updated successfully!", toasts.last())

	assert.True(t, store.Delete(products[0].ID))
	assert.Empty(t, store.Products())
	assert.Equal(t, "success: Product deleted successfully!", toasts.last())
}

func TestProductStore_Stats(t *testing.T) {
	backend := &fakeBackend{
		products: []client.Product{
			{ID: 1, Name: "Smartphone", Price: 499.99, Stock: 5},
			{ID: 2, Name: "Phone Case", Price: 9.99, Stock: 50},
		},
	}
	server := backend.server()
	defer server.Close()

	store := client.NewProductStore(client.New(server.URL), nil)
	assert.NoError(t, store.Refresh())

	stats := store.Stats()
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 55, stats.TotalStock)
	assert.True(t, stats.InventoryValue.Equal(decimal.NewFromFloat(2999.45)),
		"expected 2999.45, got %s", stats.InventoryValue)
}

func TestProductStore_RefreshError(t *testing.T) {
	backend := &fakeBackend{failWith: "Failed to fetch products"}
	server := backend.server()
	defer server.Close()

	toasts := &toastRecorder{}
	store := client.NewProductStore(client.New(server.URL), toasts)

	err := store.Refresh()
	assert.Error(t, err)
	assert.False(t, store.Loading())
	assert.Equal(t, "Failed to fetch products", store.Err())
	assert.Equal(t, "error: Failed to fetch products", toasts.last())
}
