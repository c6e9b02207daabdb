package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// API calls the catalog admin HTTP endpoints and unwraps the response
// envelope. A failure envelope (success=false) surfaces as a Go error
// carrying the server's reason.
type API struct {
	baseURL string
	http    *http.Client
}

// New creates an API client for the given base URL, e.g.
// "http://localhost:8080".
func New(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (a *API) do(method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		reason := env.Error
		if reason == "" {
			reason = env.Message
		}
		return fmt.Errorf("%s", reason)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// GetCategories fetches all non-deleted categories.
func (a *API) GetCategories() ([]Category, error) {
	var categories []Category
	if err := a.do(http.MethodGet, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category with a caller-supplied ID.
func (a *API) CreateCategory(id int, name string) (*Category, error) {
	var category Category
	payload := map[string]interface{}{"id": id, "name": name}
	if err := a.do(http.MethodPost, "/api/v1/category", payload, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory soft-deletes a category and returns the updated row.
func (a *API) DeleteCategory(id int) (*Category, error) {
	var category Category
	if err := a.do(http.MethodDelete, fmt.Sprintf("/api/v1/category/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetProducts fetches all non-deleted products; filtering happens in the
// stores, the way the dashboard filters client-side.
func (a *API) GetProducts() ([]Product, error) {
	var products []Product
	if err := a.do(http.MethodGet, "/api/v1/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by ID.
func (a *API) GetProduct(id int) (*Product, error) {
	var product Product
	if err := a.do(http.MethodGet, fmt.Sprintf("/api/v1/product/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product.
func (a *API) CreateProduct(form ProductForm) (*Product, error) {
	var product Product
	if err := a.do(http.MethodPost, "/api/v1/product", form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial edit to a product.
func (a *API) UpdateProduct(id int, update ProductUpdate) (*Product, error) {
	var product Product
	if err := a.do(http.MethodPut, fmt.Sprintf("/api/v1/product/%d", id), update, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct soft-deletes a product and returns the updated row.
func (a *API) DeleteProduct(id int) (*Product, error) {
	var product Product
	if err := a.do(http.MethodDelete, fmt.Sprintf("/api/v1/product/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
