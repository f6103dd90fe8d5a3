package repositories

import (
	"context"
	"sort"
	"sync"

	"catalog/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
type MockCatalogRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Create stores a new product under the next free id.
func (r *MockCatalogRepository) Create(_ context.Context, input models.CreateProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(input.Name, 0) {
		return nil, ErrProductExists
	}

	product := models.Product{
		ID:          r.nextID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	r.nextID++
	r.products[product.ID] = product
	return &product, nil
}

// Update merges the given fields into an existing product.
func (r *MockCatalogRepository) Update(_ context.Context, input models.UpdateProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[input.ID]
	if !ok {
		return nil, ErrProductNotFound
	}
	if input.Name != nil && r.nameTaken(*input.Name, input.ID) {
		return nil, ErrProductExists
	}

	input.Apply(&product)
	r.products[product.ID] = product
	return &product, nil
}

// Find returns a page of products ordered by id.
func (r *MockCatalogRepository) Find(_ context.Context, limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	start, end := window(len(ids), limit, offset)
	products := make([]models.Product, 0, end-start)
	for _, id := range ids[start:end] {
		products = append(products, r.products[id])
	}
	return products, nil
}

// FindOne returns the product with the given id, or nil.
func (r *MockCatalogRepository) FindOne(_ context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Delete removes a product by its id.
func (r *MockCatalogRepository) Delete(_ context.Context, id int) (*models.DeletedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil, ErrProductNotFound
	}
	delete(r.products, id)
	return &models.DeletedProduct{ID: id}, nil
}

// nameTaken reports whether a product other than exceptID already uses name.
// Callers must hold the lock.
func (r *MockCatalogRepository) nameTaken(name string, exceptID int) bool {
	for id, p := range r.products {
		if id != exceptID && p.Name == name {
			return true
		}
	}
	return false
}
