package repositories

import (
	"context"
	"errors"

	"catalog/internal/models"
)

var (
	// ErrProductExists is returned when a product with the same name is already stored.
	ErrProductExists = errors.New("product already exists")
	// ErrProductNotFound is returned when an update or delete targets a missing product.
	ErrProductNotFound = errors.New("product does not exist")
)

// CatalogRepository defines the interface for product data access.
//
// Find returns up to limit products starting at offset, ordered by id. A limit
// of zero or less means no limit. FindOne returns nil without an error when no
// product has the given id.
type CatalogRepository interface {
	Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, input models.UpdateProductInput) (*models.Product, error)
	Find(ctx context.Context, limit, offset int) ([]models.Product, error)
	FindOne(ctx context.Context, id int) (*models.Product, error)
	Delete(ctx context.Context, id int) (*models.DeletedProduct, error)
}

// window clamps limit/offset against n items and returns the slice bounds.
func window(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && limit < n-offset {
		end = offset + limit
	}
	return offset, end
}
