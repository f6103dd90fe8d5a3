package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
// The *gorm.DB must be opened with TranslateError enabled so unique
// violations surface as gorm.ErrDuplicatedKey.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// Create inserts a new product and returns it with its assigned id.
func (r *GORMCatalogRepository) Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, translateError("create product", err)
	}
	return &product, nil
}

// Update loads the product, merges the given fields and saves it.
func (r *GORMCatalogRepository) Update(ctx context.Context, input models.UpdateProductInput) (*models.Product, error) {
	db := r.db.WithContext(ctx)

	var product models.Product
	if err := db.First(&product, "id = ?", input.ID).Error; err != nil {
		return nil, translateError("load product for update", err)
	}

	input.Apply(&product)
	if err := db.Save(&product).Error; err != nil {
		return nil, translateError("update product", err)
	}
	return &product, nil
}

// Find retrieves a page of products ordered by id.
func (r *GORMCatalogRepository) Find(ctx context.Context, limit, offset int) ([]models.Product, error) {
	if offset < 0 {
		offset = 0
	}
	query := r.db.WithContext(ctx).Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	products := make([]models.Product, 0)
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// FindOne retrieves a single product by its id, or nil when there is none.
func (r *GORMCatalogRepository) FindOne(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// Delete removes a product by its id.
func (r *GORMCatalogRepository) Delete(ctx context.Context, id int) (*models.DeletedProduct, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return &models.DeletedProduct{ID: id}, nil
}

func translateError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrProductExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrProductNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
