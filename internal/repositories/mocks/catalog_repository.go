// Package mocks holds testify-based doubles for the repository interfaces.
package mocks

import (
	"context"

	"catalog/internal/models"

	"github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock implementation of repositories.CatalogRepository.
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) Create(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogRepository) Update(ctx context.Context, input models.UpdateProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogRepository) Find(ctx context.Context, limit, offset int) ([]models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *CatalogRepository) FindOne(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogRepository) Delete(ctx context.Context, id int) (*models.DeletedProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeletedProduct), args.Error(1)
}
