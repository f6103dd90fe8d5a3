package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/repositories/mocks"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newService(repo repositories.CatalogRepository) *services.CatalogService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewCatalogService(repo, noop.NewTracerProvider().Tracer("test"), logger)
}

func sampleInput() models.CreateProductInput {
	return models.CreateProductInput{Name: "Desk Lamp", Description: "Brass arm lamp", Price: 89.5, Stock: 12}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service := newService(repositories.NewMockCatalogRepository())

	product, err := service.CreateProduct(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Positive(t, product.ID)
	assert.Equal(t, "Desk Lamp", product.Name)
	assert.Equal(t, "Brass arm lamp", product.Description)
	assert.Equal(t, 89.5, product.Price)
	assert.Equal(t, 12, product.Stock)
}

func TestCatalogService_CreateProductAssignsDistinctIDs(t *testing.T) {
	service := newService(repositories.NewMockCatalogRepository())

	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		input := sampleInput()
		input.Name = fmt.Sprintf("Lamp %d", i)
		product, err := service.CreateProduct(context.Background(), input)
		require.NoError(t, err)
		assert.Positive(t, product.ID)
		assert.False(t, seen[product.ID])
		seen[product.ID] = true
	}
}

func TestCatalogService_CreateProductWithoutID(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)
	input := sampleInput()

	// Repository resolves an empty record.
	mockRepo.On("Create", mock.Anything, input).Return(&models.Product{}, nil).Once()
	_, err := service.CreateProduct(context.Background(), input)
	assert.EqualError(t, err, "unable to create product")
	assert.Equal(t, services.KindCreationFailed, services.KindOf(err))

	// Repository resolves nothing at all.
	mockRepo.On("Create", mock.Anything, input).Return(nil, nil).Once()
	_, err = service.CreateProduct(context.Background(), input)
	assert.EqualError(t, err, "unable to create product")
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProductAlreadyExists(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)
	input := sampleInput()

	mockRepo.On("Create", mock.Anything, input).Return(nil, repositories.ErrProductExists).Once()
	_, err := service.CreateProduct(context.Background(), input)

	assert.EqualError(t, err, "product already exists")
	assert.Equal(t, services.KindRepositoryFailure, services.KindOf(err))
	assert.ErrorIs(t, err, repositories.ErrProductExists)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	repo := repositories.NewMockCatalogRepository()
	service := newService(repo)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, sampleInput())
	require.NoError(t, err)

	name := "Desk Lamp XL"
	price := 120.0
	updated, err := service.UpdateProduct(ctx, models.UpdateProductInput{ID: created.ID, Name: &name, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, &models.Product{
		ID:          created.ID,
		Name:        "Desk Lamp XL",
		Description: created.Description,
		Price:       120,
		Stock:       created.Stock,
	}, updated)
}

func TestCatalogService_UpdateProductDoesNotExist(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)

	mockRepo.On("Update", mock.Anything, models.UpdateProductInput{}).
		Return(nil, errors.New("product does not exist")).Once()
	_, err := service.UpdateProduct(context.Background(), models.UpdateProductInput{})

	assert.EqualError(t, err, "product does not exist")
	assert.Equal(t, services.KindRepositoryFailure, services.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProducts(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)

	expected := make([]models.Product, 0, 25)
	for i := 1; i <= 25; i++ {
		expected = append(expected, models.Product{ID: i, Name: fmt.Sprintf("Product %d", i), Price: float64(i), Stock: i * 2})
	}

	mockRepo.On("Find", mock.Anything, 25, 0).Return(expected, nil).Once()
	products, err := service.GetProducts(context.Background(), 25, 0)

	require.NoError(t, err)
	assert.Len(t, products, 25)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProductsFailure(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)

	mockRepo.On("Find", mock.Anything, 0, 0).Return(nil, errors.New("product does not exist")).Once()
	_, err := service.GetProducts(context.Background(), 0, 0)

	assert.EqualError(t, err, "product does not exist")
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProduct(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)

	expected := &models.Product{ID: 7, Name: "Headphones", Description: "Over-ear", Price: 249, Stock: 34}
	mockRepo.On("FindOne", mock.Anything, 7).Return(expected, nil).Once()
	product, err := service.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, expected, product)

	// No not-found translation: nil in, nil out.
	mockRepo.On("FindOne", mock.Anything, 8).Return(nil, nil).Once()
	product, err = service.GetProduct(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	mockRepo := new(mocks.CatalogRepository)
	service := newService(mockRepo)

	mockRepo.On("Delete", mock.Anything, 3).Return(&models.DeletedProduct{ID: 3}, nil).Once()
	deleted, err := service.DeleteProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &models.DeletedProduct{ID: 3}, deleted)

	mockRepo.On("Delete", mock.Anything, 99).Return(nil, repositories.ErrProductNotFound).Once()
	_, err = service.DeleteProduct(context.Background(), 99)
	assert.EqualError(t, err, "product does not exist")
	mockRepo.AssertExpectations(t)
}
