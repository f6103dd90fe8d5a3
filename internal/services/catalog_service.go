package services

import (
	"context"
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CatalogService handles business logic related to products. It holds no
// state of its own besides its collaborators.
type CatalogService struct {
	repo   repositories.CatalogRepository
	tracer trace.Tracer
	logger *slog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository, tracer trace.Tracer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		tracer: tracer,
		logger: logger,
	}
}

// CreateProduct creates a new product and returns it with its assigned id.
func (s *CatalogService) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.CreateProduct")
	defer span.End()

	span.SetAttributes(attribute.String("product.name", input.Name))

	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, span, "create", repositoryFailure(err))
	}
	if product == nil || product.ID == 0 {
		return nil, s.fail(ctx, span, "create", creationFailed())
	}

	span.SetAttributes(attribute.Int("product.id", product.ID))
	span.SetStatus(codes.Ok, "Product created")
	s.logger.InfoContext(ctx, "Product created",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name),
	)
	return product, nil
}

// UpdateProduct replaces the given fields of an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, input models.UpdateProductInput) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.UpdateProduct")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", input.ID))

	product, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, s.fail(ctx, span, "update", repositoryFailure(err))
	}

	span.SetStatus(codes.Ok, "Product updated")
	s.logger.InfoContext(ctx, "Product updated", slog.Int("product_id", input.ID))
	return product, nil
}

// GetProducts returns up to limit products starting at offset.
func (s *CatalogService) GetProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProducts")
	defer span.End()

	span.SetAttributes(
		attribute.Int("page.limit", limit),
		attribute.Int("page.offset", offset),
	)

	products, err := s.repo.Find(ctx, limit, offset)
	if err != nil {
		return nil, s.fail(ctx, span, "list", repositoryFailure(err))
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))
	span.SetStatus(codes.Ok, "Products listed")
	s.logger.DebugContext(ctx, "Products listed", slog.Int("count", len(products)))
	return products, nil
}

// GetProduct returns the product with the given id. A nil product with a nil
// error means the repository has no such product.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", id))

	product, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "read", repositoryFailure(err))
	}

	span.SetAttributes(attribute.Bool("product.found", product != nil))
	span.SetStatus(codes.Ok, "Product read")
	return product, nil
}

// DeleteProduct removes a product and returns the repository's confirmation.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int) (*models.DeletedProduct, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.DeleteProduct")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", id))

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, "delete", repositoryFailure(err))
	}

	span.SetStatus(codes.Ok, "Product deleted")
	s.logger.InfoContext(ctx, "Product deleted", slog.Int("product_id", id))
	return deleted, nil
}

func (s *CatalogService) fail(ctx context.Context, span trace.Span, operation string, err *Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)
	s.logger.ErrorContext(ctx, "Catalog operation failed",
		slog.String("operation", operation),
		slog.String("kind", err.Kind.String()),
		slog.String("error", err.Message),
	)
	return err
}
