package handlers

import (
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for products. Error bodies are plain
// JSON strings carrying the message.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validation.Validator
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService, validate *validation.Validator, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// RegisterRoutes registers the catalog routes. writeGuards run in front of
// every mutating route.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router, writeGuards ...fiber.Handler) {
	guarded := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, writeGuards...), handler)
	}

	router.Get("/", h.HandleStatus)
	router.Get("/product", h.HandleGetProducts)
	router.Get("/product/:id", h.HandleGetProduct)
	router.Post("/product", guarded(h.HandleCreateProduct)...)
	router.Patch("/product/:id", guarded(h.HandleUpdateProduct)...)
	router.Delete("/product/:id", guarded(h.HandleDeleteProduct)...)
}

// HandleStatus reports that the service is up.
func (h *CatalogHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"msg": "catalog service running",
	})
}

// HandleCreateProduct creates a new product.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.badRequest(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the fields present in the body. An id that is
// not an integer is treated as 0.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return h.badRequest(c, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return h.badRequest(c, err)
	}
	input.ID, _ = c.ParamsInt("id", 0)

	product, err := h.service.UpdateProduct(c.UserContext(), input)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts lists products using the limit and offset query parameters.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	products, err := h.service.GetProducts(c.UserContext(), limit, offset)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// HandleGetProduct retrieves a single product by its id.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return h.internalError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON("product not found")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its id.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id", 0)

	deleted, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return h.internalError(c, err)
	}
	return c.JSON(deleted)
}

func (h *CatalogHandler) badRequest(c *fiber.Ctx, err error) error {
	h.logger.DebugContext(c.UserContext(), "Rejected request body",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return c.Status(fiber.StatusBadRequest).JSON(err.Error())
}

func (h *CatalogHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.ErrorContext(c.UserContext(), "Catalog request failed",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("kind", services.KindOf(err).String()),
		slog.String("error", err.Error()),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(err.Error())
}
