package rest

import (
	"context"
	"net/http"
	"time"

	"dealScout/domain"
	"dealScout/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CatalogHandler struct {
		validate       *validator.Validate
		catalogService CatalogAdminService
	}

	CatalogAdminService interface {
		Import(ctx context.Context, products []domain.Product) (int, error)
		ProductNames() []string
	}

	ImportCatalogRequest struct {
		Products []domain.Product `json:"products" validate:"required,min=1"`
	}
)

func NewCatalogHandler(catalogService CatalogAdminService) *CatalogHandler {
	return &CatalogHandler{
		validate:       validator.New(),
		catalogService: catalogService,
	}
}

// ImportCatalog replaces the whole catalog with the posted products and
// reloads the in-memory snapshot.
func (h *CatalogHandler) ImportCatalog(c echo.Context) error {
	var req ImportCatalogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	count, err := h.catalogService.Import(ctx, req.Products)
	if err != nil {
		logger.Error("Failed to import catalog", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"imported": count,
	}))
}

// ListProducts returns the product names currently in the snapshot.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalogService.ProductNames()))
}
