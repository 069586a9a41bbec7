package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/catalog"
	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/service"
)

type CatalogHandler struct {
	Svc        *service.CatalogService
	Categories *service.CategoryService
	Settings   *service.SettingsService
}

// GetProducts serves the storefront listing: free-text search, category
// filter, page. Page size is fixed by the view, not taken from the client
// beyond a sanity cap.
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	size := parseIntDefault(c.QueryParam("size"), catalog.DefaultPageSize)
	if size < 1 || size > 100 {
		size = catalog.DefaultPageSize
	}

	f := catalog.NormalizeFilter(
		c.QueryParam("search"),
		parseCategoryIDs(c),
		parseIntDefault(c.QueryParam("page"), 1),
		size,
	)

	page, err := h.Svc.ListProducts(ctx, f)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("get_products_success", "total", page.TotalCount, "page", page.Page)
	return c.JSON(http.StatusOK, map[string]any{
		"data": page.Items,
		"meta": map[string]any{
			"page":        page.Page,
			"size":        f.PageSize,
			"total":       page.TotalCount,
			"total_pages": page.TotalPages,
			"has_prev":    page.Page > 1,
			"has_next":    int64(page.Page) < page.TotalPages,
		},
	})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetNewestProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_newest")

	limit := parseIntDefault(c.QueryParam("limit"), 8)
	if limit < 1 || limit > 24 {
		limit = 8
	}

	items, err := h.Svc.NewestProducts(ctx, limit)
	if err != nil {
		l.Error("get_newest_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) GetProductCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product_categories")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_product_categories_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	categories, err := h.Categories.GetCategoriesForProduct(ctx, id)
	if err != nil {
		l.Error("get_product_categories_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get categories")
	}

	return c.JSON(http.StatusOK, categories)
}
