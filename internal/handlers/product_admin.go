package handlers

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/mykafka"
	"github.com/paintconnect/storefront/internal/service"
	"github.com/paintconnect/storefront/internal/service/search"
)

type ProductAdminHandler struct {
	Svc        *service.CatalogService
	Categories *service.CategoryService
	Producer   *mykafka.Producer
	ES         *elasticsearch.Client
	ESIndex    string
}

type productRequest struct {
	Name          string               `json:"name"`
	Code          *string              `json:"code"`
	Brand         *string              `json:"brand"`
	Color         *string              `json:"color"`
	Size          *string              `json:"size"`
	Price         *float64             `json:"price"`
	Description   string               `json:"description"`
	StockQuantity uint                 `json:"stock_quantity"`
	Status        models.ProductStatus `json:"status"`
	Images        models.ImageList     `json:"images"`
}

func (r productRequest) toModel() models.Product {
	return models.Product{
		Name:          r.Name,
		Code:          r.Code,
		Brand:         r.Brand,
		Color:         r.Color,
		Size:          r.Size,
		Price:         r.Price,
		Description:   r.Description,
		StockQuantity: r.StockQuantity,
		Status:        r.Status,
		Images:        r.Images,
	}
}

func (h *ProductAdminHandler) indexProduct(c echo.Context, prod *models.Product) {
	if h.ES == nil {
		return
	}
	if err := search.IndexProduct(c.Request().Context(), h.ES, h.ESIndex, prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_index_error", "product_id", prod.ID, "error", err)
	}
}

func (h *ProductAdminHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := req.toModel()
	created, err := h.Svc.CreateProduct(ctx, &prod)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_create_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("product_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to db")
	}

	h.indexProduct(c, created)
	publish(c, h.Producer, "product_events", created.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": created.ID.String(),
		"name":       created.Name,
	})

	l.Info("create_product_success", "product_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *ProductAdminHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := req.toModel()
	prod.ID = id
	updated, err := h.Svc.UpdateProduct(ctx, &prod)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_update_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_update_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("product_update_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
	}

	h.indexProduct(c, updated)
	publish(c, h.Producer, "product_events", updated.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": updated.ID.String(),
		"name":       updated.Name,
	})

	l.Info("update_product_success", "product_id", updated.ID)
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductAdminHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	if h.ES != nil {
		if err := search.DeleteProduct(ctx, h.ES, h.ESIndex, id.String()); err != nil {
			l.Error("es_delete_error", "product_id", id, "error", err)
		}
	}
	publish(c, h.Producer, "product_events", id.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": id.String(),
	})

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

// SetProductCategories replaces a product's category set, the admin dialog
// submits the whole selection at once.
func (h *ProductAdminHandler) SetProductCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.set_product_categories")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("set_product_categories_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req struct {
		CategoryIDs []uuid.UUID `json:"category_ids"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("set_product_categories_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Categories.SetProductCategories(ctx, id, req.CategoryIDs); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("set_product_categories_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("set_product_categories_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot set categories")
	}

	l.Info("set_product_categories_success", "product_id", id, "count", len(req.CategoryIDs))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
