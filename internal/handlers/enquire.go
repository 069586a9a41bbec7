package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/service"
	"github.com/paintconnect/storefront/internal/whatsapp"
)

// Enquire builds the single-product WhatsApp enquiry link. The server only
// hands the link back; opening it is the client's job.
func (h *CatalogHandler) Enquire(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.enquire")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("enquire_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req struct {
		Color      string `json:"color"`
		ProductURL string `json:"product_url"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("enquire_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("enquire_failed", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("enquire_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	phone, err := h.Settings.WhatsappNumber(ctx)
	if err != nil {
		l.Error("enquire_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load settings")
	}
	if phone == "" {
		l.Warn("enquire_failed", "status", 409, "reason", "whatsapp number not configured")
		return echo.NewHTTPError(http.StatusConflict, "WhatsApp number not configured")
	}

	inq := whatsapp.ProductInquiry{
		PhoneNumber: phone,
		ProductName: product.Name,
		Color:       req.Color,
		ProductURL:  req.ProductURL,
	}
	if product.Code != nil {
		inq.ProductCode = *product.Code
	}
	if inq.Color == "" && product.Color != nil {
		inq.Color = *product.Color
	}

	link, err := whatsapp.ProductLink(inq)
	if err != nil {
		l.Warn("enquire_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	l.Info("enquire_success", "product_id", id)
	return c.JSON(http.StatusOK, map[string]string{"whatsapp_link": link})
}
