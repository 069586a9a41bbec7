package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/cart"
	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/mykafka"
	"github.com/paintconnect/storefront/internal/service"
	"github.com/paintconnect/storefront/internal/whatsapp"
)

const cartCookieName = "cart_session"

type CartHandler struct {
	Store    *cart.Store
	Catalog  *service.CatalogService
	Settings *service.SettingsService
	Producer *mykafka.Producer
}

// session reads or creates the cart session cookie. The cookie only names the
// in-memory cart; nothing about the cart is persisted.
func (h *CartHandler) session(c echo.Context) uuid.UUID {
	if ck, err := c.Cookie(cartCookieName); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			return id
		}
	}

	id := uuid.New()
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    id.String(),
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

type cartView struct {
	Items      []cart.Line `json:"items"`
	TotalItems uint        `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{
		Items:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	session := h.session(c)

	var view cartView
	h.Store.With(session, func(ct *cart.Cart) {
		view = viewOf(ct)
	})

	return c.JSON(http.StatusOK, view)
}

// AddToCart validates the requested quantity against current stock before
// touching the cart (the dialog path); the cart clamps once more on its own
// (the store path). Both checks stay in place on purpose.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Quantity  uint      `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == uuid.Nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product_id required")
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.Catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	if product.Status != models.StatusActive {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product inactive")
		return echo.NewHTTPError(http.StatusBadRequest, "product is not available")
	}
	if product.StockQuantity == 0 {
		l.Warn("add_to_cart_error", "status", 400, "reason", "out of stock")
		return echo.NewHTTPError(http.StatusBadRequest, "product is out of stock")
	}
	if req.Quantity > product.StockQuantity {
		l.Warn("add_to_cart_error", "status", 400, "reason", "quantity exceeds stock")
		return echo.NewHTTPError(http.StatusBadRequest, "quantity exceeds available stock")
	}

	line := cart.Line{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  req.Quantity,
		Stock:     product.StockQuantity,
	}
	if product.Code != nil {
		line.Code = *product.Code
	}
	if product.Price != nil {
		line.UnitPrice = *product.Price
	}
	if len(product.Images) > 0 {
		line.Image = product.Images[0]
	}

	session := h.session(c)
	var applied cart.Line
	var view cartView
	h.Store.With(session, func(ct *cart.Cart) {
		applied = ct.AddItem(line)
		view = viewOf(ct)
	})

	publish(c, h.Producer, "cart_events", session.String(), map[string]any{
		"type":       "cart_item_added",
		"session":    session.String(),
		"product_id": product.ID.String(),
		"quantity":   applied.Quantity,
	})

	l.Info("add_to_cart_success", "product_id", product.ID, "quantity", applied.Quantity)
	return c.JSON(http.StatusOK, map[string]any{"line": applied, "cart": view})
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not a uuid")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	session := h.session(c)
	var found bool
	var view cartView
	h.Store.With(session, func(ct *cart.Cart) {
		found = ct.UpdateQuantity(productID, req.Quantity)
		view = viewOf(ct)
	})

	if !found {
		l.Warn("update_quantity_error", "status", 404, "product_id", productID)
		return echo.NewHTTPError(http.StatusNotFound, "item not in cart")
	}

	l.Info("update_quantity_success", "product_id", productID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("remove_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not a uuid")
	}

	session := h.session(c)
	var view cartView
	h.Store.With(session, func(ct *cart.Cart) {
		ct.RemoveItem(productID)
		view = viewOf(ct)
	})

	l.Info("remove_item_success", "product_id", productID)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	session := h.session(c)
	h.Store.Drop(session)

	logging.FromContext(c.Request().Context()).Info("cart_cleared", "session", session)
	return c.JSON(http.StatusOK, cartView{Items: []cart.Line{}})
}

// Checkout is the order handoff: format the cart into a WhatsApp message,
// hand the deep link back and drop the cart. Fire-and-forget — there is no
// confirmation that the channel was reached.
func (h *CartHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	session := h.session(c)
	var lines []cart.Line
	h.Store.With(session, func(ct *cart.Cart) {
		lines = ct.Lines()
	})

	if len(lines) == 0 {
		l.Warn("checkout_error", "status", 400, "reason", "cart empty")
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	phone, err := h.Settings.WhatsappNumber(ctx)
	if err != nil {
		l.Error("checkout_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load settings")
	}
	if phone == "" {
		// Precondition failure: block the handoff entirely, keep the cart.
		l.Warn("checkout_error", "status", 409, "reason", "whatsapp number not configured")
		return echo.NewHTTPError(http.StatusConflict, "WhatsApp number not configured")
	}

	link, err := whatsapp.CartLink(phone, lines)
	if err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.Store.Drop(session)

	publish(c, h.Producer, "order_events", session.String(), map[string]any{
		"type":    "cart_checkout",
		"session": session.String(),
		"items":   len(lines),
	})

	l.Info("checkout_success", "session", session, "items", len(lines))
	return c.JSON(http.StatusOK, map[string]string{"whatsapp_link": link})
}
