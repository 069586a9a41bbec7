package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/cart"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
	"github.com/paintconnect/storefront/internal/service"
)

func newTestCartHandler(t *testing.T) (*CartHandler, *repo.GormRepo) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Setting{}))

	r := &repo.GormRepo{DB: db}
	return &CartHandler{
		Store:    cart.NewStore(),
		Catalog:  &service.CatalogService{Repo: r},
		Settings: &service.SettingsService{Repo: r},
	}, r
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64, stock uint) *models.Product {
	t.Helper()

	prod := models.Product{
		Name:          name,
		Price:         &price,
		StockQuantity: stock,
		Status:        models.StatusActive,
	}
	created, err := r.CreateProduct(context.Background(), &prod)
	require.NoError(t, err)
	return created
}

func doJSON(h echo.HandlerFunc, method, target, body string, cookies []*http.Cookie, pathParams map[string]string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
	return rec, h(c)
}

func TestCartHandler_AddToCart(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Interior Emulsion", 2500, 4)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":2}`, prod.ID)
	rec, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":2`)
	assert.NotEmpty(t, rec.Result().Cookies(), "first touch issues a session cookie")
}

func TestCartHandler_AddToCart_QuantityExceedsStock(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Thinner", 800, 2)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":5}`, prod.ID)
	_, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_AddToCart_OutOfStock(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Primer", 1200, 0)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":1}`, prod.ID)
	_, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_AddToCart_InactiveProduct(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Discontinued Gloss", 900, 10)
	require.NoError(t, r.DB.Model(prod).Update("status", models.StatusInactive).Error)

	body := fmt.Sprintf(`{"product_id":%q}`, prod.ID)
	_, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_AddToCart_UnknownProduct(t *testing.T) {
	t.Parallel()

	h, _ := newTestCartHandler(t)

	body := fmt.Sprintf(`{"product_id":%q}`, uuid.New())
	_, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	t.Parallel()

	h, _ := newTestCartHandler(t)

	_, err := doJSON(h.Checkout, http.MethodPost, "/api/v1/cart/checkout", "", nil, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_Checkout_NumberNotConfigured(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Roller Set", 1500, 3)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":1}`, prod.ID)
	rec, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)
	require.NoError(t, err)
	session := rec.Result().Cookies()

	_, err = doJSON(h.Checkout, http.MethodPost, "/api/v1/cart/checkout", "", session, nil)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)

	// The blocked handoff must not eat the cart.
	rec, err = doJSON(h.GetCart, http.MethodGet, "/api/v1/cart", "", session, nil)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"total_items":1`)
}

func TestCartHandler_Checkout_Success(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	_, err := r.UpdateSettings(context.Background(), &models.Setting{WhatsappNumber: "077 341 8669"})
	require.NoError(t, err)
	prod := seedProduct(t, r, "Exterior Paint", 3200, 6)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":2}`, prod.ID)
	rec, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)
	require.NoError(t, err)
	session := rec.Result().Cookies()

	rec, err = doJSON(h.Checkout, http.MethodPost, "/api/v1/cart/checkout", "", session, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://wa.me/+0773418669?text=")

	// Successful handoff drops the cart.
	rec, err = doJSON(h.GetCart, http.MethodGet, "/api/v1/cart", "", session, nil)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"total_items":0`)
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	t.Parallel()

	h, r := newTestCartHandler(t)
	prod := seedProduct(t, r, "Brush", 450, 10)

	body := fmt.Sprintf(`{"product_id":%q,"quantity":3}`, prod.ID)
	rec, err := doJSON(h.AddToCart, http.MethodPost, "/api/v1/cart/items", body, nil, nil)
	require.NoError(t, err)
	session := rec.Result().Cookies()

	rec, err = doJSON(h.UpdateQuantity, http.MethodPatch, "/api/v1/cart/items/"+prod.ID.String(),
		`{"quantity":1}`, session, map[string]string{"productId": prod.ID.String()})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"total_items":1`)

	_, err = doJSON(h.UpdateQuantity, http.MethodPatch, "/api/v1/cart/items/"+uuid.NewString(),
		`{"quantity":1}`, session, map[string]string{"productId": uuid.NewString()})
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	rec, err = doJSON(h.RemoveItem, http.MethodDelete, "/api/v1/cart/items/"+prod.ID.String(),
		"", session, map[string]string{"productId": prod.ID.String()})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"total_items":0`)
}
