package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/auth"
	"github.com/paintconnect/storefront/internal/handlers"
)

type Deps struct {
	DB              *gorm.DB
	JWTSecret       []byte
	CatalogHandler  *handlers.CatalogHandler
	ProductAdmin    *handlers.ProductAdminHandler
	CategoryHandler *handlers.CategoryHandler
	SettingsHandler *handlers.SettingsHandler
	MessageHandler  *handlers.MessageHandler
	CartHandler     *handlers.CartHandler
	AuthHandler     *handlers.AuthHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/refresh", d.AuthHandler.Refresh)
	v1.POST("/logout", d.AuthHandler.Logout, auth.RequireAuth(d.JWTSecret))

	products := v1.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/newest", d.CatalogHandler.GetNewestProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)
	products.GET("/:id/categories", d.CatalogHandler.GetProductCategories)
	products.POST("/:id/enquire", d.CatalogHandler.Enquire)

	v1.GET("/categories", d.CategoryHandler.GetCategories)
	v1.GET("/settings", d.SettingsHandler.GetSettings)
	v1.POST("/messages", d.MessageHandler.CreateMessage)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:productId", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:productId", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/checkout", d.CartHandler.Checkout)

	admin := v1.Group("/admin", auth.RequireAdmin(d.JWTSecret))
	admin.POST("/products", d.ProductAdmin.CreateProduct)
	admin.PUT("/products/:id", d.ProductAdmin.UpdateProduct)
	admin.DELETE("/products/:id", d.ProductAdmin.DeleteProduct)
	admin.POST("/products/:id/categories", d.ProductAdmin.SetProductCategories)
	admin.POST("/categories", d.CategoryHandler.CreateCategory)
	admin.PUT("/categories/:id", d.CategoryHandler.UpdateCategory)
	admin.DELETE("/categories/:id", d.CategoryHandler.DeleteCategory)
	admin.PUT("/settings", d.SettingsHandler.UpdateSettings)
	admin.GET("/messages", d.MessageHandler.ListMessages)
	admin.PUT("/messages/:id/read", d.MessageHandler.MarkRead)
	admin.DELETE("/messages/:id", d.MessageHandler.DeleteMessage)
}
