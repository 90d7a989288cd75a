package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minhaz000/prime-motors-server/internal/handlers"
	"github.com/minhaz000/prime-motors-server/internal/middleware/auth"
)

type Deps struct {
	Auth            *auth.Middleware
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	BookingHandler  *handlers.BookingHandler
	CategoryHandler *handlers.CategoryHandler
	UserHandler     *handlers.UserHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "server is running") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	// public
	e.GET("/products/:id", d.ProductHandler.GetProductsByCategory)
	e.POST("/product", d.ProductHandler.CreateProduct)
	e.GET("/categories", d.CategoryHandler.GetCategories)
	e.POST("/booking", d.BookingHandler.CreateBooking)
	e.GET("/advertise", d.ProductHandler.GetAdvertised)
	e.POST("/advertise/:id", d.ProductHandler.AdvertiseProduct)
	e.POST("/get-token", d.AuthHandler.GetToken)
	e.GET("/search", d.SearchHandler.Search)

	// token required
	tokenOnly := e.Group("", d.Auth.VerifyToken)
	tokenOnly.GET("/booking", d.BookingHandler.GetBookings)
	tokenOnly.GET("/get-user-role", d.UserHandler.GetUserRole)
	tokenOnly.PUT("/user", d.UserHandler.UpdateUser)

	// token + resolved role
	roleScoped := e.Group("", d.Auth.VerifyToken, d.Auth.ResolveRole)
	roleScoped.GET("/products", d.ProductHandler.GetProducts)
	roleScoped.DELETE("/product/:id", d.ProductHandler.DeleteProduct)

	// admin only
	admin := e.Group("", d.Auth.VerifyToken, d.Auth.ResolveRole, d.Auth.AdminOnly)
	admin.GET("/buyers", d.UserHandler.GetBuyers)
	admin.GET("/sellers", d.UserHandler.GetSellers)
	admin.POST("/verify-user/:id", d.UserHandler.VerifyUser)
	admin.DELETE("/user/:id", d.UserHandler.DeleteUser)
}
