package router

import (
	"ballisticmarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(e *echo.Echo, handler *rest.AuthHandler, optionalSession echo.MiddlewareFunc) {
	auth := e.Group("/auth")

	auth.GET("/steam", handler.Login)
	auth.GET("/steam/return", handler.Callback)
	auth.GET("/user", handler.CurrentUser, optionalSession)
	auth.GET("/logout", handler.Logout)
	auth.GET("/status", handler.Status, optionalSession)
}

func SetupShopRoutes(api *echo.Group, handler *rest.ShopHandler, authRequired echo.MiddlewareFunc) {
	shop := api.Group("/shop")

	shop.GET("/products", handler.GetProducts)
	shop.GET("/products/:id", handler.GetProductByID)
	shop.GET("/recent-purchases", handler.GetRecentPurchases)
	shop.POST("/order", handler.CreateOrder, authRequired)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	user := api.Group("/user", authRequired)

	user.GET("/profile", handler.GetProfile)
	user.PUT("/profile", handler.UpdateProfile)
	user.GET("/cart", handler.GetCart)
	user.POST("/cart", handler.AddCartItem)
	user.DELETE("/cart/:productId", handler.RemoveCartItem)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired, adminOnly, optionalSession echo.MiddlewareFunc) {
	admin := api.Group("/admin")

	// /check answers for anonymous callers too and must never 401.
	admin.GET("/check", handler.CheckAdmin, optionalSession)

	admin.GET("/products", handler.GetProducts, authRequired, adminOnly)
	admin.POST("/products", handler.CreateProduct, authRequired, adminOnly)
	admin.DELETE("/products/:id", handler.DeleteProduct, authRequired, adminOnly)
	admin.GET("/orders", handler.GetOrders, authRequired, adminOnly)
	admin.PUT("/orders/:id/status", handler.UpdateOrderStatus, authRequired, adminOnly)
}
