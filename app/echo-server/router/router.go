package router

import (
	"dealScout/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRankingRoutes(api *echo.Group, handler *rest.RankingHandler) {
	api.POST("/chat", handler.Chat)
	api.GET("/deals", handler.Deals)
}

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler) {
	auth := api.Group("/auth")
	auth.POST("/login", handler.Login)
}

func SetupAdminRoutes(api *echo.Group, catalogHandler *rest.CatalogHandler, modelHandler *rest.ModelHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, adminOnly)

	admin.POST("/catalog/import", catalogHandler.ImportCatalog)
	admin.GET("/catalog/products", catalogHandler.ListProducts)
	admin.GET("/model", modelHandler.ModelInfo)
}
