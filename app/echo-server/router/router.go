package router

import (
	"myCardVault/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)

	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupCardRoutes(api *echo.Group, handler *rest.CardHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	cards := api.Group("/cards")

	cards.GET("", handler.GetAllCards)
	cards.GET("/:id", handler.GetCardByID)
	cards.POST("", handler.CreateCard, authRequired, adminOnly)
	cards.PUT("/:id", handler.UpdateCard, authRequired, adminOnly)
	cards.DELETE("/:id", handler.DeleteCard, authRequired, adminOnly)
}

func SetupSetRoutes(api *echo.Group, handler *rest.SetHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	sets := api.Group("/sets")

	sets.GET("", handler.GetAllSets)
	sets.GET("/:id", handler.GetSetByID)
	sets.POST("", handler.CreateSet, authRequired, adminOnly)
	sets.PUT("/:id", handler.UpdateSet, authRequired, adminOnly)
	sets.DELETE("/:id", handler.DeleteSet, authRequired, adminOnly)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.POST("", handler.CreateOrder)
	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PUT("/:id", handler.UpdateOrder)
	orders.DELETE("/:id", handler.DeleteOrder)
}

func SetReturnsRoutes(api *echo.Group, handler *rest.ReturnHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	returns := api.Group("/returns", authRequired)

	returns.POST("", handler.RequestReturn)
	returns.GET("", handler.GetMyReturns)
	returns.PUT("/:id/status", handler.UpdateReturnStatus, adminOnly)
}

func SetFeaturedRoutes(api *echo.Group, handler *rest.FeaturedHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	featured := api.Group("/featured")

	featured.GET("", handler.GetSlot)
	featured.PUT("", handler.UpsertPick, authRequired, adminOnly)
}

func SetRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.GetRecommendations)
	reco.GET("/debug", handler.DebugRecommend, adminOnly)
}

func SetRecommendAdminRoutes(api *echo.Group, handler *rest.RecommendAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/recommend", authRequired, adminOnly)

	admin.GET("/config", handler.GetConfig)
	admin.PUT("/config", handler.UpdateConfig)
}

func SetChatRoutes(api *echo.Group, handler *rest.ChatHandler, authRequired echo.MiddlewareFunc) {
	chat := api.Group("/chat", authRequired)

	chat.POST("", handler.Chat)
}
