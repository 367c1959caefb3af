package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/handler"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	playHandler *handler.PlayHandler,
	walletHandler *handler.WalletHandler,
	wsHandler *handler.WebSocketHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Check)

	// Every play route requires an attributable caller
	playRoutes := router.Group("/play", middleware.Identity())
	{
		playRoutes.GET("/boots", playHandler.Boots)
		playRoutes.POST("/join-game", playHandler.JoinGame)
		playRoutes.POST("/exit-game", playHandler.ExitGame)
		playRoutes.POST("/place-bet", playHandler.PlaceBet)
		playRoutes.POST("/start-round", playHandler.StartRound)
		playRoutes.POST("/complete-game", playHandler.CompleteGame)
		playRoutes.POST("/side-show-response", playHandler.SideShowResponse)
		playRoutes.GET("/room-detail/:roomId", playHandler.RoomDetail)

		playRoutes.POST("/daily-bonus", walletHandler.DailyBonus)
		playRoutes.GET("/wallet-history", walletHandler.History)
	}

	router.GET("/ws", middleware.Identity(), wsHandler.Serve)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
