package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/host"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, presence host.PresenceTracker) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Market endpoints (public read access)
		v1.GET("/listings", handler.SearchListings)
		v1.GET("/listings/:id", handler.GetListing)
		v1.GET("/catalog", handler.SearchCatalog)
		v1.GET("/catalog/:id", handler.GetCatalogEntry)
		v1.GET("/recycle/prices", handler.GetRecyclePrices)
		v1.POST("/recycle/preview", handler.PreviewRecycle)
		v1.GET("/transactions/recent", handler.RecentTransactions)
		v1.GET("/stats", handler.GetStats)

		// Actor endpoints (JWT, or API key acting on behalf of X-Actor-Id)
		actor := v1.Group("", middleware.Auth(authCfg), middleware.Actor(presence))
		{
			actor.POST("/listings", handler.CreateListing)
			actor.DELETE("/listings/:id", handler.Unlist)
			actor.PATCH("/listings/:id", handler.UpdateListingPrice)
			actor.POST("/listings/:id/purchase", handler.PurchaseListing)
			actor.POST("/purchases/batch", handler.PurchaseBatch)
			actor.POST("/catalog/:id/purchase", handler.PurchaseCatalog)
			actor.POST("/recycle", handler.Recycle)

			actor.GET("/me/account", handler.GetMyAccount)
			actor.GET("/me/listings", handler.GetMyListings)
			actor.GET("/me/history", handler.GetMyHistory)

			// Administrative endpoints, privileges are checked by the engine
			admin := actor.Group("/admin")
			{
				admin.POST("/catalog", handler.CreateCatalogEntry)
				admin.PATCH("/catalog/:id", handler.UpdateCatalogEntry)
				admin.POST("/catalog/:id/toggle", handler.ToggleCatalogEntry)
				admin.DELETE("/catalog/:id", handler.RemoveCatalogEntry)
				admin.PUT("/balances/:id", handler.SetBalance)
				admin.PUT("/recycle/prices/:item_type", handler.SetRecyclePrice)
				admin.DELETE("/recycle/prices/:item_type", handler.RemoveRecyclePrice)
				admin.POST("/save", handler.SaveState)
				admin.POST("/expire", handler.ExpireListings)
			}
		}

		// Host endpoints (requires API key authentication only)
		hostGroup := v1.Group("", middleware.APIKeyAuth(authCfg))
		{
			hostGroup.PUT("/actors/:id/presence", handler.SetPresence)
			hostGroup.GET("/actors/present", handler.ListPresent)
			hostGroup.GET("/actors/:id/account", handler.GetAccount)
			hostGroup.GET("/transactions", handler.QueryTransactions)
		}
	}
}
