package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AnTengye/contractdash/config"
	"github.com/AnTengye/contractdash/handler"
	"github.com/AnTengye/contractdash/middleware"
	"github.com/AnTengye/contractdash/service"
	"github.com/gin-gonic/gin"
)

// New wires the Gin engine with the middleware chain and the contract routes.
func New(cfg *config.Config, store *service.ContractStore) *gin.Engine {
	router := gin.New() // no default middleware; the chain below replaces it

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.NoCache())
	router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))

	router.GET(middleware.HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"contracts": store.Count(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	contracts := handler.NewContractHandler(store)

	api := router.Group("/api")
	{
		api.GET("/statuses", contracts.Statuses)
		api.GET("/contracts", contracts.List)
		api.POST("/contracts", contracts.Create)
		api.GET("/contracts/:id", contracts.Get)
		api.PUT("/contracts/:id", contracts.Update)
	}

	slog.Debug("router initialized", "routes", len(router.Routes()))
	return router
}
