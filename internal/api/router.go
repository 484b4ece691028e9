// Package api exposes the diet log over HTTP.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vladimiradmaev/dietlog/internal/config"
	"github.com/vladimiradmaev/dietlog/internal/interfaces"
)

type Router struct {
	engine   *gin.Engine
	services interfaces.Services
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(services interfaces.Services, cfg config.HTTPConfig) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:   gin.New(),
		services: services,
	}
	r.engine.Use(gin.Recovery(), requestLogger())
	r.engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.routes()
	return r
}

// Handler returns the router as a plain http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return c
}

func (r *Router) routes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		api.POST("/auth/register", r.register)
		api.POST("/auth/login", r.login)
	}

	authed := api.Group("")
	authed.Use(r.authRequired())
	{
		authed.GET("/profile", r.getProfile)
		authed.PUT("/profile", r.updateProfile)

		authed.GET("/foods", r.searchFoods)
		authed.POST("/foods/custom", r.createCustomFood)

		authed.POST("/food-logs", r.createFoodLog)
		authed.GET("/food-logs", r.listFoodLogs)
		authed.GET("/food-logs/recent-foods", r.recentFoods)
		authed.DELETE("/food-logs/:id", r.deleteFoodLog)

		authed.POST("/weight-logs", r.createWeightLog)
		authed.GET("/weight-logs", r.listWeightLogs)
		authed.DELETE("/weight-logs/:id", r.deleteWeightLog)

		authed.POST("/water-logs", r.addWater)
		authed.GET("/water-logs", r.getWater)
		authed.DELETE("/water-logs/last", r.undoWater)

		authed.GET("/dashboard", r.getDashboard)
		authed.GET("/stats/weekly", r.getWeeklyStats)
	}
}
