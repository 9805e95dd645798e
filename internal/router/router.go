package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/k-weng/houston-restaurant-week-2023/internal/middleware"
	"github.com/k-weng/houston-restaurant-week-2023/internal/page"
)

func NewRouter(handler *page.Handler, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
	)
	r.SetHTMLTemplate(page.Templates())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/", handler.Index)

	corsConfig := cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	// read-only public data; no origins configured means any origin
	if len(allowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}

	api := r.Group("/api")
	api.Use(cors.New(corsConfig))
	{
		api.GET("/restaurants", handler.ListRestaurants)
		api.GET("/restaurants/:id", handler.GetRestaurant)
		api.GET("/facets", handler.Facets)
	}

	return r
}
