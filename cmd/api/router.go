package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "investadmin/internal/docs" // Import swagger docs
	"investadmin/internal/handlers"
	"investadmin/internal/middleware"
)

// newRouter builds the Gin engine with middleware, docs, health and the admin routes.
func newRouter(investmentHandler *handlers.InvestmentHandler, reportHandler *handlers.ReportHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(router, investmentHandler, reportHandler)

	return router
}
