package main

import (
	"fmt"
	"log"
	"os"

	"battery-scheduler/internal/api/handlers"
	"battery-scheduler/internal/api/middleware"
	"battery-scheduler/internal/profiles"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// The carbon intensity endpoint can be pointed at a mirror via env.
	carbonClient := profiles.NewCarbonClient(os.Getenv("CARBON_API_URL"))

	// Initialize handlers
	optimizeHandler := handlers.NewOptimizeHandler()
	potentialHandler := handlers.NewPotentialHandler()
	presetHandler := handlers.NewPresetHandler()
	carbonHandler := handlers.NewCarbonHandler(carbonClient)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/optimize", optimizeHandler.RunOptimize)
		api.POST("/potential", potentialHandler.AnalyzePotential)
		api.GET("/presets", presetHandler.ListPresets)
		api.GET("/carbon", carbonHandler.GetIntensity)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
