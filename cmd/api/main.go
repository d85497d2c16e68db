package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/team-dbase/dbase-ai/internal/config"
	"github.com/team-dbase/dbase-ai/internal/database"
	"github.com/team-dbase/dbase-ai/internal/extract"
	"github.com/team-dbase/dbase-ai/internal/handlers"
	"github.com/team-dbase/dbase-ai/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Generation Backend (optional)
	var generator services.Generator
	if cfg.ModelID != "" {
		generator, err = services.NewOllamaGenerator(cfg.ModelID)
		if err != nil {
			log.Printf("⚠️  Generation backend unavailable, AI analysis disabled: %v", err)
			generator = nil
		} else {
			log.Printf("✅ Generation backend ready (model %s)", cfg.ModelID)
		}
	} else {
		log.Println("⚠️  MODEL_ID not set, AI analysis disabled")
	}

	// 4. Core Services
	searchService := services.NewSearchService(cfg.SerperAPIKey, cfg.SerperURL)
	llmService := services.NewLLMService(generator)
	companyService := services.NewCompanyService(db)

	// 5. Handlers
	pdfHandler := handlers.NewPDFHandler(extract.NewPDFExtractor(), searchService, llmService, companyService, cfg.UploadDir)
	companyHandler := handlers.NewCompanyHandler(companyService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/process-pdf", pdfHandler.ProcessPDF)
		api.GET("/companies", companyHandler.ListCompanies)
		api.GET("/companies/:id", companyHandler.GetCompany)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
