package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/database"
	"go-invoice-maker/internal/handlers"
	"go-invoice-maker/internal/middleware"
	"go-invoice-maker/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	letterhead, err := config.LoadLetterhead(cfg.LetterheadFile)
	if err != nil {
		log.Fatal("Invalid letterhead: ", err)
	}

	// 2. Invoice store
	store, err := database.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to open invoice store: ", err)
	}
	defer store.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	// 3. Services and handlers
	invoiceService := services.NewInvoiceService(store, letterhead, cfg.UploadDir, cfg.StoreTimeout)
	draftService := services.NewDraftService(invoiceService, cfg.DraftIdleTimeout)
	if cfg.DraftIdleTimeout > 0 {
		go services.RunSweeper(context.Background(), draftService, time.Minute)
	}

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	documentHandler := handlers.NewDocumentHandler(invoiceService)
	draftHandler := handlers.NewDraftHandler(draftService)
	reportHandler := handlers.NewReportHandler(invoiceService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir, cfg.BaseURL)
	systemHandler := handlers.NewSystemHandler(cfg.DBDriver)

	// 4. Router
	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", systemHandler.Health)
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		api.POST("/invoices", invoiceHandler.CreateInvoice)
		api.GET("/invoices", invoiceHandler.ListInvoices)
		api.GET("/invoices/:id", invoiceHandler.GetInvoice)
		api.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)
		api.GET("/invoices/:id/document", documentHandler.GetDocument)

		api.POST("/drafts", draftHandler.CreateDraft)
		api.GET("/drafts/:id", draftHandler.GetDraft)
		api.PUT("/drafts/:id", draftHandler.UpdateDraft)
		api.DELETE("/drafts/:id", draftHandler.DiscardDraft)
		api.POST("/drafts/:id/items", draftHandler.AddItem)
		api.PATCH("/drafts/:id/items/:index", draftHandler.UpdateItem)
		api.DELETE("/drafts/:id/items/:index", draftHandler.RemoveItem)
		api.POST("/drafts/:id/submit", draftHandler.SubmitDraft)

		api.POST("/uploads", uploadHandler.UploadLogo)
		api.GET("/reports/summary", reportHandler.GetSummary)
	}

	log.Printf("Invoice store: %s, letterhead: %s", cfg.DBDriver, letterhead.CompanyName)
	log.Println("Server starting on " + cfg.BaseURL)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
