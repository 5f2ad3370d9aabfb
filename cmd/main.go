// Package main provides the entry point for the PoopDL resolver service.
// @title PoopDL Resolver API
// @version 1.1
// @description A Go-based microservice that resolves PoopHD share URLs into file metadata and direct download links.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/poopdl/poopdl/docs" // Import for swagger docs
	"github.com/poopdl/poopdl/internal/api/handlers"
	"github.com/poopdl/poopdl/internal/api/router"
	"github.com/poopdl/poopdl/internal/config"
	"github.com/poopdl/poopdl/internal/services/scraper"
	"github.com/poopdl/poopdl/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting PoopDL resolver service")

	// Initialize resolution services
	fileService := scraper.NewFileService(&cfg.Scraper)
	linkService := scraper.NewLinkService(&cfg.Scraper)

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler()
	fileHandler := handlers.NewFileHandler(fileService)
	linkHandler := handlers.NewLinkHandler(linkService)
	healthHandler := handlers.NewHealthHandler()

	// Initialize router
	r := router.NewRouter(cfg, indexHandler, fileHandler, linkHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutdown complete")
}
