package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"facilpay-api/config"
	"facilpay-api/database"
	"facilpay-api/logger"
	"facilpay-api/middleware"
	"facilpay-api/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	// Observability is a hard dependency: refuse to serve traffic without it.
	if err := logger.Init(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("Bootstrap")

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to the database", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		ErrorHandler: middleware.NewErrorHandler(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(cfg))

	routes.SetupRoutes(app, db, cfg)

	go func() {
		addr := cfg.AppHost + ":" + cfg.AppPort
		log.Info("Server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Application shutdown", zap.String("signal", sig.String()))
	if err := app.Shutdown(); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
