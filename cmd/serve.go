package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/config"
	"github.com/raflytch/skillorbit-server/internal/handler"
	"github.com/raflytch/skillorbit-server/internal/middleware"
	"github.com/raflytch/skillorbit-server/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := config.Load()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c := catalog.Default()
	deps, err := buildDependencies(ctx, cfg, c)
	if err != nil {
		return err
	}
	defer deps.Close()

	app := fiber.New(fiber.Config{
		AppName:      "SkillOrbit API",
		ErrorHandler: customErrorHandler,
		BodyLimit:    (cfg.Upload.MaxSizeMB + 1) * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, OPTIONS",
		AllowCredentials: false,
	}))

	routes.Setup(app, routes.Handlers{
		Analysis:  handler.NewAnalysisHandler(deps.Analysis, cfg.Upload.MaxSizeMB),
		Interview: handler.NewInterviewHandler(deps.Interview),
		Progress:  handler.NewProgressHandler(deps.Progress, deps.Report),
		Chat:      handler.NewChatHandler(deps.Chat),
		Catalog:   handler.NewCatalogHandler(c),
	}, routes.Middlewares{
		User: middleware.NewUserMiddleware(),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	port := cfg.App.Port
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
		return err
	}
	return nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
