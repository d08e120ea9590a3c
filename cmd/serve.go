package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-manager/core/loader"
	"inventory-manager/core/logger"
	"inventory-manager/core/metrics"
	"inventory-manager/core/middleware/auth"
	"inventory-manager/core/middleware/limiter"
	"inventory-manager/core/middleware/rayid"
	"inventory-manager/feature/catalog/models"
	"inventory-manager/feature/health"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-manager/docs/swagger"
)

var autoMigrate bool

// @title Inventory Manager API
// @version 1.0
// @description API for ingesting bookstore inventory and reporting on stores.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start"},
	Short:   "Start the inventory HTTP server",
	Long:    `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		d, err := loadDeps()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer d.close()
		zap.ReplaceGlobals(d.log)
		logg := d.log

		// 2. Connect to Database (Optional; health still answers without it)
		if err := d.connectDatabase(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			logg.Info("Connected to database", zap.String("driver", d.cfg.Database.Driver))
			if autoMigrate || d.cfg.Server.IsDevelopment() {
				if err := models.Migrate(d.db); err != nil {
					logg.Fatal("Failed to migrate schema", zap.Error(err))
				}
			}
		}

		// 3. Object storage, cache and events
		if err := d.connectArchiver(cmd.Context()); err != nil {
			logg.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		d.connectSideEffects()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             d.cfg.Server.BodyLimitBytes(),
		})

		// 5. Register Features
		uploads := limiter.New(
			d.cfg.Server.MaxConcurrentUploads,
			time.Duration(d.cfg.Server.UploadWaitSeconds)*time.Second,
		)
		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(d.db, d.archiver, logg))
		mgr.Register(inventory.NewFeature(d.db, logg, d.archiver, d.cache, d.publisher, uploads))
		mgr.Register(store.NewFeature(d.db, logg, d.cfg.Report.TopN, d.cache, d.archiver))

		// Middleware Registration
		// RayID first so every log line carries it.
		app.Use(rayid.New())
		app.Use(metrics.Middleware())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		app.Use(auth.New(auth.Config{
			ApiKey: d.cfg.Server.ApiKey,
			Skip:   []string{"/health", "/health/schema", "/health/storage"},
		}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", d.cfg.Server.Port))
			if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply the schema before serving (always on in development)")
	RootCmd.AddCommand(serveCmd)
}
