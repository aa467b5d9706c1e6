package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"list-control/core/config"
	"list-control/core/database"
	"list-control/core/loader"
	"list-control/core/logger"
	"list-control/core/middleware/auth"
	"list-control/core/middleware/rayid"
	"list-control/core/storage"

	"list-control/feature/checklist"
	"list-control/feature/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "list-control/docs/swagger"
)

// @title List Control API
// @version 1.0
// @description API for checklist verification and session sharing.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the list control server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the local cache database (optional)
		var cache session.Cache = session.NewMemoryCache()
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, session cache is in-memory", zap.Error(err))
		} else if dbCache, err := session.NewDBCache(db); err != nil {
			logg.Warn("Session cache migration failed, session cache is in-memory", zap.Error(err))
		} else {
			cache = dbCache
			logg.Info("Connected to local cache database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		remote := session.NewObjectStore(store, cfg.Storage.Bucket)
		{
			// Best effort: a missing bucket or unreachable store degrades to
			// local-only sharing, it must not block startup.
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := remote.EnsureBucket(ctx); err != nil {
				logg.Warn("Remote session store unavailable, sharing is local-only", zap.Error(err))
			}
			cancel()
		}

		// 6. Build Services
		state := checklist.NewStore()
		checklistSvc := checklist.NewService(state, cfg.Server.CodePrefix, logg)
		sessionSvc := session.NewService(state, remote, cache, logg, cfg.Session)
		checklistSvc.SetListener(sessionSvc)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(checklist.NewFeature(checklistSvc))
		mgr.Register(session.NewFeature(sessionSvc, cfg.Session.Enabled))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects the API. Share links and QR scans must work without
		// a key, so /join stays public.
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/join" || strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
