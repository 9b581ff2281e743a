package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"bucket-manager/core/loader"
	"bucket-manager/core/logger"
	"bucket-manager/core/middleware/auth"
	"bucket-manager/core/middleware/rayid"
	"bucket-manager/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bucket manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration + Logger
		cfg, logg := loadRuntime()
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Storage
		store, err := newStore(cmd.Context(), cfg)
		if err != nil {
			logg.Fatal("Failed to create object store", zap.Error(err))
		}

		// The server stays up either way, but a missing bucket means every
		// object request will 404 until someone runs `bucket create`.
		if !store.HasBucket(cmd.Context()) {
			logg.Warn("Configured bucket does not exist or is unreachable",
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("driver", cfg.Storage.Driver),
			)
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(objects.NewFeature(store, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("bucket", cfg.Storage.Bucket),
				zap.String("driver", cfg.Storage.Driver),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
