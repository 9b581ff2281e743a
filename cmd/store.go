package cmd

import (
	"context"
	"fmt"
	"os"

	"bucket-manager/core/config"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/objects"

	"go.uber.org/zap"
)

// loadRuntime loads the configuration and logger shared by all commands.
// Failures here happen before the logger exists, so they go to stdout.
func loadRuntime() (*config.Config, *zap.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	return cfg, logg
}

// newStore builds the object store for the configured driver, bound to the
// configured bucket.
func newStore(ctx context.Context, cfg *config.Config) (objects.ObjectStore, error) {
	if !cfg.Storage.IsValidDriver() {
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	switch cfg.Storage.Driver {
	case storage.DriverS3:
		api, err := storage.NewS3Client(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		return objects.NewS3Store(api, cfg.Storage.Bucket), nil
	default:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return objects.NewMinioStore(client, cfg.Storage.Bucket), nil
	}
}
