// Package config provides configuration management for the bucket manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: storage driver selection plus S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// Defaults come from `default` struct tags; environment variables map onto
// nested keys by replacing dots with underscores (STORAGE_BUCKET -> storage.bucket).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
