package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the storage driver (minio or s3).
	Driver string `mapstructure:"driver" default:"minio"`
	// Endpoint is the URL of the storage service. Empty means the driver's default.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket operations are bound to.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// ForcePathStyle forces path-style addressing for the s3 driver,
	// required by most self-hosted S3-compatible services.
	ForcePathStyle bool `mapstructure:"force_path_style" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// IsValidDriver checks if the configured driver is valid.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverMinio, DriverS3:
		return true
	default:
		return false
	}
}
