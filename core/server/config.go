package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the request body size, which bounds CSV uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"10"`
	// MaxConcurrentUploads is the number of uploads processed in parallel.
	MaxConcurrentUploads int `mapstructure:"max_concurrent_uploads" default:"5"`
	// UploadWaitSeconds is how long an upload waits for a free slot before being rejected.
	UploadWaitSeconds int `mapstructure:"upload_wait_seconds" default:"30"`
	// Environment is the deployment environment (development, production).
	Environment string `mapstructure:"environment" default:"production"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultBodyLimitMB = 10
)

// IsDevelopment reports whether the server runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// BodyLimitBytes returns the body limit in bytes, falling back to 10MB.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
