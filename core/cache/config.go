package cache

// Config holds configuration for the Redis report cache.
type Config struct {
	// Enabled turns on report caching. When false a no-op cache is used.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Addr is the Redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database index.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is how long a cached report lives.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
	// Prefix namespaces every key written by this service.
	Prefix string `mapstructure:"prefix" default:"inventory"`
}
