// Package config provides configuration management for the inventory manager.
//
// Values come from environment variables, optionally seeded from a .env file.
// Defaults are declared with `default` struct tags on each section and
// registered with Viper by reflection, so every key can be overridden through
// its upper-cased environment name (database.host -> DATABASE_HOST).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, upload limits
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO archive settings
//   - Cache: Redis report cache
//   - Events: RabbitMQ ingestion events
//   - Log: level and format
//   - Report: ranking size
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
