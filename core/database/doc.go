// Package database manages the relational storage connection.
//
// It opens a GORM connection for the configured driver (MySQL in production,
// sqlite for local runs and tests), applies pool settings and verifies the
// connection with a ping. It also exposes schema inspection used by the health
// feature and the classification of connectivity failures.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
