// Package database handles the MySQL connection used by the database export target.
//
// It provides a wrapper around GORM to configure MySQL connections (pool, timeouts,
// URL-encoded credentials) from the application's configuration, plus a small schema
// inspector used to verify the export table after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "locale_strings", "lang_code", "msg_key")
package database
