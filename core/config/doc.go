// Package config provides configuration management for sl10n.
//
// It utilizes Viper for loading configuration from an optional sl10n.yaml (or .json,
// .toml) file, a .env file and environment variables. Defaults come from the
// `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Locale: translation directory, default language, format, schema fields, strict mode
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket for exports
//   - Database: MySQL connection details for exports
//   - Export: object prefix and enabled targets
//   - Watch: debounce and quiet periods
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Locale.DefaultLang)
package config
