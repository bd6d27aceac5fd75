package config

import (
	"errors"
	"reflect"
	"strings"

	"sl10n/core/database"
	"sl10n/core/loader"
	"sl10n/core/logger"
	"sl10n/core/storage"
	"sl10n/feature/export"
	"sl10n/feature/watch"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional config file (sl10n.yaml, .json or .toml).
const FileName = "sl10n"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Locale holds the translation directory and schema settings.
	Locale loader.Config `mapstructure:"locale"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the object storage export target.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database export target.
	Database database.Config `mapstructure:"database"`
	// Export holds configuration for the export command.
	Export export.Config `mapstructure:"export"`
	// Watch holds configuration for the watch command.
	Watch watch.Config `mapstructure:"watch"`
}

// LoadConfig loads configuration from the optional config file in path, the .env
// file and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. LOCALE_DEFAULT_LANG -> locale.default_lang)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
