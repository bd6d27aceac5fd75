package export

// Config holds configuration for the export command.
type Config struct {
	// Prefix is the object key prefix in the bucket.
	Prefix string `mapstructure:"prefix" default:"locales"`
	// Targets lists the enabled sinks: storage, database.
	Targets []string `mapstructure:"targets" default:"storage"`
	// Prune removes objects of languages that are no longer loaded.
	Prune bool `mapstructure:"prune" default:"true"`
	// BatchSize is the number of rows per database insert.
	BatchSize int `mapstructure:"batch_size" default:"500"`
}
