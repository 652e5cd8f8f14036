package config

type Config struct {
	Database   DatabaseConfig  `mapstructure:"database"`
	Transfers  TransfersConfig `mapstructure:"transfers"`
	Payments   PaymentsConfig  `mapstructure:"payments"`
	Log        LogConfig       `mapstructure:"log"`
	ConfigPath string          `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type TransfersConfig struct {
	Strict bool `mapstructure:"strict"`
}

type PaymentsConfig struct {
	// Commission is a percentage kept as a string so it survives YAML
	// without float rounding.
	Commission      string `mapstructure:"commission"`
	SourceType      int    `mapstructure:"source_type"`
	DestinationType int    `mapstructure:"destination_type"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Database:  DatabaseConfig{Path: ""},
		Transfers: TransfersConfig{Strict: false},
		Payments:  PaymentsConfig{Commission: "0"},
		Log:       LogConfig{Level: "warn", Format: "text"},
	}
}
