package config

// DatabaseConfig holds the study store configuration
type DatabaseConfig struct {
	Type   string       `mapstructure:"type"   yaml:"type"`
	SQLite SQLiteConfig `mapstructure:"sqlite" yaml:"sqlite"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path     string `mapstructure:"path"      yaml:"path"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}
