package config

// ServerConfig holds the local HTTP API configuration used by the serve
// command. The API only ever binds for a GUI running on the same machine.
type ServerConfig struct {
	Listen      string `mapstructure:"listen"       yaml:"listen"`
	CorsOrigins string `mapstructure:"cors_origins" yaml:"cors_origins"`
}
