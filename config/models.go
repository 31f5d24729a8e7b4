package config

import "querylambda/inference"

// Config holds the application configuration.
type Config struct {
	EndpointName  string               `mapstructure:"endpoint_name"`
	Region        string               `mapstructure:"region"`
	ListenAddress string               `mapstructure:"listen_address"`
	LogLevel      string               `mapstructure:"log_level"`
	LogFormat     string               `mapstructure:"log_format"`
	Parameters    inference.Parameters `mapstructure:"parameters"`
}

// JSONLogs reports whether log output should be JSON.
func (c *Config) JSONLogs() bool {
	return c.LogFormat != "text"
}
