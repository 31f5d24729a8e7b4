package config

import "github.com/spf13/pflag"

var CliArgs = &CliConfig{}

type CliConfig struct {
	ConfigFile string
	Debug      bool
}

// BindFlags registers the global flags on fs and stores their values in CliArgs.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&CliArgs.ConfigFile, "config", "", "Path to the config file")
	fs.BoolVarP(&CliArgs.Debug, "debug", "d", false, "Enable debug mode")
}
