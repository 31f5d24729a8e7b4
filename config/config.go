package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"querylambda/inference"
)

// DefaultEndpointName is the SageMaker endpoint prompts go to when nothing
// else is configured.
const DefaultEndpointName = "huggingface-pytorch-tgi-inference-0000-00-00-00-00-00-000"

const envPrefix = "INFERENCE"

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// Load builds a Config from defaults, an optional config file and
// INFERENCE_* environment variables, in increasing order of precedence.
// The file type is taken from its extension.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("config: error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.EndpointName == "" {
		return nil, errors.New("config: endpoint_name is required")
	}
	if _, err := logrus.ParseLevel(configuration.LogLevel); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch configuration.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("config: unknown log_format %q", configuration.LogFormat)
	}

	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	params := inference.DefaultParameters()

	v.SetDefault("endpoint_name", DefaultEndpointName)
	v.SetDefault("region", "")
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("parameters.do_sample", params.DoSample)
	v.SetDefault("parameters.top_p", params.TopP)
	v.SetDefault("parameters.top_k", params.TopK)
	v.SetDefault("parameters.temperature", params.Temperature)
	v.SetDefault("parameters.max_new_tokens", params.MaxNewTokens)
	v.SetDefault("parameters.repetition_penalty", params.RepetitionPenalty)
}

// LoadConfig reads the config file, parses it, and initializes the global cfg variable.
// It ensures that the configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = Load(configFile)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("config: configuration was not set")
	}

	return cfg, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
