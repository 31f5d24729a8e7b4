package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"querylambda/inference"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpointName, c.EndpointName)
	assert.Equal(t, "", c.Region)
	assert.Equal(t, "127.0.0.1:8080", c.ListenAddress)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.JSONLogs())
	assert.Equal(t, inference.DefaultParameters(), c.Parameters)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
endpoint_name: my-tgi
region: eu-west-1
log_format: text
parameters:
  temperature: 0.9
  max_new_tokens: 128
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-tgi", c.EndpointName)
	assert.Equal(t, "eu-west-1", c.Region)
	assert.False(t, c.JSONLogs())
	assert.Equal(t, 0.9, c.Parameters.Temperature)
	assert.Equal(t, 128, c.Parameters.MaxNewTokens)
	// Unset parameters keep their defaults.
	assert.Equal(t, 0.7, c.Parameters.TopP)
	assert.Equal(t, 1.03, c.Parameters.RepetitionPenalty)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, "config.toml", `endpoint_name = "toml-endpoint"`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml-endpoint", c.EndpointName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INFERENCE_ENDPOINT_NAME", "from-env")
	t.Setenv("INFERENCE_PARAMETERS_TOP_K", "10")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.EndpointName)
	assert.Equal(t, 10, c.Parameters.TopK)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty endpoint", `endpoint_name: ""`, "endpoint_name is required"},
		{"bad level", `log_level: loud`, "not a valid logrus Level"},
		{"bad format", `log_format: xml`, "unknown log_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--config", "/tmp/c.yaml", "-d"}))
	assert.Equal(t, "/tmp/c.yaml", CliArgs.ConfigFile)
	assert.True(t, CliArgs.Debug)
}

func TestLoadConfig_OnceAndGet(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Same(t, c, GetConfig())

	again, err := LoadConfig("ignored-after-first-load.yaml")
	require.NoError(t, err)
	assert.Same(t, c, again)
}
