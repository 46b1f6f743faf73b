package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/countrylist/internal/cli"
	"github.com/rshade/countrylist/internal/config"
)

// setupCLITest isolates the config home and quiets logging.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvAddr, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmdWithTerminal("test", false)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInit_CreatesDefaultFile(t *testing.T) {
	home := setupCLITest(t)

	output, err := execute(t, "config", "init")
	require.NoError(t, err)

	configPath := filepath.Join(home, "config.yaml")
	assert.Contains(t, output, "Configuration initialized at "+configPath)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var saved config.Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, config.Default().Source, saved.Source)
	assert.Equal(t, config.DefaultAddr, saved.Server.Addr)
}

func TestConfigInit_ExistingFileRequiresForce(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  addr: :1234\n"), 0o600))

	_, err := execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use --force to overwrite")

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), ":8080")
}

func TestConfigShow_ReflectsOverrides(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("server:\n  addr: :7000\n"), 0o600))

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: ndjson\n"), 0o600))

	output, err := execute(t, "config", "show", "--config", overlay, "--endpoint", "http://flag.test/all", "--timeout", "9")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(output), &shown))
	assert.Equal(t, ":7000", shown.Server.Addr)
	assert.Equal(t, config.OutputNDJSON, shown.Output.DefaultFormat)
	assert.Equal(t, "http://flag.test/all", shown.Source.Endpoint)
	assert.Equal(t, 9, shown.Source.TimeoutSeconds)
}

func TestRoot_RejectsInvalidConfig(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "config", "show", "--timeout", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout must be >= 0")
}

func TestConfig_InvalidFileCanBeRepaired(t *testing.T) {
	home := setupCLITest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  default_format: xml\n"), 0o600))

	output, err := execute(t, "config", "show")
	require.NoError(t, err)
	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(output), &shown))
	assert.Equal(t, config.OutputTable, shown.Output.DefaultFormat)

	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	var saved config.Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, config.OutputTable, saved.Output.DefaultFormat)
}
