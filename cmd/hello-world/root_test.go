package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-world/internal/config"
	"hello-world/internal/logger"
)

type capturedRun struct {
	cfg  *config.Config
	args []string
}

func stubRunner(t *testing.T, status int) *capturedRun {
	t.Helper()

	got := &capturedRun{}
	original := runner
	runner = func(cfg *config.Config, _ logger.Logger, args []string) int {
		got.cfg = cfg
		got.args = args
		return status
	}
	t.Cleanup(func() { runner = original })
	return got
}

func TestExecuteForwardsArgsAndStatus(t *testing.T) {
	got := stubRunner(t, 3)

	status := execute([]string{"one", "two"})

	assert.Equal(t, 3, status)
	assert.Equal(t, []string{"one", "two"}, got.args)
	require.NotNil(t, got.cfg)
	assert.Equal(t, config.Default(), *got.cfg)
}

func TestExecuteFlagsOverrideConfig(t *testing.T) {
	got := stubRunner(t, 0)

	status := execute([]string{"--icon", "custom.png", "--log-level", "debug", "--json-logs"})

	assert.Equal(t, 0, status)
	assert.Equal(t, "custom.png", got.cfg.Icon.Path)
	assert.Equal(t, "debug", got.cfg.Logging.Level)
	assert.True(t, got.cfg.Logging.JSON)
}

func TestExecuteBadLogLevel(t *testing.T) {
	got := stubRunner(t, 0)

	status := execute([]string{"--log-level", "loud"})

	assert.Equal(t, 1, status)
	assert.Nil(t, got.cfg)
}

func TestExecuteMissingConfigFile(t *testing.T) {
	stubRunner(t, 0)

	status := execute([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Equal(t, 1, status)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Custom\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCommand(config.NewViper(), new(int))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--config", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "title: Custom")
	assert.Contains(t, out.String(), "path: resources/icon.png")
}
