package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty config should be the default (-want +got):\n%s", diff)
	}

	cfg, err = ParseConfig(strings.NewReader("log_level: debug\nmax_store: 100\ncolor: false\n"))
	require.NoError(t, err)
	want := &Config{LogLevel: "debug", Color: false, MaxStore: 100, Separator: " "}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseConfig(strings.NewReader("verbose: true\n"))
	require.Error(t, err)

	_, err = ParseConfig(strings.NewReader("log_level: loud\n"))
	require.ErrorContains(t, err, "log_level")

	_, err = ParseConfig(strings.NewReader("max_store: -1\n"))
	require.ErrorContains(t, err, "max_store")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmini.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \",\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ",", cfg.Separator)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigEmptySeparator(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("separator: \"\"\n"))
	require.NoError(t, err)
	require.Equal(t, "", cfg.Separator)

	printed := &strings.Builder{}
	_, err = RunSource(`void main() { printi(1); printi(2); }`, nil, cfg.Options(printed, nil))
	require.NoError(t, err)
	require.Equal(t, "12", printed.String())
}

func TestConfigLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Color = false

	out := &strings.Builder{}
	logger, err := cfg.NewLogger(out)
	require.NoError(t, err)
	require.True(t, logger.IsLevelEnabled(logrus.DebugLevel))

	printed := &strings.Builder{}
	_, err = RunSource(`int x; void main() { printi(1); }`, nil, cfg.Options(printed, logger))
	require.NoError(t, err)
	require.Equal(t, "1 ", printed.String())
	require.Contains(t, out.String(), "msg=allocate")
	require.Contains(t, out.String(), "msg=call")
	require.Contains(t, out.String(), "fn=main")
}
