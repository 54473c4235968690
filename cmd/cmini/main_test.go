package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runDriver(args ...string) (int, string, string) {
	stdout := &strings.Builder{}
	stderr := &strings.Builder{}
	code := run(args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	code, out, errOut := runDriver("testdata/fac.c", "5")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "120 ", out)

	code, out, errOut = runDriver("testdata/lists.c")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "2 3 hi\n", out)
}

func TestRunErrors(t *testing.T) {
	code, out, errOut := runDriver("testdata/divzero.c")
	require.Equal(t, 1, code)
	require.Equal(t, "1 ", out)
	require.Contains(t, errOut, "Runtime Error on line 3")
	require.Contains(t, errOut, "Division by zero: /")

	code, _, errOut = runDriver("testdata/fac.c", "five")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "argument 1")

	code, _, _ = runDriver()
	require.Equal(t, 2, code)

	code, _, _ = runDriver("testdata/missing.c")
	require.Equal(t, 1, code)

	// main takes one argument
	code, _, errOut = runDriver("testdata/fac.c")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Invalid number of arguments")

	src := filepath.Join(t.TempDir(), "bad.c")
	require.NoError(t, os.WriteFile(src, []byte("int x\nvoid main() {}\n"), 0o644))
	code, _, errOut = runDriver(src)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Error on line 2")
}

func TestModes(t *testing.T) {
	code, out, _ := runDriver("-ast", "testdata/fac.c")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "(fn void fac ((int n) (int* r))"), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "(fn void main ((int i))"), lines[1])

	code, out, _ = runDriver("-tokens", "testdata/fac.c")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out, "2 void void\n2 IDENTIFIER fac\n"), out)

	code, _, errOut := runDriver("-dump", "testdata/fac.c", "5")
	require.Equal(t, 0, code)
	require.Contains(t, errOut, "0: 5\n1: 120\n")

	code, _, errOut = runDriver("-trace", "testdata/fac.c", "2")
	require.Equal(t, 0, code)
	require.Equal(t, 3, strings.Count(errOut, "fn=fac frame="), errOut)
	require.Contains(t, errOut, "msg=run")
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cmini.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("separator: \";\"\ncolor: false\n"), 0o644))

	code, out, errOut := runDriver("-config", cfg, "testdata/fac.c", "4")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "24;", out)

	require.NoError(t, os.WriteFile(cfg, []byte("max_store: 3\n"), 0o644))
	code, _, errOut = runDriver("-config", cfg, "testdata/fac.c", "4")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Store exhausted")

	require.NoError(t, os.WriteFile(cfg, []byte("colour: false\n"), 0o644))
	code, _, _ = runDriver("-config", cfg, "testdata/fac.c", "4")
	require.Equal(t, 1, code)
}
