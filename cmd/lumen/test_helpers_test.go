package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outDir     string
	logDir     string
}

// setupCLITestEnv writes a self-contained config rooted in a temp dir so
// commands never touch the real home directory.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("LUMEN_QUALITY_CSV", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "lumen.toml"),
		outDir:     filepath.Join(base, "site"),
		logDir:     filepath.Join(base, "logs"),
	}
	body := fmt.Sprintf(`
[paths]
out_dir = %q
log_dir = %q

[logging]
format = "json"
level = "error"
`, env.outDir, env.logDir)
	if err := os.WriteFile(env.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()

	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd := newRootCommand()
	cmd.SetArgs(args)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}
