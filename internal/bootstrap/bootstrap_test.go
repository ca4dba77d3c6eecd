package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyfilter/internal/buildinfo"
	"github.com/chmouel/lazyfilter/internal/config"
	"github.com/chmouel/lazyfilter/internal/theme"
)

func newTestRunner(t *testing.T) (*runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &runner{stdout: stdout, stderr: stderr}, stdout, stderr
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	return dir
}

func TestGlobalFlags(t *testing.T) {
	cmd := &urfavecli.Command{Flags: globalFlags()}

	expectedFlags := []string{"load", "output", "debug-log", "theme", "list-themes", "config-file", "config"}
	for _, name := range expectedFlags {
		found := false
		for _, flag := range cmd.Flags {
			for _, n := range flag.Names() {
				if n == name {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("expected flag %q to be defined", name)
		}
	}
}

func TestPrintThemes(t *testing.T) {
	var out bytes.Buffer
	printThemes(&out)

	if !strings.HasPrefix(out.String(), "Available themes:") {
		t.Fatalf("expected header to be printed, got %q", out.String())
	}
	for _, name := range theme.AvailableThemes() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("expected theme %q in output", name)
		}
	}
}

func TestWriteRulesToFallback(t *testing.T) {
	var out bytes.Buffer
	if err := writeRules("", &out, []string{"+ /a", "- *"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "+ /a\n- *\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestWriteRulesToFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "subdir1", "subdir2", "rules.txt")

	var fallback bytes.Buffer
	if err := writeRules(outputPath, &fallback, []string{"+ /d/", "+ /d/b", "- *"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.Len() != 0 {
		t.Fatalf("expected nothing on the fallback writer, got %q", fallback.String())
	}

	// #nosec G304 - test file operations with t.TempDir() are safe
	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != "+ /d/\n+ /d/b\n- *\n" {
		t.Fatalf("unexpected content %q", string(content))
	}
}

func TestApplyThemeConfig(t *testing.T) {
	tests := []struct {
		name        string
		themeName   string
		expected    string
		expectError bool
	}{
		{name: "valid theme", themeName: "nord", expected: theme.NordName},
		{name: "valid theme uppercase", themeName: "DRACULA", expected: theme.DraculaName},
		{name: "invalid theme", themeName: "nonexistent-theme", expectError: true},
		{name: "empty theme keeps config", themeName: "", expected: theme.GruvboxDarkName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Theme = theme.GruvboxDarkName

			err := applyThemeConfig(cfg, tt.themeName)
			if tt.expectError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Theme != tt.expected {
				t.Errorf("expected theme %q, got %q", tt.expected, cfg.Theme)
			}
		})
	}
}

func TestApplyThemeConfigDetectsWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyThemeConfig(cfg, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme == "" {
		t.Error("expected a detected theme")
	}
}

func TestLoadCLIConfig(t *testing.T) {
	t.Run("load default config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		var stderr bytes.Buffer
		cfg, err := loadCLIConfig(&stderr, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg == nil {
			t.Fatal("expected config to be non-nil")
		}
		if stderr.Len() != 0 {
			t.Errorf("unexpected stderr output %q", stderr.String())
		}
	})

	t.Run("config outside the config dir falls back to defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		var stderr bytes.Buffer
		cfg, err := loadCLIConfig(&stderr, filepath.Join(t.TempDir(), "config.yaml"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.ShowIcons {
			t.Error("expected default config")
		}
		if !strings.Contains(stderr.String(), "Error loading config") {
			t.Errorf("expected a config error on stderr, got %q", stderr.String())
		}
	})

	t.Run("apply config overrides", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		var stderr bytes.Buffer
		cfg, err := loadCLIConfig(&stderr, "", []string{"lf.theme=dracula", "lf.show_sizes=false"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Theme != "dracula" {
			t.Errorf("expected theme to be dracula, got %q", cfg.Theme)
		}
		if cfg.ShowSizes {
			t.Error("expected show_sizes to be disabled")
		}
	})

	t.Run("invalid override", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		var stderr bytes.Buffer
		if _, err := loadCLIConfig(&stderr, "", []string{"lf.nope=1"}); err == nil {
			t.Fatal("expected error but got none")
		}
	})
}

func TestDumpCommand(t *testing.T) {
	r, stdout, _ := newTestRunner(t)
	root := writeTree(t, map[string]string{
		"a":       "aaaa",
		"d/b":     "bb",
		"d/c":     "c",
		"z/other": "z",
	})
	rulesFile := filepath.Join(t.TempDir(), "rules.txt")
	if err := os.WriteFile(rulesFile, []byte("+ /d/\n+ /d/b\n+ /missing\n- *\n"), 0o600); err != nil {
		t.Fatalf("failed to write rules: %v", err)
	}

	err := r.command().Run(context.Background(), []string{"lazyfilter", "--load", rulesFile, "dump", root})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "+ /d/\n+ /d/b\n- *\n" {
		t.Fatalf("unexpected rules %q", stdout.String())
	}
}

func TestDumpCommandWithoutLoad(t *testing.T) {
	r, stdout, _ := newTestRunner(t)
	root := writeTree(t, map[string]string{"a": "a"})

	if err := r.command().Run(context.Background(), []string{"lazyfilter", "dump", root}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "- *\n" {
		t.Fatalf("unexpected rules %q", stdout.String())
	}
}

func TestDumpCommandErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		r, _, _ := newTestRunner(t)
		err := r.command().Run(context.Background(), []string{"lazyfilter", "dump"})
		if !errors.Is(err, errMissingPath) {
			t.Fatalf("expected missing path error, got %v", err)
		}
	})

	t.Run("nonexistent path", func(t *testing.T) {
		r, _, _ := newTestRunner(t)
		missing := filepath.Join(t.TempDir(), "nope")
		if err := r.command().Run(context.Background(), []string{"lazyfilter", "dump", missing}); err == nil {
			t.Fatal("expected error but got none")
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		r, _, _ := newTestRunner(t)
		root := writeTree(t, map[string]string{"a": "a"})
		if err := r.command().Run(context.Background(), []string{"lazyfilter", "dump", filepath.Join(root, "a")}); err == nil {
			t.Fatal("expected error but got none")
		}
	})

	t.Run("unreadable load file", func(t *testing.T) {
		r, _, _ := newTestRunner(t)
		root := writeTree(t, map[string]string{"a": "a"})
		missing := filepath.Join(t.TempDir(), "rules.txt")
		if err := r.command().Run(context.Background(), []string{"lazyfilter", "--load", missing, "dump", root}); err == nil {
			t.Fatal("expected error but got none")
		}
	})
}

func TestListThemesFlag(t *testing.T) {
	r, stdout, _ := newTestRunner(t)

	if err := r.command().Run(context.Background(), []string{"lazyfilter", "--list-themes"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), theme.NordName) {
		t.Fatalf("expected theme list, got %q", stdout.String())
	}
}

func TestVersionFlag(t *testing.T) {
	r, stdout, _ := newTestRunner(t)
	buildinfo.Set("1.2.3", "abc123", "2026-01-01", "test")

	if err := r.command().Run(context.Background(), []string{"lazyfilter", "--version"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "lazyfilter version 1.2.3") {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
}
