// Package config loads the lazyfilter configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chmouel/lazyfilter/internal/theme"
	"github.com/chmouel/lazyfilter/internal/utils"
	"gopkg.in/yaml.v3"
)

const (
	appName            = "lazyfilter"
	overridePrefix     = "lf."
	defaultRejectDelay = 700 * time.Millisecond
	defaultCommandKey  = ":"
)

// AppConfig holds the options that shape a browsing session.
type AppConfig struct {
	Theme          string
	DebugLog       string
	ShowIcons      bool
	ShowSizes      bool
	StartCollapsed bool          // every directory but the root starts collapsed
	RejectDelay    time.Duration // how long "Not a valid command." stays on screen
	CommandKey     string        // key switching to command entry
	Keys           map[string][]string
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ShowIcons:      true,
		ShowSizes:      true,
		StartCollapsed: true,
		RejectDelay:    defaultRejectDelay,
		CommandKey:     defaultCommandKey,
		Keys:           map[string][]string{},
	}
}

// normalizeKeyList accepts a single key or a YAML list of keys.
func normalizeKeyList(value any) []string {
	if value == nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		if v == " " {
			return []string{v}
		}
		keys := []string{}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				keys = append(keys, part)
			}
		}
		return keys
	case []any:
		keys := []string{}
		for _, item := range v {
			if item == nil {
				continue
			}
			text := fmt.Sprintf("%v", item)
			if text != " " {
				text = strings.TrimSpace(text)
			}
			if text != "" {
				keys = append(keys, text)
			}
		}
		return keys
	}
	return []string{}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// coerceDuration reads a Go duration string or a number of milliseconds.
func coerceDuration(value any, defaultVal time.Duration) time.Duration {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		if v >= 0 {
			return time.Duration(v) * time.Millisecond
		}
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if ms, err := strconv.Atoi(text); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		if d, err := time.ParseDuration(text); err == nil && d >= 0 {
			return d
		}
	}
	return defaultVal
}

// parseConfig applies the YAML keys in data on top of cfg.
func parseConfig(cfg *AppConfig, data map[string]any) {
	if debugLog, ok := data["debug_log"].(string); ok {
		if debugLog = strings.TrimSpace(debugLog); debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}

	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if commandKey, ok := data["command_key"].(string); ok {
		if commandKey = strings.TrimSpace(commandKey); commandKey != "" {
			cfg.CommandKey = commandKey
		}
	}

	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.ShowSizes = coerceBool(data["show_sizes"], cfg.ShowSizes)
	cfg.StartCollapsed = coerceBool(data["start_collapsed"], cfg.StartCollapsed)
	cfg.RejectDelay = coerceDuration(data["reject_delay"], cfg.RejectDelay)

	if keys, ok := data["keys"].(map[string]any); ok {
		for action, value := range keys {
			action = strings.ToLower(strings.TrimSpace(action))
			if action == "" {
				continue
			}
			if list := normalizeKeyList(value); len(list) > 0 {
				cfg.Keys[action] = list
			}
		}
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the configuration file. An empty configPath searches the
// default locations; a missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := filepath.Clean(filepath.Join(getConfigDir(), appName))

	var paths []string
	if configPath != "" {
		expanded, err := utils.ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		parseConfig(cfg, yamlData)
		break
	}

	return cfg, nil
}

// ApplyCLIOverrides applies "lf.key=value" overrides on top of the loaded
// configuration. Nested key bindings use "lf.keys.<action>=k1,k2".
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data := map[string]any{}
	keys := map[string]any{}

	for _, override := range overrides {
		name, value, ok := strings.Cut(override, "=")
		if !ok {
			return fmt.Errorf("invalid override %q: expected %skey=value", override, overridePrefix)
		}
		name = strings.TrimSpace(name)
		if !strings.HasPrefix(name, overridePrefix) {
			return fmt.Errorf("invalid override %q: key must start with %q", override, overridePrefix)
		}
		name = strings.TrimPrefix(name, overridePrefix)

		if action, isKey := strings.CutPrefix(name, "keys."); isKey {
			keys[action] = value
			continue
		}
		switch name {
		case "theme", "debug_log", "show_icons", "show_sizes", "start_collapsed", "reject_delay", "command_key":
			data[name] = value
		default:
			return fmt.Errorf("unknown config key %q", name)
		}
	}

	if themeName, ok := data["theme"].(string); ok && NormalizeThemeName(themeName) == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	if len(keys) > 0 {
		data["keys"] = keys
	}
	parseConfig(c, data)
	return nil
}

// ResolveTheme fills Theme from the terminal background when unset.
func (c *AppConfig) ResolveTheme() {
	if c.Theme == "" {
		c.Theme = theme.Detect()
	}
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
