package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyfilter/internal/app"
	"github.com/chmouel/lazyfilter/internal/buildinfo"
	"github.com/chmouel/lazyfilter/internal/config"
	"github.com/chmouel/lazyfilter/internal/filter"
	"github.com/chmouel/lazyfilter/internal/log"
	"github.com/chmouel/lazyfilter/internal/theme"
	"github.com/chmouel/lazyfilter/internal/tree"
	"github.com/chmouel/lazyfilter/internal/utils"
)

const (
	defaultDirPerms  = 0o750
	defaultFilePerms = 0o600
)

var errMissingPath = errors.New("missing PATH argument")

// runner carries the output streams of one invocation.
type runner struct {
	stdout io.Writer
	stderr io.Writer
}

// session is everything a browse or dump needs once startup succeeded.
type session struct {
	cfg  *config.AppConfig
	root *tree.Node
}

// Run parses args (including the program name) and executes the selected
// command.
func Run(ctx context.Context, args []string) error {
	r := &runner{stdout: os.Stdout, stderr: os.Stderr}
	defer func() { _ = log.Close() }()
	return r.command().Run(ctx, args)
}

func (r *runner) command() *urfavecli.Command {
	urfavecli.VersionPrinter = func(cmd *urfavecli.Command) {
		_, _ = fmt.Fprint(cmd.Root().Writer, buildinfo.Summary("lazyfilter"))
	}

	return &urfavecli.Command{
		Name:                  "lazyfilter",
		Usage:                 "Pick files and directories interactively and print rsync filter rules",
		ArgsUsage:             "PATH",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Writer:                r.stdout,
		ErrWriter:             r.stderr,
		Flags:                 globalFlags(),
		Commands: []*urfavecli.Command{
			r.dumpCommand(),
		},
		Action: r.runTUI,
	}
}

// runTUI is the default action that launches the browser when no subcommand
// is given.
func (r *runner) runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.Bool("list-themes") {
		printThemes(r.stdout)
		return nil
	}

	sess, err := r.prepare(cmd)
	if err != nil {
		return err
	}

	model := app.NewModel(sess.cfg, sess.root)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	if !model.Exported() {
		return nil
	}
	return writeRules(cmd.String("output"), r.stderr, model.Rules())
}

// prepare sets up logging and configuration, then builds and seeds the tree
// rooted at the PATH argument.
func (r *runner) prepare(cmd *urfavecli.Command) (*session, error) {
	debugLog := cmd.String("debug-log")
	if debugLog != "" {
		r.setLogFile(debugLog)
	}

	cfg, err := loadCLIConfig(r.stderr, cmd.String("config-file"), cmd.StringSlice("config"))
	if err != nil {
		return nil, err
	}
	if debugLog == "" {
		// no flag: the config decides, and an empty value drops buffered output
		r.setLogFile(cfg.DebugLog)
	}
	if err := applyThemeConfig(cfg, cmd.String("theme")); err != nil {
		return nil, err
	}

	root, err := buildTree(cmd.Args().First())
	if err != nil {
		return nil, err
	}

	if load := cmd.String("load"); load != "" {
		expanded, err := utils.ExpandPath(load)
		if err != nil {
			return nil, fmt.Errorf("error expanding load path: %w", err)
		}
		if _, _, err := filter.LoadFile(expanded, root); err != nil {
			return nil, err
		}
	}

	return &session{cfg: cfg, root: root}, nil
}

func (r *runner) setLogFile(path string) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		_, _ = fmt.Fprintf(r.stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

// loadCLIConfig loads the configuration file and applies command line
// overrides on top of it. A broken config file falls back to the defaults.
func loadCLIConfig(stderr io.Writer, configFile string, overrides []string) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}
	return cfg, nil
}

// applyThemeConfig applies the --theme flag, falling back to the terminal
// background when neither the flag nor the config names a theme.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName != "" {
		normalized := config.NormalizeThemeName(themeName)
		if normalized == "" {
			return fmt.Errorf("unknown theme %q", themeName)
		}
		cfg.Theme = normalized
	}
	cfg.ResolveTheme()
	return nil
}

func buildTree(path string) (*tree.Node, error) {
	if path == "" {
		return nil, errMissingPath
	}
	expanded, err := utils.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("error expanding path: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}
	root, err := tree.Build(os.DirFS(abs), abs)
	if err != nil {
		return nil, err
	}
	log.Printf("tree: built %s with %d entries", abs, tree.Count(root))
	return root, nil
}

// writeRules prints rules to fallback, or to path when one is given.
func writeRules(path string, fallback io.Writer, rules []string) error {
	if path == "" {
		return filter.Write(fallback, rules)
	}

	expanded, err := utils.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("error expanding output path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), defaultDirPerms); err != nil {
		return fmt.Errorf("error creating output dir: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFilePerms) //nolint:gosec
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	if err := filter.Write(f, rules); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing output: %w", err)
	}
	return f.Close()
}

func printThemes(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Available themes:")
	for _, name := range theme.AvailableThemes() {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}
}
