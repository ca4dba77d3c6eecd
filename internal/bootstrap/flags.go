// Package bootstrap wires the lazyfilter command line to the browser.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

const overrideUsage = "Override config values (repeatable): --config=lf.key=value"

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "load",
			Aliases: []string{"l"},
			Usage:   "Pre-select the entries listed in a filter file",
		},
		&urfavecli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write exported filter rules to a file instead of stderr",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available themes and exit",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   overrideUsage,
		},
	}
}
