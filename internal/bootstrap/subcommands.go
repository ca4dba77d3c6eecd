package bootstrap

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/chmouel/lazyfilter/internal/filter"
)

// dumpCommand prints the rules of the seeded selection without starting the
// browser.
func (r *runner) dumpCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "dump",
		Usage:     "Print the filter rules for PATH (seeded with --load) and exit",
		ArgsUsage: "PATH",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			sess, err := r.prepare(cmd)
			if err != nil {
				return err
			}
			if err := filter.Write(r.stdout, filter.Rules(sess.root)); err != nil {
				return fmt.Errorf("write rules: %w", err)
			}
			return nil
		},
	}
}
