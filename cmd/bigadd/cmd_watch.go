package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/bigadd/internal/calc"
	"github.com/bft-labs/bigadd/internal/watch"
	"github.com/bft-labs/bigadd/pkg/log"
)

func (a *app) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the total of an operand file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a.serveMetrics(ctx)

			w := watch.New(watch.Config{
				Path:          args[0],
				DebounceDelay: a.cfg.DebounceDelay,
				OnResult: func(res calc.Result, err error) {
					if err != nil {
						// Already logged by the watcher; keep watching.
						return
					}
					if perr := a.print(res); perr != nil {
						a.logger.Error("write result", log.Err(perr))
					}
				},
			}, a.calc, a.logger)
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&a.cfg.DebounceDelay, "debounce", a.cfg.DebounceDelay, "quiet period after a change before recomputing")
	return cmd
}
