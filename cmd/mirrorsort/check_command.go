package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"mirrorsort/internal/preflight"
)

var errPreflightFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "check [source] [destination]",
		Short: "Verify the source and destination folders without moving anything",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, destination, err := resolveRoots(cmd, ctx, cfg, args, opts)
			if err != nil {
				return err
			}

			results := preflight.RunAll(source, destination)
			color := isTerminalWriter(cmd.OutOrStdout())
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := colorize("ok", text.FgGreen, color)
				if !r.Passed {
					status = colorize("fail", text.FgRed, color)
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))

			if _, failed := preflight.FirstFailure(results); failed {
				return errPreflightFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "Source folder to check")
	cmd.Flags().StringVar(&opts.destination, "destination", "", "Destination folder to check")
	return cmd
}
