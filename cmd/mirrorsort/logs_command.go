package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mirrorsort/internal/logging"
	"mirrorsort/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var list bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the most recent run log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if list {
				runs, err := logs.List(cfg.Paths.LogDir, logging.RunLogPattern)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintf(out, "No run logs in %s\n", cfg.Paths.LogDir)
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.Modified.Format("2006-01-02 15:04:05"),
						strconv.FormatInt(run.Size, 10),
						run.Path,
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Modified", "Bytes", "Path"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
				return nil
			}

			latest, err := logs.Latest(cfg.Paths.LogDir, logging.RunLogPattern)
			if err != nil {
				return err
			}
			tail, err := logs.TailLines(latest.Path, lines)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "==> %s <==\n", latest.Path)
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show (0 for all)")
	cmd.Flags().BoolVar(&list, "list", false, "List run logs instead of printing the latest")
	return cmd
}
