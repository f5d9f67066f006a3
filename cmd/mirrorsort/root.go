package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext())
}

func newRootCommandWithContext(ctx *commandContext) *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "mirrorsort [source] [destination]",
		Short: "Mirror a folder tree and sort matching files into it",
		Long: "mirrorsort recreates the directory tree of a source folder inside a destination folder,\n" +
			"then moves every destination file whose name (without extension) matches a source file\n" +
			"into the mirrored counterpart of that source file's folder.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMirror(cmd, ctx, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.source, "source", "", "Source folder whose tree is mirrored")
	flags.StringVar(&opts.destination, "destination", "", "Destination folder that receives the mirrored tree")
	flags.BoolVar(&opts.caseInsensitive, "case-insensitive", false, "Match base names ignoring case")
	flags.BoolVar(&opts.skipFailed, "skip-failed", false, "Log failed moves and keep going instead of aborting")
	flags.BoolVar(&opts.summary, "summary", false, "Print a summary table when the run finishes")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))

	return rootCmd
}
