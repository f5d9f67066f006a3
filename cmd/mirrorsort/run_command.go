package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mirrorsort/internal/config"
	"mirrorsort/internal/logging"
	"mirrorsort/internal/mirror"
	"mirrorsort/internal/preflight"
	"mirrorsort/internal/runlock"
)

type runOptions struct {
	source          string
	destination     string
	caseInsensitive bool
	skipFailed      bool
	summary         bool
}

func runMirror(cmd *cobra.Command, ctx *commandContext, args []string, opts runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	source, destination, err := resolveRoots(cmd, ctx, cfg, args, opts)
	if err != nil {
		return err
	}

	if failed, ok := preflight.FirstFailure(preflight.RunAll(source, destination)); ok {
		marker := mirror.ErrDestination
		if failed.Name == preflight.SourceCheckName {
			marker = mirror.ErrSource
		}
		return mirror.Wrap(marker, "preflight", failed.Detail, nil)
	}

	lock, err := runlock.Acquire(cfg.Paths.StateDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	runID := uuid.NewString()
	runLog, err := logging.NewRunLogger(cfg, runID, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer runLog.Close()

	mirrorOpts := mirror.Options{
		CaseInsensitive: cfg.Mirror.CaseInsensitive || opts.caseInsensitive,
		SkipFailedMoves: cfg.SkipFailedMoves() || opts.skipFailed,
	}
	runCtx := logging.WithRunID(cmd.Context(), runID)
	result, err := mirror.New(mirrorOpts, runLog.Logger, cmd.OutOrStdout()).Run(runCtx, source, destination)

	if opts.summary {
		fmt.Fprint(cmd.OutOrStdout(), renderSummary(result, runLog.Path))
	}
	if err != nil {
		return fmt.Errorf("%w (run log: %s)", err, runLog.Path)
	}
	return nil
}

// resolveRoots picks each root from, in order: positional argument, flag,
// config (which already carries environment overrides), and finally an
// interactive prompt when stdin is a terminal.
func resolveRoots(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, args []string, opts runOptions) (string, string, error) {
	source := firstNonEmpty(argAt(args, 0), opts.source, cfg.Mirror.Source)
	destination := firstNonEmpty(argAt(args, 1), opts.destination, cfg.Mirror.Destination)

	if source == "" || destination == "" {
		if !ctx.interactive(cmd.InOrStdin()) {
			missing := "source"
			if source != "" {
				missing = "destination"
			}
			return "", "", mirror.Wrap(mirror.ErrConfiguration, "resolve roots",
				missing+" folder is required (pass it as an argument, a flag, or set it in the config file)", nil)
		}
		p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		var err error
		if source == "" {
			if source, err = p.ask("Enter the source folder path: "); err != nil {
				return "", "", err
			}
		}
		if destination == "" {
			if destination, err = p.ask("Enter the destination folder path: "); err != nil {
				return "", "", err
			}
		}
	}

	var err error
	if source, err = config.ExpandPath(source); err != nil {
		return "", "", mirror.Wrap(mirror.ErrSource, "resolve source", source, err)
	}
	if destination, err = config.ExpandPath(destination); err != nil {
		return "", "", mirror.Wrap(mirror.ErrDestination, "resolve destination", destination, err)
	}
	return source, destination, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
