package mirror

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"mirrorsort/internal/fileutil"
	"mirrorsort/internal/logging"
)

// Options tune how a run pairs and relocates files.
type Options struct {
	// CaseInsensitive compares base names after Unicode case folding.
	CaseInsensitive bool
	// SkipFailedMoves logs a failed relocation and continues instead of aborting.
	SkipFailedMoves bool
}

// Move records one relocation.
type Move struct {
	From       string
	To         string
	SourceFile string
}

// MoveFailure records a relocation skipped under Options.SkipFailedMoves.
type MoveFailure struct {
	From string
	To   string
	Err  error
}

// Result summarizes a run.
type Result struct {
	Source       string
	Destination  string
	DirsCreated  int
	FilesScanned int
	Moves        []Move
	Failures     []MoveFailure
	Elapsed      time.Duration
}

// Mirrorer runs the mirror-and-relocate procedure.
type Mirrorer struct {
	opts   Options
	logger *slog.Logger
	out    io.Writer
	key    matchKey
}

// New constructs a Mirrorer. Each move is reported on out as
// "Moved: <from> to <to>"; a nil out discards the report.
func New(opts Options, logger *slog.Logger, out io.Writer) *Mirrorer {
	if out == nil {
		out = io.Discard
	}
	return &Mirrorer{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "mirror"),
		out:    out,
		key:    newMatchKey(opts.CaseInsensitive),
	}
}

// Run mirrors source into destination with a silent logger, reporting moves on stdout.
func Run(ctx context.Context, source, destination string, opts Options) (Result, error) {
	return New(opts, nil, os.Stdout).Run(ctx, source, destination)
}

// Run creates destination if needed, recreates every source directory under
// it, and relocates each destination file whose base name matches a source
// file into the mirrored counterpart of that file's directory. Moves made
// before an error are kept and reported in the returned Result.
func (m *Mirrorer) Run(ctx context.Context, source, destination string) (Result, error) {
	started := time.Now()
	logger := logging.WithContext(ctx, m.logger)

	source, destination, err := resolveRoots(source, destination)
	result := Result{Source: source, Destination: destination}
	if err != nil {
		return result, err
	}

	logger.Info("mirror run started",
		logging.String("source", source),
		logging.String("destination", destination),
		logging.Bool("case_insensitive", m.opts.CaseInsensitive),
		logging.Bool("skip_failed_moves", m.opts.SkipFailedMoves),
	)

	created, err := ensureDir(destination)
	if err != nil {
		return result, Wrap(ErrDestination, "create destination root", destination, err)
	}
	if created {
		result.DirsCreated++
		logger.Debug("destination root created", logging.String("path", destination))
	}

	err = walkSource(ctx, source, func(dir string, fileNames []string) error {
		return m.mirrorDir(ctx, logger, &result, dir, fileNames)
	})
	result.Elapsed = time.Since(started)
	if err != nil {
		logging.ErrorWithContext(logger, "mirror run aborted", "mirror_run_aborted",
			logging.Error(err),
			logging.Int("moves_completed", len(result.Moves)),
			logging.String(logging.FieldErrorHint, Hint(err)),
		)
		return result, err
	}

	logger.Info("mirror run completed",
		logging.Int("dirs_created", result.DirsCreated),
		logging.Int("files_scanned", result.FilesScanned),
		logging.Int("files_moved", len(result.Moves)),
		logging.Int("moves_failed", len(result.Failures)),
		logging.Duration("elapsed", result.Elapsed),
		logging.String(logging.FieldEventType, "mirror_run_completed"),
	)
	return result, nil
}

func (m *Mirrorer) mirrorDir(ctx context.Context, logger *slog.Logger, result *Result, dir string, fileNames []string) error {
	rel, err := filepath.Rel(result.Source, dir)
	if err != nil {
		return Wrap(ErrSource, "resolve relative path", dir, err)
	}
	targetDir := filepath.Join(result.Destination, rel)

	created, err := ensureDir(targetDir)
	if err != nil {
		return Wrap(ErrDestination, "create mirrored directory", targetDir, err)
	}
	if created {
		result.DirsCreated++
		logger.Debug("directory mirrored", logging.String("path", targetDir), logging.String("relative_path", rel))
	}

	for _, name := range fileNames {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.FilesScanned++
		if err := m.relocate(logger, result, filepath.Join(dir, name), targetDir); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirrorer) relocate(logger *slog.Logger, result *Result, sourceFile, targetDir string) error {
	base := BaseName(filepath.Base(sourceFile))
	match, err := findMatch(result.Destination, m.key(base), m.key)
	if err != nil {
		return err
	}
	if match == "" {
		logger.Debug("no destination match", logging.String("source_file", sourceFile), logging.String("base_name", base))
		return nil
	}

	target := filepath.Join(targetDir, filepath.Base(match))
	if match == target {
		logger.Debug("match already in place", logging.String("path", target))
		return nil
	}

	if err := fileutil.MoveFile(match, target); err != nil {
		wrapped := Wrap(ErrMove, "relocate file", fmt.Sprintf("%s -> %s", match, target), err)
		if !m.opts.SkipFailedMoves {
			return wrapped
		}
		result.Failures = append(result.Failures, MoveFailure{From: match, To: target, Err: err})
		logging.WarnWithContext(logger, "move failed; file left in place", "file_move_failed",
			logging.String("from", match),
			logging.String("to", target),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, Hint(wrapped)),
			logging.String(logging.FieldImpact, "file stays at its current location"),
		)
		return nil
	}

	result.Moves = append(result.Moves, Move{From: match, To: target, SourceFile: sourceFile})
	fmt.Fprintf(m.out, "Moved: %s to %s\n", match, target)
	logger.Info("file moved",
		logging.String("from", match),
		logging.String("to", target),
		logging.String("source_file", sourceFile),
		logging.String(logging.FieldEventType, "file_moved"),
	)
	return nil
}

// resolveRoots cleans both roots, checks the source is a directory, and
// rejects roots that contain each other.
func resolveRoots(source, destination string) (string, string, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)
	if source == "" {
		return source, destination, Wrap(ErrConfiguration, "resolve roots", "source folder is required", nil)
	}
	if destination == "" {
		return source, destination, Wrap(ErrConfiguration, "resolve roots", "destination folder is required", nil)
	}

	var err error
	if source, err = filepath.Abs(source); err != nil {
		return source, destination, Wrap(ErrSource, "resolve source", source, err)
	}
	if destination, err = filepath.Abs(destination); err != nil {
		return source, destination, Wrap(ErrDestination, "resolve destination", destination, err)
	}

	info, err := os.Stat(source)
	if err != nil {
		return source, destination, Wrap(ErrSource, "inspect source", source, err)
	}
	if !info.IsDir() {
		return source, destination, Wrap(ErrSource, "inspect source", source+" is not a directory", nil)
	}

	// Roots are compared and walked by their real locations.
	if source, err = filepath.EvalSymlinks(source); err != nil {
		return source, destination, Wrap(ErrSource, "resolve source", source, err)
	}
	if destination, err = resolveExisting(destination); err != nil {
		return source, destination, Wrap(ErrDestination, "resolve destination", destination, err)
	}

	if within(source, destination) || within(destination, source) {
		return source, destination, Wrap(ErrConfiguration, "resolve roots",
			fmt.Sprintf("source %s and destination %s overlap", source, destination), nil)
	}
	return source, destination, nil
}

// resolveExisting evaluates symlinks in the longest existing prefix of path
// and appends the components that do not exist yet unchanged.
func resolveExisting(path string) (string, error) {
	var missing []string
	current := path
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return path, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return path, nil
		}
		missing = append([]string{filepath.Base(current)}, missing...)
		current = parent
	}
}

// within reports whether path equals root or lies beneath it.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ensureDir creates dir with any missing parents and reports whether it had to.
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, &fs.PathError{Op: "mkdir", Path: dir, Err: unix.ENOTDIR}
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	return true, nil
}
