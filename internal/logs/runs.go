package logs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrNoRuns is returned when the log directory holds no run logs.
var ErrNoRuns = errors.New("no run logs found")

// RunLog describes one run log file.
type RunLog struct {
	Path     string
	Size     int64
	Modified time.Time
}

// List returns the run logs in dir matching pattern, newest first.
func List(dir, pattern string) ([]RunLog, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("match run logs: %w", err)
	}
	runs := make([]RunLog, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat run log: %w", err)
		}
		if info.IsDir() {
			continue
		}
		runs = append(runs, RunLog{Path: path, Size: info.Size(), Modified: info.ModTime()})
	}
	// Names embed a second-resolution timestamp; the path breaks mtime ties.
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].Modified.Equal(runs[j].Modified) {
			return runs[i].Modified.After(runs[j].Modified)
		}
		return runs[i].Path > runs[j].Path
	})
	return runs, nil
}

// Latest returns the most recent run log in dir.
func Latest(dir, pattern string) (RunLog, error) {
	runs, err := List(dir, pattern)
	if err != nil {
		return RunLog{}, err
	}
	if len(runs) == 0 {
		return RunLog{}, fmt.Errorf("%w in %s", ErrNoRuns, dir)
	}
	return runs[0], nil
}
