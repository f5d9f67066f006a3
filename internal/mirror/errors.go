package mirror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSource marks a missing or unreadable source tree.
	ErrSource = errors.New("source error")
	// ErrDestination marks a destination root or subdirectory that cannot be created or read.
	ErrDestination = errors.New("destination error")
	// ErrMove marks a failed relocation of a single matched file.
	ErrMove = errors.New("move error")
	// ErrConfiguration marks unusable run inputs such as overlapping roots.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes the failing operation while tagging
// it with marker for classification via errors.Is. The marker should be one of
// the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "mirror failure"
	}
	return strings.Join(parts, ": ")
}

// Hint returns an operator-facing next step for a run error.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrSource):
		return "check that the source folder exists and is readable"
	case errors.Is(err, ErrDestination):
		return "check that the destination folder can be created and written"
	case errors.Is(err, ErrMove):
		return "check permissions on the matched file and its target folder, or rerun with --skip-failed"
	case errors.Is(err, ErrConfiguration):
		return "pick source and destination folders that do not contain each other"
	default:
		return ""
	}
}
