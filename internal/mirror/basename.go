package mirror

import (
	"strings"

	"golang.org/x/text/cases"
)

// BaseName strips the final extension from a file name. Leading dots do not
// start an extension, so ".env" and "..notes" are their own base names, while
// "archive.tar.gz" becomes "archive.tar" and "draft." becomes "draft".
func BaseName(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name
	}
	if strings.TrimLeft(name[:idx], ".") == "" {
		return name
	}
	return name[:idx]
}

// matchKey maps a base name to the key compared between source and destination.
type matchKey func(base string) string

func newMatchKey(caseInsensitive bool) matchKey {
	if !caseInsensitive {
		return func(base string) string { return base }
	}
	fold := cases.Fold()
	return func(base string) string {
		return fold.String(base)
	}
}
