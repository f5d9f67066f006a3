// Package mirror recreates a source tree's directory layout under a
// destination root and relocates files already living anywhere under the
// destination next to their same-named counterparts.
//
// Files are paired by base name: the file name with its final extension
// removed, so reference/docs/report.txt pulls unsorted/report.pdf into
// unsorted/docs/report.pdf. Every lookup walks the whole destination tree in
// lexical order and takes the first regular file whose base name matches.
// Because that walk includes files moved earlier in the same run, a later
// source file with the same base name can move such a file again. When
// several destination files share a base name, only the first one found moves.
//
// Runs are single-threaded and fail fast: the first error aborts, and moves
// already made stay where they are. Options.SkipFailedMoves downgrades
// individual move failures to warnings.
package mirror
