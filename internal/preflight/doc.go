// Package preflight checks that the roots of a mirror run are usable before
// anything is created or moved.
//
// The CLI runs RunAll ahead of every mirror run and aborts on the first
// failed result; "mirrorsort check" prints every result as a table.
package preflight
