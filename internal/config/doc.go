// Package config loads, normalizes, and validates mirrorsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MIRRORSORT_SOURCE. The Config type holds the default source and destination
// roots, the matching policy, and the log/state directories the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
