// Package config loads MediaVault client settings from three layered
// sources: built-in defaults, an optional JSON file (-c/-config), and
// command-line flags. Later sources win.
package config
