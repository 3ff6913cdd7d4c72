// Package app wires the application together: it owns the logger, loads the
// analysis model through a config.Loader, and runs each analysis to
// completion against the configured output writer.
package app
