// Package config defines the format-agnostic analysis model for the
// application, along with the Loader interface for reading analysis
// definitions from various sources.
//
// The `config.Model` is the single source of truth for the app's run loop.
// Concrete implementations of the Loader, such as for HCL, are provided in
// separate packages.
package config
