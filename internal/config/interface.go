package config

import "context"

// Loader is the interface for a format-specific analysis definition loader.
type Loader interface {
	// Load reads analysis definitions from the given paths and translates
	// them into the format-agnostic model. It does not validate the model;
	// that is the caller's responsibility.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
