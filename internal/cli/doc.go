// Package cli translates command-line arguments into an app.Config,
// including flag validation and the user-facing usage text.
package cli
