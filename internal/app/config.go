package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	AnalysisPath string // optional .hcl file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config. An empty AnalysisPath is
// valid: the app falls back to the built-in reference analysis.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
