package app

import (
	"context"
	"fmt"

	"github.com/vk/primespectgo/internal/report"
	"github.com/vk/primespectgo/internal/sieve"
	"github.com/vk/primespectgo/internal/support"
)

// Run executes every configured analysis in definition order, writing one
// full report each.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	if len(a.model.Analyses) == 0 {
		a.logger.Warn("No analysis definitions found, nothing to do.")
		return nil
	}

	for _, analysis := range a.model.Analyses {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.logger.Info("Analyzing support.", "analysis", analysis.Name, "bound", analysis.Bound)

		primes := sieve.Primes(analysis.Bound)
		labels := support.Labels(primes)
		closed := support.IsZariskiClosed(labels, len(primes))
		a.logger.Debug("Support computed.", "primes", len(primes), "closed", closed)

		if err := report.Render(a.outW, analysis.Bound, labels, closed); err != nil {
			return fmt.Errorf("failed to render report for analysis %q: %w", analysis.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
