// Package report renders the plain-text analysis report.
package report

import (
	"fmt"
	"io"
	"strings"
)

// maxShown caps how many support labels appear on the summary line.
const maxShown = 10

// Render writes the full report for a single analysis to w: the computed
// summary followed by the fixed mathematical interpretation block.
func Render(w io.Writer, bound int, support []string, closed bool) error {
	shown := support
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}

	answer := "No"
	if closed {
		answer = "Yes"
	}

	var b strings.Builder
	fmt.Fprintln(&b, "=== Spec(ℤ) Support Analysis ===")
	fmt.Fprintf(&b, "Maximum prime considered: %d\n", bound)
	fmt.Fprintf(&b, "Support size: %d\n", len(support))
	fmt.Fprintf(&b, "First %d primes in support: %s\n", maxShown, strings.Join(shown, " "))
	fmt.Fprintf(&b, "Is Zariski closed? %s\n", answer)
	b.WriteString("\n")
	fmt.Fprintln(&b, "Mathematical Interpretation:")
	fmt.Fprintln(&b, "Ring: ℤ (integers)")
	fmt.Fprintln(&b, "Module: M = ℚ/ℤ")
	fmt.Fprintln(&b, "Support: Supp(M) = { (p) | p ∈ ℙ }")
	fmt.Fprintln(&b, "Topology: Zariski topology on Spec(ℤ)")
	fmt.Fprintln(&b, "Result: Support is not closed (infinite ≠ whole space)")

	_, err := io.WriteString(w, b.String())
	return err
}
