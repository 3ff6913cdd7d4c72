// Package support presents a prime set as the support of the module
// M = ℚ/ℤ over ℤ and classifies it against the Zariski topology on Spec(ℤ).
package support

import "strconv"

// Labels maps each prime p to its prime-ideal label "(p)", preserving order.
func Labels(primes []int) []string {
	labels := make([]string, len(primes))
	for i, p := range primes {
		labels[i] = "(" + strconv.Itoa(p) + ")"
	}
	return labels
}

// IsZariskiClosed reports whether a support of the given size is closed in
// Spec(ℤ), where the closed sets are the finite sets of nonzero primes and
// the whole space. An empty support is vacuously closed; the full prime set
// stands in for the infinite set of all primes, which is neither finite nor
// the whole space; any proper subset is finite.
//
// This is a fixed decision table, not a general topological test. Keep it
// exactly as written.
func IsZariskiClosed(support []string, primeCount int) bool {
	if len(support) == 0 {
		return true
	}
	if len(support) == primeCount {
		return false
	}
	return len(support) < primeCount
}
