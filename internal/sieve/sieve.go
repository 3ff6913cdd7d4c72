// Package sieve generates prime numbers with the sieve of Eratosthenes.
package sieve

// Primes returns every prime not exceeding limit, in ascending order.
// Limits below 2 yield an empty result.
func Primes(limit int) []int {
	if limit < 2 {
		return nil
	}

	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}

	var primes []int
	for i := 2; i <= limit; i++ {
		if !isPrime[i] {
			continue
		}
		primes = append(primes, i)

		// Striking starts at i*i: every smaller multiple of i was already
		// removed by a smaller prime factor. The division guard keeps i*i
		// from overflowing when limit approaches the int maximum; in that
		// case i*i > limit anyway and there is nothing left to strike.
		if i > limit/i {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}
	return primes
}
