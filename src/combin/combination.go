package combin

// Combination returns C(n, k), the number of ways to choose k items from n.
// It works in float64 so results can feed straight into ratios. Every partial
// product is itself a binomial coefficient, so results are exact while they
// fit in 53 bits and finite for every k up to n = 1020. Past that the result
// may be +Inf.
func Combination(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if n-k < k {
		k = n - k
	}

	// after step i, c == C(n-k+i, i)
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}
