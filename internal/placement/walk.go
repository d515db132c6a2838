package placement

import "fmt"

// Walk moves steps positions from index i in a cyclic sequence of length n
// and returns the wrapped index in [0, n). Negative steps walk left; any
// magnitude is accepted.
func Walk(n, i, steps int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidIndex)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, n)
	}

	// Go's % keeps the dividend's sign, so fold the remainder back into range.
	return ((i+steps%n)%n + n) % n, nil
}
