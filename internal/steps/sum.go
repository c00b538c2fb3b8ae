// Package steps implements the three program steps: summation, greeting and
// the guarded division. Every step writes its output to an io.Writer.
package steps

import (
	"fmt"
	"io"
)

// SumLabel prefixes the summation result line.
const SumLabel = "The sum of x and y is:"

// Add returns the sum of two integers.
func Add(x, y int) int {
	return x + y
}

// Sum adds x and y, writes the labelled result as one line and returns it.
func Sum(w io.Writer, x, y int) (int, error) {
	z := Add(x, y)
	if _, err := fmt.Fprintln(w, SumLabel, z); err != nil {
		return z, fmt.Errorf("failed to write sum: %w", err)
	}
	return z, nil
}
