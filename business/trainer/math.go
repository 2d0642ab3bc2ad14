// business/trainer/math.go
package trainer

import (
	"fmt"
	"math"
)

// y = A * x
func matVecMul(A [][]float64, x []float64) []float64 {
	y := make([]float64, len(A))
	for i := range A {
		sum := 0.0
		for j := range x {
			sum += A[i][j] * x[j]
		}
		y[i] = sum
	}
	return y
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// A := A + x x^T
func addOuter(A [][]float64, x []float64) {
	for i := range x {
		for j := range x {
			A[i][j] += x[i] * x[j]
		}
	}
}

// b := b + r x
func addScaled(b []float64, x []float64, r float64) {
	for i := range x {
		b[i] += r * x[i]
	}
}

func zeroMatrix(n int) [][]float64 {
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
	}
	return A
}

// Invert an n x n matrix using Gauss-Jordan.
func invert(A [][]float64) ([][]float64, error) {
	n := len(A)

	// Build augmented [A | I]
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], A[i])
		aug[i][n+i] = 1.0
	}

	// Gauss-Jordan elimination with partial pivoting
	for col := 0; col < n; col++ {
		pivotRow := col
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > math.Abs(aug[pivotRow][col]) {
				pivotRow = r
			}
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		if math.Abs(pivot) < 1e-12 {
			return nil, fmt.Errorf("matrix is singular")
		}

		// Normalize pivot row
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}

		// Eliminate other rows
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			factor := aug[i][col]
			for j := 0; j < 2*n; j++ {
				aug[i][j] -= factor * aug[col][j]
			}
		}
	}

	// Extract inverse
	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
		copy(inv[i], aug[i][n:])
	}
	return inv, nil
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
