package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	A := [][]float64{
		{4, 7},
		{2, 6},
	}

	inv, err := invert(A)
	require.NoError(t, err)

	want := [][]float64{
		{0.6, -0.7},
		{-0.2, 0.4},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], inv[i][j], 1e-9)
		}
	}
}

func TestInvertIdentityRoundTrip(t *testing.T) {
	A := [][]float64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}

	inv, err := invert(A)
	require.NoError(t, err)

	// A * A^-1 should be the identity
	for i := range A {
		got := matVecMul(A, column(inv, i))
		for j := range got {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, got[j], 1e-9)
		}
	}
}

func column(A [][]float64, j int) []float64 {
	col := make([]float64, len(A))
	for i := range A {
		col[i] = A[i][j]
	}
	return col
}

func TestInvertSingular(t *testing.T) {
	A := [][]float64{
		{1, 2},
		{2, 4},
	}
	_, err := invert(A)
	assert.Error(t, err)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{nil, 0},
		{[]float64{5}, 5},
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{10, 10, 10}, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, median(tt.values), "median(%v)", tt.values)
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.InDelta(t, 2.0, std, 1e-9)

	// constant column has zero spread
	mean, std = meanStd([]float64{3, 3, 3})
	assert.Equal(t, 3.0, mean)
	assert.Equal(t, 0.0, std)

	// empty input keeps the identity scale
	mean, std = meanStd(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 1.0, std)
}

func TestDotAndAddScaled(t *testing.T) {
	assert.Equal(t, 32.0, dot([]float64{1, 2, 3}, []float64{4, 5, 6}))

	b := []float64{1, 1}
	addScaled(b, []float64{2, 3}, 2)
	assert.Equal(t, []float64{5, 7}, b)
}

func TestAddOuter(t *testing.T) {
	A := zeroMatrix(2)
	addOuter(A, []float64{2, 3})

	assert.Equal(t, [][]float64{
		{4, 6},
		{6, 9},
	}, A)
}
