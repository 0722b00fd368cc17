package funcdrills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeFib_SpecificCalls(t *testing.T) {
	tests := []struct {
		skip int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 5},
		{5, 8},
		{9, 55},
	}

	for _, tt := range tests {
		fib := MakeFib()
		for i := 0; i < tt.skip; i++ {
			fib()
		}
		assert.Equal(t, tt.want, fib(), "call %d", tt.skip)
	}
}

func TestMakeFib_IndependentGenerators(t *testing.T) {
	a := MakeFib()
	b := MakeFib()

	assert.Equal(t, 1, a())
	assert.Equal(t, 1, a())
	assert.Equal(t, 2, a())

	assert.Equal(t, 1, b())
	assert.Equal(t, 3, a())
	assert.Equal(t, 1, b())
	assert.Equal(t, 2, b())
}

func TestFibonacci(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2, 3, 5, 8, 13, 21}, Fibonacci(8))
	assert.Equal(t, []int{1}, Fibonacci(1))
	assert.Equal(t, []int{}, Fibonacci(0))
	assert.Equal(t, []int{}, Fibonacci(-3))
}
