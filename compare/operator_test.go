package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorStrings(t *testing.T) {
	assert.Equal(t, "GreaterThanOrEqual", GreaterThanOrEqual.String())
	assert.Equal(t, "NotEquals", NotEquals.String())
	assert.Equal(t, "CompareOperator(9)", CompareOperator(9).String())
	assert.Equal(t, "Or", Or.String())
	assert.Equal(t, "BooleanOperator(3)", BooleanOperator(3).String())
	assert.Equal(t, "Unsigned", Unsigned.String())
	assert.Equal(t, "Signing(2)", Signing(2).String())
}

func TestWordCount(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 63: 1, 64: 1, 65: 2, 128: 2, 129: 3} {
		assert.Equal(t, want, WordCount(n), "n=%d", n)
	}
}
