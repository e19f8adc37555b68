package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	i := Ptr(42)
	assert.Equal(t, 42, *i)

	f := Ptr(0.7)
	assert.InDelta(t, 0.7, *f, 1e-9)

	s := Ptr("hello")
	assert.Equal(t, "hello", *s)

	a, b := Ptr(1), Ptr(1)
	assert.NotSame(t, a, b, "each call returns a distinct pointer")
}
