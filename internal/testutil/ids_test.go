package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	gen := NewSequentialIDs("t")
	assert.Equal(t, "t1", gen.Generate())
	assert.Equal(t, "t2", gen.Generate())
	assert.Equal(t, "t3", gen.Generate())
}

func TestSequentialIDs_Independent(t *testing.T) {
	a := NewSequentialIDs("a")
	b := NewSequentialIDs("b")
	a.Generate()
	assert.Equal(t, "b1", b.Generate())
	assert.Equal(t, "a2", a.Generate())
}
