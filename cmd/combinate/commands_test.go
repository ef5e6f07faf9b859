package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCollection(t *testing.T) {
	assert.Nil(t, parseCollection(""))
	assert.Equal(t, []string{"a"}, parseCollection("a"))
	assert.Equal(t, []string{"0", "1", "2"}, parseCollection("0,1,2"))
}

func TestFormatTuple(t *testing.T) {
	assert.Equal(t, "()", formatTuple(nil))
	assert.Equal(t, "(a b)", formatTuple([]string{"a", "b"}))
}
