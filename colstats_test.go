package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"describe", "hist"} {
		assert.True(t, isCommand(name), name)
	}
	// Data files that share a command name are reached through a path.
	for _, name := range []string{"./hist", "./describe", "data.txt", "-", "-c", ""} {
		assert.False(t, isCommand(name), name)
	}
}
