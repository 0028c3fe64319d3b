package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_PushAndCurrent(t *testing.T) {
	h := NewHistory("/")
	assert.Equal(t, "/", h.Current())

	h.Push("/ask")
	assert.Equal(t, "/ask", h.Current())
	assert.Equal(t, 2, h.Len())
}

func TestHistory_BackForward(t *testing.T) {
	h := NewHistory("/")
	h.Push("/ask")
	h.Push("/q/1")

	path, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/ask", path)

	path, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/", path)

	// At the start of the stack
	path, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, "/", path)

	path, ok = h.Forward()
	assert.True(t, ok)
	assert.Equal(t, "/ask", path)
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := NewHistory("/")
	h.Push("/ask")
	h.Push("/q/1")

	_, _ = h.Back() // at /ask
	h.Push("/admin")

	assert.Equal(t, "/admin", h.Current())
	assert.Equal(t, 3, h.Len())

	_, ok := h.Forward()
	assert.False(t, ok)
}
