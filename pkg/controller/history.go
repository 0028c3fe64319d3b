package controller

import "sync"

// History models the session history stack: an ordered list of visited paths
// with a cursor. Pushing a new path drops any forward entries, matching how
// a browser history behaves after navigating from a mid-stack position.
type History struct {
	mu      sync.Mutex
	entries []string
	index   int
}

// NewHistory creates a history positioned at the given initial path.
func NewHistory(initial string) *History {
	return &History{entries: []string{initial}}
}

// Current returns the path at the cursor.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push appends a path after the cursor and moves the cursor onto it.
func (h *History) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
}

// Back moves the cursor one entry back. It reports false at the start of the
// stack, leaving the cursor in place.
func (h *History) Back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == 0 {
		return h.entries[h.index], false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward. It reports false at the end of
// the stack, leaving the cursor in place.
func (h *History) Forward() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == len(h.entries)-1 {
		return h.entries[h.index], false
	}
	h.index++
	return h.entries[h.index], true
}

// Len returns the number of entries in the stack.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
