// Package history keeps undo and redo stacks of reversible commands
package history

import (
	"context"
	"sync"
)

// Command is a reversible operation. Execute must be safe to call again
// after Undo, which is how redo replays it.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Description() string
}

// History runs commands and tracks them for undo and redo. Executing a new
// command discards everything on the redo stack.
type History struct {
	mu     sync.Mutex
	done   []Command
	undone []Command
}

// New returns an empty history
func New() *History {
	return &History{}
}

// Execute runs cmd and records it. A failed command is not recorded and the
// redo stack is left as it was.
func (h *History) Execute(ctx context.Context, cmd Command) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	h.done = append(h.done, cmd)
	h.undone = nil
	return nil
}

// Undo reverts the most recent command and moves it to the redo stack.
// It returns nil with no error when there is nothing to undo. A command
// whose Undo fails stays on the undo stack.
func (h *History) Undo(ctx context.Context) (Command, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.done) == 0 {
		return nil, nil
	}
	cmd := h.done[len(h.done)-1]
	if err := cmd.Undo(ctx); err != nil {
		return nil, err
	}
	h.done = h.done[:len(h.done)-1]
	h.undone = append(h.undone, cmd)
	return cmd, nil
}

// Redo re-executes the most recently undone command. It returns nil with no
// error when there is nothing to redo.
func (h *History) Redo(ctx context.Context) (Command, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undone) == 0 {
		return nil, nil
	}
	cmd := h.undone[len(h.undone)-1]
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}
	h.undone = h.undone[:len(h.undone)-1]
	h.done = append(h.done, cmd)
	return cmd, nil
}

// Clear drops both stacks
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.done = nil
	h.undone = nil
}

// Len returns how many commands can be undone
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.done)
}

// RedoLen returns how many commands can be redone
func (h *History) RedoLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undone)
}
