package core

// Command is a logical request produced by an input adapter.
// Adapters translate pointer, touch and key events into commands; the
// simulation drains them once per tick in arrival order.
type Command int

const (
	CommandNone Command = iota
	CommandJump         // Pointer down, touch start, Space/Up
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// CommandQueue is a FIFO of pending commands.
// It is owned by a single goroutine, like the rest of the simulation state.
type CommandQueue struct {
	pending []Command
}

// NewCommandQueue creates an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{pending: make([]Command, 0, 4)}
}

// Push appends a command. CommandNone is ignored.
func (q *CommandQueue) Push(c Command) {
	if c == CommandNone {
		return
	}
	q.pending = append(q.pending, c)
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.pending)
}

// Drain returns all pending commands in arrival order and empties the queue.
// The caller owns the returned slice; commands pushed afterwards go to a new
// buffer.
func (q *CommandQueue) Drain() []Command {
	out := q.pending
	q.pending = make([]Command, 0, cap(out))
	return out
}

// Clear discards all pending commands.
func (q *CommandQueue) Clear() {
	q.pending = q.pending[:0]
}
