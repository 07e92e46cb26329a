package vantage

// Signal is an application-level request raised by the overlay. Signals are
// fire-and-forget; a collaborator outside the core acts on them.
type Signal uint8

const (
	SignalQuit Signal = iota
	SignalNewFile
	SignalOpenFile
	SignalSaveFile
	SignalSaveFileAs
)

func (s Signal) String() string {
	switch s {
	case SignalQuit:
		return "quit"
	case SignalNewFile:
		return "new-file"
	case SignalOpenFile:
		return "open-file"
	case SignalSaveFile:
		return "save-file"
	case SignalSaveFileAs:
		return "save-file-as"
	default:
		return "unknown"
	}
}

// SignalSink receives outgoing signals.
type SignalSink interface {
	Send(Signal)
}

// SignalQueue is an in-memory SignalSink. The zero value is ready to use.
type SignalQueue struct {
	pending []Signal
}

// Send appends s to the queue.
func (q *SignalQueue) Send(s Signal) {
	q.pending = append(q.pending, s)
}

// Len returns the number of undelivered signals.
func (q *SignalQueue) Len() int { return len(q.pending) }

// Drain returns all queued signals in send order and empties the queue.
func (q *SignalQueue) Drain() []Signal {
	out := q.pending
	q.pending = nil
	return out
}
