package taskqueue

import "github.com/pkg/errors"

// Precondition violations. Kernel and derived operations panic with an error
// wrapping one of these; recover the value and use errors.Is to tell them apart.
var (
	ErrEmptyDescription   = errors.New("taskqueue: description is empty")
	ErrInvalidDescription = errors.New("taskqueue: description is not valid UTF-8")
	ErrNegativePriority   = errors.New("taskqueue: priority is negative")
	ErrEmptyQueue         = errors.New("taskqueue: queue is empty")
	ErrSelfTransfer       = errors.New("taskqueue: source is the receiver")
	ErrIncompatibleKind   = errors.New("taskqueue: source is of a different queue kind")
	ErrSelfAppend         = errors.New("taskqueue: target is the receiver")
	ErrNilQueue           = errors.New("taskqueue: queue is nil")
)

// EmptyQueueMessage is what Peek and ListTasks report for an empty queue.
const EmptyQueueMessage = "No tasks in queue."

func violation(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}
