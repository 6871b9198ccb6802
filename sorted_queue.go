package taskqueue

import (
	"github.com/pkg/errors"

	"github.com/timzifer/taskqueue/internal/queue"
)

// SortedQueue is the default Kernel. Tasks are kept in non-increasing
// priority order on a deque; insertion is a binary search plus a shift.
type SortedQueue struct {
	items *queue.Ordered[Task]
}

// NewSortedQueue creates an empty kernel. Only WithBaseCapacity applies.
func NewSortedQueue(opts ...Option) *SortedQueue {
	return newSortedQueue(newOptions(opts))
}

func newSortedQueue(o options) *SortedQueue {
	return &SortedQueue{
		items: queue.NewOrdered(taskPriority, o.storage()...),
	}
}

// AddTask inserts the task after every task of equal or higher priority. It
// panics with an error wrapping the Validate failure on bad input.
func (q *SortedQueue) AddTask(description string, priority int) {
	if err := Validate(description, priority); err != nil {
		panic(err)
	}
	q.items.Insert(Task{Description: description, Priority: priority})
}

// RemoveTask pops the front task. It panics with ErrEmptyQueue when empty.
func (q *SortedQueue) RemoveTask() Task {
	t, ok := q.items.PopFront()
	if !ok {
		panic(errors.WithStack(ErrEmptyQueue))
	}
	return t
}

// IsEmpty reports whether the queue holds no tasks.
func (q *SortedQueue) IsEmpty() bool {
	return q.items.Len() == 0
}

// TransferFrom takes over the storage of source, which must be another
// *SortedQueue (or a TaskQueue wrapping one). A nil source panics with
// ErrNilQueue.
func (q *SortedQueue) TransferFrom(source Kernel) {
	unwrapped := unwrapKernel(source)
	if isNilKernel(unwrapped) {
		violation(ErrNilQueue, "transfer into %T", q)
	}
	src, ok := unwrapped.(*SortedQueue)
	if !ok {
		violation(ErrIncompatibleKind, "cannot transfer from %T into %T", source, q)
	}
	if src == q {
		violation(ErrSelfTransfer, "transfer into %T", q)
	}
	q.items = src.items.Detach()
}

// NewInstance returns an empty SortedQueue with the receiver's storage options.
func (q *SortedQueue) NewInstance() Kernel {
	return &SortedQueue{
		items: queue.NewOrdered(taskPriority, queue.WithOptions[Task](q.items.Options())),
	}
}

// Clear drops every task.
func (q *SortedQueue) Clear() {
	q.items.Reset()
}

// Len returns the number of tasks.
func (q *SortedQueue) Len() int {
	return q.items.Len()
}

// Front returns the highest-priority task without removing it.
func (q *SortedQueue) Front() (Task, bool) {
	return q.items.Front()
}

// Range calls fn for each task front to back until fn returns false.
func (q *SortedQueue) Range(fn func(Task) bool) {
	q.items.Range(func(_ int, t Task) bool {
		return fn(t)
	})
}
