package taskqueue

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/timzifer/taskqueue/internal/telemetry"
)

// TaskQueue layers the derived operations on top of a Kernel. It is itself a
// Kernel, delegating the primitives, so derived queues can be nested or
// transferred like any other kernel.
//
// Queries that only read (Size, Peek, Contains, String, Hash, ListTasks,
// Tasks) read the kernel in place when it implements Inspector. Everything
// else, and every read on a kernel without Inspector, goes through
// drain-and-restore using nothing but the Kernel methods.
//
// A TaskQueue is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves. The zero value is not usable:
// create queues with New or Wrap. Methods on a zero TaskQueue panic with
// ErrNilQueue.
type TaskQueue struct {
	kernel Kernel
	logger *zap.Logger
}

// New returns an empty queue backed by a SortedQueue.
func New(opts ...Option) *TaskQueue {
	o := newOptions(opts)
	return &TaskQueue{
		kernel: newSortedQueue(o),
		logger: namedLogger(o.logger),
	}
}

// Wrap layers the derived operations over an existing kernel. The queue takes
// ownership of k; callers must not use k directly afterwards. A nil kernel,
// including a typed nil pointer or map, panics with ErrNilQueue.
func Wrap(k Kernel, opts ...Option) *TaskQueue {
	k = unwrapKernel(k)
	if isNilKernel(k) {
		violation(ErrNilQueue, "wrap")
	}
	o := newOptions(opts)
	return &TaskQueue{
		kernel: k,
		logger: namedLogger(o.logger),
	}
}

func namedLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return nil
	}
	return l.Named("taskqueue")
}

// SetLogger replaces the logger used for debug output.
func (q *TaskQueue) SetLogger(logger *zap.Logger) {
	q.logger = namedLogger(logger)
}

// Logger returns the queue logger, or a no-op logger if none is set.
func (q *TaskQueue) Logger() *zap.Logger {
	if q.logger == nil {
		return zap.NewNop()
	}
	return q.logger
}

//---------------------------------------------------------------------------
// kernel primitives
//---------------------------------------------------------------------------

// k returns the kernel, panicking on a zero TaskQueue.
func (q *TaskQueue) k() Kernel {
	if q.kernel == nil {
		violation(ErrNilQueue, "zero %T; use New or Wrap", q)
	}
	return q.kernel
}

// AddTask delegates to the kernel.
func (q *TaskQueue) AddTask(description string, priority int) {
	q.k().AddTask(description, priority)
}

// RemoveTask delegates to the kernel; it panics on an empty queue.
func (q *TaskQueue) RemoveTask() Task {
	return q.k().RemoveTask()
}

// IsEmpty reports whether the queue holds no tasks.
func (q *TaskQueue) IsEmpty() bool {
	return q.k().IsEmpty()
}

// TransferFrom moves source's contents into the queue. Moving a queue into
// itself panics with ErrSelfTransfer.
func (q *TaskQueue) TransferFrom(source Kernel) {
	src := unwrapKernel(source)
	if sameKernel(src, q.k()) {
		violation(ErrSelfTransfer, "transfer into %T", q)
	}
	q.k().TransferFrom(src)
	q.Logger().Debug("transferred queue contents", zap.String("source", fmt.Sprintf("%T", src)))
}

// NewInstance returns an empty TaskQueue over a fresh peer of the kernel,
// sharing the receiver's logger.
func (q *TaskQueue) NewInstance() Kernel {
	return q.newPeer()
}

func (q *TaskQueue) newPeer() *TaskQueue {
	return &TaskQueue{
		kernel: q.k().NewInstance(),
		logger: q.logger,
	}
}

// Clear drops every task.
func (q *TaskQueue) Clear() {
	q.k().Clear()
	q.Logger().Debug("cleared queue")
}

//---------------------------------------------------------------------------
// derived operations
//---------------------------------------------------------------------------

// Dequeue removes the highest-priority task, reporting false instead of
// panicking when the queue is empty.
func (q *TaskQueue) Dequeue() (Task, bool) {
	if q.k().IsEmpty() {
		return Task{}, false
	}
	return q.k().RemoveTask(), true
}

// Size returns the number of tasks.
func (q *TaskQueue) Size() int {
	if in, ok := q.k().(Inspector); ok {
		telemetry.TraceInspect()
		return in.Len()
	}
	return drain(q.k(), func(Task) {})
}

// PeekTask returns the highest-priority task without removing it.
func (q *TaskQueue) PeekTask() (Task, bool) {
	if in, ok := q.k().(Inspector); ok {
		telemetry.TraceInspect()
		return in.Front()
	}

	var front Task
	found := false
	drain(q.k(), func(t Task) {
		if !found {
			front, found = t, true
		}
	})
	return front, found
}

// Peek renders the highest-priority task, or EmptyQueueMessage.
func (q *TaskQueue) Peek() string {
	t, ok := q.PeekTask()
	if !ok {
		return EmptyQueueMessage
	}
	return t.String()
}

// Contains reports whether any description contains keyword. Matching uses
// Unicode case folding, so "STRASSE" matches "Straße".
func (q *TaskQueue) Contains(keyword string) bool {
	m := newKeywordMatcher(keyword)
	found := false
	inspect(q.k(), func(t Task) bool {
		found = m.match(t.Description)
		return !found
	})
	return found
}

// FilterByKeyword returns a new queue holding the tasks whose description
// contains keyword, in their current order. Matching is the same Unicode case
// folding Contains uses. The receiver is left as it was.
func (q *TaskQueue) FilterByKeyword(keyword string) *TaskQueue {
	m := newKeywordMatcher(keyword)
	result := q.newPeer()
	matched := 0
	drain(q.k(), func(t Task) {
		if m.match(t.Description) {
			result.kernel.AddTask(t.Description, t.Priority)
			matched++
		}
	})

	q.Logger().Debug("filtered tasks",
		zap.String("keyword", keyword),
		zap.Int("matched", matched),
	)
	return result
}

// ListTasks writes every task front to back as "<n>. <task>", numbered from 1.
func (q *TaskQueue) ListTasks(w io.Writer) error {
	if q.k().IsEmpty() {
		_, err := fmt.Fprintln(w, EmptyQueueMessage)
		return errors.Wrap(err, "failed to list tasks")
	}

	var err error
	index := 0
	inspect(q.k(), func(t Task) bool {
		index++
		_, err = fmt.Fprintf(w, "%d. %s\n", index, t)
		return err == nil
	})
	return errors.Wrap(err, "failed to list tasks")
}

// Tasks returns a copy of the queue contents front to back.
func (q *TaskQueue) Tasks() []Task {
	var tasks []Task
	inspect(q.k(), func(t Task) bool {
		tasks = append(tasks, t)
		return true
	})
	return tasks
}

// String renders the queue as "TaskQueue[<task>, ...]" front to back.
func (q *TaskQueue) String() string {
	var sb strings.Builder
	sb.WriteString("TaskQueue[")
	first := true
	inspect(q.k(), func(t Task) bool {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
		first = false
		return true
	})
	sb.WriteString("]")
	return sb.String()
}

// Equal reports whether both queues hold equal tasks in the same order.
// Both queues are drained and restored.
func (q *TaskQueue) Equal(other *TaskQueue) bool {
	if other == nil {
		return false
	}
	if other == q || sameKernel(other.k(), q.k()) {
		return true
	}

	mine := snapshot(q.k())
	theirs := snapshot(other.k())
	if len(mine) != len(theirs) {
		return false
	}
	for i := range mine {
		if mine[i] != theirs[i] {
			return false
		}
	}
	return true
}

// Hash combines the rendering of every task in order. Equal queues hash
// equally.
func (q *TaskQueue) Hash() uint64 {
	d := xxhash.New()
	inspect(q.k(), func(t Task) bool {
		_, _ = d.WriteString(t.String())
		_, _ = d.Write([]byte{0})
		return true
	})
	return d.Sum64()
}

// AppendTo moves every task into target through target's AddTask, so target
// re-sorts them among its own. The receiver ends empty.
func (q *TaskQueue) AppendTo(target *TaskQueue) {
	if target == nil {
		violation(ErrNilQueue, "append target")
	}
	if sameKernel(target.k(), q.k()) {
		violation(ErrSelfAppend, "append into %T", q)
	}

	finish := telemetry.TraceDrain()
	moved := 0
	for !q.k().IsEmpty() {
		t := q.k().RemoveTask()
		target.k().AddTask(t.Description, t.Priority)
		moved++
	}
	finish(moved)

	q.Logger().Debug("appended tasks", zap.Int("moved", moved))
}
