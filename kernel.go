package taskqueue

import "reflect"

// Kernel is the primitive surface every task queue provides. All derived
// operations on TaskQueue are written against it alone.
//
// Implementations need not be comparable; a kernel backed by a map works.
type Kernel interface {
	// AddTask inserts a task before the first task of strictly lower
	// priority. It panics if description is empty or priority is negative.
	AddTask(description string, priority int)
	// RemoveTask removes and returns the highest-priority task, the earliest
	// added among equals. It panics on an empty queue.
	RemoveTask() Task
	IsEmpty() bool
	// TransferFrom moves the contents of source into the receiver, discarding
	// what the receiver held. source is left empty.
	TransferFrom(source Kernel)
	// NewInstance returns an empty queue of the receiver's concrete kind.
	NewInstance() Kernel
	Clear()
}

// Inspector is implemented by kernels that can serve read-only queries
// without being drained. Range must not expose storage for mutation.
type Inspector interface {
	Len() int
	Front() (Task, bool)
	Range(fn func(Task) bool)
}

// unwrapKernel returns the kernel behind a *TaskQueue, or k itself. A nil
// *TaskQueue unwraps to nil.
func unwrapKernel(k Kernel) Kernel {
	if tq, ok := k.(*TaskQueue); ok {
		if tq == nil {
			return nil
		}
		return tq.kernel
	}
	return k
}

// isNilKernel reports whether k is nil or a typed nil pointer or map.
func isNilKernel(k Kernel) bool {
	if k == nil {
		return true
	}
	v := reflect.ValueOf(k)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// sameKernel reports whether a and b are the same kernel. Map kernels are
// the same when they share storage. Other kernels whose values cannot be
// compared are never the same, so == is never applied to them.
func sameKernel(a, b Kernel) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Map {
		return va.Pointer() == vb.Pointer()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

var (
	_ Kernel    = (*SortedQueue)(nil)
	_ Inspector = (*SortedQueue)(nil)
	_ Kernel    = (*TaskQueue)(nil)
)
