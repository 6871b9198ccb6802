// Package taskqueue provides a priority-ordered task container.
//
// A queue holds (description, priority) tasks in non-increasing priority
// order; tasks sharing a priority leave in the order they were added. The
// package is split in two layers:
//
//   - Kernel is the primitive surface: AddTask, RemoveTask, IsEmpty,
//     TransferFrom, NewInstance and Clear. SortedQueue is the default kernel.
//   - TaskQueue builds everything else (Size, Peek, Contains,
//     FilterByKeyword, ListTasks, String, Equal, Hash, AppendTo) from those
//     primitives by draining the kernel into a scratch peer and transferring
//     the scratch back. Pure reads skip the drain when the kernel implements
//     Inspector.
//
// Precondition violations (empty description, negative priority, removing
// from an empty queue, transferring a queue into itself or from another kind
// of kernel) panic with an error wrapping one of the Err* sentinels. Peek,
// PeekTask and Dequeue treat an empty queue as a normal outcome.
//
// Queues are not safe for concurrent use.
package taskqueue
