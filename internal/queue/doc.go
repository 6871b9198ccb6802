// Package queue provides rank-ordered storage for the task queue kernel.
//
// Values are kept in non-increasing rank order. Insert places a value before
// the first value of strictly lower rank, so values sharing a rank leave in
// the order they arrived.
//
// Detach implements ownership transfer: the backing deque moves to a new
// Ordered and the receiver gets fresh, empty storage. No two Ordered values
// ever share a deque.
//
// Ordered is not safe for concurrent use.
package queue
