package queue

import (
	"sort"

	"github.com/gammazero/deque"
)

type orderedOptions[T any] struct {
	options Options
	initial []T
}

type OrderedOption[T any] func(*orderedOptions[T])

// WithOptions replaces the storage options of an Ordered.
func WithOptions[T any](opts Options) OrderedOption[T] {
	return func(o *orderedOptions[T]) {
		o.options = opts
	}
}

// WithInitial inserts values in the given order right after construction.
func WithInitial[T any](values ...T) OrderedOption[T] {
	return func(o *orderedOptions[T]) {
		o.initial = append(o.initial[:0], values...)
	}
}

// Ordered keeps values sorted by non-increasing rank. Values of equal rank
// stay in insertion order.
type Ordered[T any] struct {
	items *deque.Deque[T]
	rank  func(T) int
	opts  Options
}

func NewOrdered[T any](rank func(T) int, options ...OrderedOption[T]) *Ordered[T] {
	cfg := orderedOptions[T]{options: defaultOptions()}
	for _, opt := range options {
		opt(&cfg)
	}

	o := &Ordered[T]{
		rank: rank,
		opts: cfg.options,
	}
	o.items = o.newDeque()

	for _, v := range cfg.initial {
		o.Insert(v)
	}

	return o
}

func (o *Ordered[T]) newDeque() *deque.Deque[T] {
	d := &deque.Deque[T]{}
	if o.opts.BaseCap > 0 {
		d.SetBaseCap(o.opts.BaseCap)
	}
	return d
}

// Options returns the storage options the Ordered was built with.
func (o *Ordered[T]) Options() Options {
	return o.opts
}

// Insert places v before the first value of strictly lower rank and returns
// the position it landed on.
func (o *Ordered[T]) Insert(v T) int {
	r := o.rank(v)
	n := o.items.Len()
	at := sort.Search(n, func(i int) bool {
		return o.rank(o.items.At(i)) < r
	})

	if at == n {
		o.items.PushBack(v)
	} else {
		o.items.Insert(at, v)
	}
	return at
}

func (o *Ordered[T]) PopFront() (zero T, _ bool) {
	if o.items.Len() == 0 {
		return zero, false
	}
	return o.items.PopFront(), true
}

func (o *Ordered[T]) Front() (zero T, _ bool) {
	if o.items.Len() == 0 {
		return zero, false
	}
	return o.items.Front(), true
}

func (o *Ordered[T]) Len() int {
	return o.items.Len()
}

// Range calls fn for every value front to back until fn returns false.
func (o *Ordered[T]) Range(fn func(int, T) bool) {
	for i := 0; i < o.items.Len(); i++ {
		if !fn(i, o.items.At(i)) {
			return
		}
	}
}

// Detach moves the backing storage into a new Ordered and leaves the
// receiver empty with fresh storage. The two never share a deque.
func (o *Ordered[T]) Detach() *Ordered[T] {
	moved := &Ordered[T]{
		items: o.items,
		rank:  o.rank,
		opts:  o.opts,
	}
	o.items = o.newDeque()
	return moved
}

func (o *Ordered[T]) Reset() {
	o.items = o.newDeque()
}

// Sorted reports whether adjacent values are in non-increasing rank order.
func (o *Ordered[T]) Sorted() bool {
	for i := 1; i < o.items.Len(); i++ {
		if o.rank(o.items.At(i-1)) < o.rank(o.items.At(i)) {
			return false
		}
	}
	return true
}
