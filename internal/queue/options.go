package queue

const defaultBaseCap = 16

// Options tune the backing deque of an Ordered.
type Options struct {
	// BaseCap is the capacity the deque never shrinks below. Non-positive
	// values keep the deque's own default.
	BaseCap int
}

func defaultOptions() Options {
	return Options{
		BaseCap: defaultBaseCap,
	}
}
