package taskqueue

import (
	"go.uber.org/zap"

	"github.com/timzifer/taskqueue/internal/queue"
)

type options struct {
	logger  *zap.Logger
	baseCap int
}

// Option configures New, Wrap and NewSortedQueue.
type Option func(*options)

// WithLogger sets the logger used by derived operations. Kernels ignore it.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBaseCapacity sets the capacity the kernel's storage never shrinks below.
func WithBaseCapacity(n int) Option {
	return func(o *options) {
		o.baseCap = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) storage() []queue.OrderedOption[Task] {
	if o.baseCap <= 0 {
		return nil
	}
	return []queue.OrderedOption[Task]{
		queue.WithOptions[Task](queue.Options{BaseCap: o.baseCap}),
	}
}
