package taskqueue

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/timzifer/taskqueue/internal/core"
)

// AppendAll moves the tasks of every source into target, all or nothing.
//
// Every source is drained into a staging area first. If the context is
// cancelled or a source is nil, zero or shares target's kernel, the staged
// sources are refilled in reverse order, target is left untouched and the error is
// returned. Otherwise all staged tasks are added to target and every source
// ends empty.
func AppendAll(ctx context.Context, target *TaskQueue, sources ...*TaskQueue) error {
	if target == nil || target.kernel == nil {
		return errors.Wrap(ErrNilQueue, "append target")
	}

	o := core.NewAppendOrchestrator()
	for i, src := range sources {
		if err := o.RegisterSource(appendSource{index: i, source: src, target: target}); err != nil {
			return err
		}
	}

	l := target.Logger()
	ctx = core.WithObserver(ctx, func(staged int, err error) {
		if err != nil {
			l.Debug("batch append rolled back", zap.Int("sources", len(sources)), zap.Error(err))
			return
		}
		l.Debug("batch append staged", zap.Int("sources", len(sources)), zap.Int("tasks", staged))
	})

	_, err := o.AppendAll(ctx)
	return err
}

type appendSource struct {
	index  int
	source *TaskQueue
	target *TaskQueue
}

func (s appendSource) PrepareAppend(ctx context.Context) (int, func(), func(), error) {
	if s.source == nil || s.source.kernel == nil {
		return 0, nil, nil, errors.Wrapf(ErrNilQueue, "source %d", s.index)
	}
	if sameKernel(s.source.kernel, s.target.kernel) {
		return 0, nil, nil, errors.Wrapf(ErrSelfAppend, "source %d", s.index)
	}

	var staged []Task
	for !s.source.kernel.IsEmpty() {
		staged = append(staged, s.source.kernel.RemoveTask())
	}

	publish := func() {
		for _, t := range staged {
			s.target.kernel.AddTask(t.Description, t.Priority)
		}
	}
	abort := func() {
		for _, t := range staged {
			s.source.kernel.AddTask(t.Description, t.Priority)
		}
	}
	return len(staged), publish, abort, nil
}
