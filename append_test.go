package taskqueue

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAppendAllMovesEverySource(t *testing.T) {
	target := withTasks(New(), Task{"B-medium", 5})
	a := withTasks(New(), Task{"A-high", 10}, Task{"A-low", 1})
	c := withTasks(Wrap(newSliceKernel()), Task{"C-mid", 5})

	require.NoError(t, AppendAll(context.Background(), target, a, c))

	assert.True(t, a.IsEmpty())
	assert.True(t, c.IsEmpty())

	want := []Task{{"A-high", 10}, {"B-medium", 5}, {"C-mid", 5}, {"A-low", 1}}
	if diff := cmp.Diff(want, target.Tasks()); diff != "" {
		t.Fatalf("unexpected target contents (-want +got):\n%s", diff)
	}
}

func TestAppendAllRollsBackOnCancelledContext(t *testing.T) {
	target := withTasks(New(), Task{"keep", 5})
	a := withTasks(New(), Task{"a1", 3}, Task{"a2", 3})
	b := withTasks(New(), Task{"b1", 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := AppendAll(ctx, target, a, b)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, []Task{{"keep", 5}}, target.Tasks())
	assert.Equal(t, []Task{{"a1", 3}, {"a2", 3}}, a.Tasks())
	assert.Equal(t, []Task{{"b1", 1}}, b.Tasks())
}

func TestAppendAllRestoresSourcesOnInvalidSource(t *testing.T) {
	target := New()
	a := withTasks(New(), Task{"a1", 3}, Task{"a2", 3}, Task{"a3", 7})

	err := AppendAll(context.Background(), target, a, nil)
	require.ErrorIs(t, err, ErrNilQueue)
	assert.Contains(t, err.Error(), "source 1")

	assert.True(t, target.IsEmpty())
	assert.Equal(t, []Task{{"a3", 7}, {"a1", 3}, {"a2", 3}}, a.Tasks())

	err = AppendAll(context.Background(), target, a, target)
	require.ErrorIs(t, err, ErrSelfAppend)
	assert.Equal(t, 3, a.Size())
}

func TestAppendAllNilTarget(t *testing.T) {
	err := AppendAll(context.Background(), nil, New())
	require.ErrorIs(t, err, ErrNilQueue)
}

func TestAppendAllLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	target := New(WithLogger(zap.New(core)))
	src := withTasks(New(), Task{"x", 1})

	require.NoError(t, AppendAll(context.Background(), target, src))

	entries := logs.FilterMessage("batch append staged").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["tasks"])
}
