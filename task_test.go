package taskqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("Write report", 5)
	require.NoError(t, err)
	assert.Equal(t, Task{Description: "Write report", Priority: 5}, task)
	assert.Equal(t, "Write report (Priority: 5)", task.String())

	_, err = NewTask("", 1)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewTask("Bad", -1)
	assert.ErrorIs(t, err, ErrNegativePriority)
	assert.Contains(t, err.Error(), "priority -1")
}

func TestTaskEqualityIsStructural(t *testing.T) {
	a := Task{Description: "x", Priority: 1}
	assert.True(t, a == Task{Description: "x", Priority: 1})
	assert.False(t, a == Task{Description: "x", Priority: 2})
	assert.False(t, a == Task{Description: "X", Priority: 1})
}

func TestDelimiterInDescriptionSurvivesDrain(t *testing.T) {
	q := Wrap(newSliceKernel())
	q.AddTask("odd (Priority: 99) name", 2)
	q.AddTask("plain", 1)

	assert.Equal(t, 2, q.Size())
	assert.Equal(t, []Task{{"odd (Priority: 99) name", 2}, {"plain", 1}}, q.Tasks())
}

func TestValidateRejectsBlankAndInvalidDescriptions(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{name: "spaces", description: "   ", wantErr: ErrEmptyDescription},
		{name: "tabs and newlines", description: "\t\n", wantErr: ErrEmptyDescription},
		{name: "invalid utf-8", description: "bad \xff byte", wantErr: ErrInvalidDescription},
		{name: "padded text", description: "  ok  "},
		{name: "unicode", description: "Straße fegen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.description, 1)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	requireViolation(t, ErrEmptyDescription, func() { New().AddTask(" ", 1) })
	requireViolation(t, ErrInvalidDescription, func() { New().AddTask("\xc3", 1) })
}
