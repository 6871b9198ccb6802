package taskqueue

import (
	"fmt"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

// Task is a unit of work. Higher priorities are more urgent. Tasks compare
// structurally with ==.
type Task struct {
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// NewTask validates description and priority and returns the task.
func NewTask(description string, priority int) (Task, error) {
	if err := Validate(description, priority); err != nil {
		return Task{}, err
	}
	return Task{Description: description, Priority: priority}, nil
}

// Validate reports whether description and priority are acceptable to AddTask.
// A description made only of whitespace counts as empty.
func Validate(description string, priority int) error {
	if govalidator.IsNull(description) || govalidator.HasWhitespaceOnly(description) {
		return errors.WithStack(ErrEmptyDescription)
	}
	if !utf8.ValidString(description) {
		return errors.Wrapf(ErrInvalidDescription, "description %q", description)
	}
	if priority < 0 {
		return errors.Wrapf(ErrNegativePriority, "priority %d", priority)
	}
	return nil
}

// String renders the task for display only; nothing parses it back.
func (t Task) String() string {
	return fmt.Sprintf("%s (Priority: %d)", t.Description, t.Priority)
}

func taskPriority(t Task) int {
	return t.Priority
}
