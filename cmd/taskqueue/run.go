package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timzifer/taskqueue"
)

type runOptions struct {
	tasks  []string
	filter string
	peek   bool
	pop    int
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a queue from --task flags and apply the requested operations.",
		Example: `  taskqueue run -t "Fix bug=7" -t "Write tests=9" -t "Update docs=3" --pop 1
  taskqueue run -t "Review for Exam=4" -t "Clean desk=1" --filter exam -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(v)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer func() { _ = logger.Sync() }()

			q, r, err := execute(opts, logger)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), f, r, q)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.tasks, "task", "t", nil, `task to add, as "<description>=<priority>" (repeatable)`)
	cmd.Flags().StringVar(&opts.filter, "filter", "", "keep only tasks whose description contains this keyword")
	cmd.Flags().BoolVar(&opts.peek, "peek", false, "report the highest-priority task")
	cmd.Flags().IntVar(&opts.pop, "pop", 0, "remove this many highest-priority tasks")

	return cmd
}

func execute(opts runOptions, logger *zap.Logger) (*taskqueue.TaskQueue, report, error) {
	if opts.pop < 0 {
		return nil, report{}, errors.Errorf("--pop must not be negative, got %d", opts.pop)
	}

	q := taskqueue.New(taskqueue.WithLogger(logger))
	for _, spec := range opts.tasks {
		t, err := parseTaskSpec(spec)
		if err != nil {
			return nil, report{}, err
		}
		q.AddTask(t.Description, t.Priority)
	}
	logger.Debug("queue built", zap.Int("tasks", q.Size()))

	if opts.filter != "" {
		q = q.FilterByKeyword(opts.filter)
	}

	var peek string
	if opts.peek {
		peek = q.Peek()
	}

	var removed []taskqueue.Task
	for i := 0; i < opts.pop; i++ {
		t, ok := q.Dequeue()
		if !ok {
			logger.Warn("queue exhausted before --pop count", zap.Int("requested", opts.pop), zap.Int("removed", i))
			break
		}
		removed = append(removed, t)
	}

	r := newReport(q)
	r.Peek = peek
	r.Removed = removed
	return q, r, nil
}

// parseTaskSpec splits "<description>=<priority>" at the last '='.
func parseTaskSpec(spec string) (taskqueue.Task, error) {
	idx := strings.LastIndex(spec, "=")
	if idx < 0 {
		return taskqueue.Task{}, errors.Errorf("task %q: expected <description>=<priority>", spec)
	}

	description := strings.TrimSpace(spec[:idx])
	priority, err := strconv.Atoi(strings.TrimSpace(spec[idx+1:]))
	if err != nil {
		return taskqueue.Task{}, errors.Wrapf(err, "task %q: invalid priority", spec)
	}

	t, err := taskqueue.NewTask(description, priority)
	return t, errors.Wrapf(err, "task %q", spec)
}
