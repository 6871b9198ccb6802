package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timzifer/taskqueue"
)

// demo priorities
const (
	bugPriority    = 7
	testsPriority  = 9
	readmePriority = 3

	highPriority   = 10
	mediumPriority = 5
	lowPriority    = 1
)

func newDemoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the ordering and batch-append demos.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer func() { _ = logger.Sync() }()

			w := cmd.OutOrStdout()
			if err := orderingDemo(w, logger); err != nil {
				return err
			}
			return batchAppendDemo(cmd.Context(), w, logger)
		},
	}
}

func orderingDemo(w io.Writer, logger *zap.Logger) error {
	q := taskqueue.New(taskqueue.WithLogger(logger))
	q.AddTask("Fix bug #123", bugPriority)
	q.AddTask("Write unit tests", testsPriority)
	q.AddTask("Update README", readmePriority)

	for !q.IsEmpty() {
		if _, err := fmt.Fprintln(w, q.RemoveTask()); err != nil {
			return errors.Wrap(err, "failed to write demo output")
		}
	}
	return nil
}

func batchAppendDemo(ctx context.Context, w io.Writer, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a := taskqueue.New(taskqueue.WithLogger(logger))
	b := taskqueue.New(taskqueue.WithLogger(logger))
	a.AddTask("A-high", highPriority)
	a.AddTask("A-low", lowPriority)
	b.AddTask("B-medium", mediumPriority)

	if err := taskqueue.AppendAll(ctx, b, a); err != nil {
		return errors.Wrap(err, "batch append failed")
	}

	c := taskqueue.New()
	c.AddTask("B-medium", mediumPriority)
	c.AddTask("A-high", highPriority)
	c.AddTask("A-low", lowPriority)

	_, err := fmt.Fprintf(w, "After append, a empty? %t\nb contents: %s\nb equals c? %t\n",
		a.IsEmpty(), b, b.Equal(c))
	return errors.Wrap(err, "failed to write demo output")
}
