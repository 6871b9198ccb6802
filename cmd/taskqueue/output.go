package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/timzifer/taskqueue"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

// report is what the run command prints.
type report struct {
	Size    int              `json:"size" yaml:"size"`
	Peek    string           `json:"peek,omitempty" yaml:"peek,omitempty"`
	Removed []taskqueue.Task `json:"removed,omitempty" yaml:"removed,omitempty"`
	Tasks   []taskqueue.Task `json:"tasks" yaml:"tasks"`
}

func newReport(q *taskqueue.TaskQueue) report {
	tasks := q.Tasks()
	if tasks == nil {
		tasks = []taskqueue.Task{}
	}
	return report{Size: q.Size(), Tasks: tasks}
}

func writeReport(w io.Writer, f format, r report, q *taskqueue.TaskQueue) error {
	switch f {
	case formatJSON:
		buf, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "failed to marshal report")
		}
		_, err = w.Write(pretty.Pretty(buf))
		return errors.Wrap(err, "failed to write report")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		return errors.Wrap(enc.Close(), "failed to flush report")
	default:
		if r.Peek != "" {
			if _, err := fmt.Fprintf(w, "next: %s\n", r.Peek); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}
		for _, t := range r.Removed {
			if _, err := fmt.Fprintf(w, "removed: %s\n", t); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}
		return q.ListTasks(w)
	}
}
