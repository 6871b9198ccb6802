package main

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/timzifer/taskqueue"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseTaskSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    taskqueue.Task
		wantErr error
	}{
		{name: "plain", spec: "Fix bug=7", want: taskqueue.Task{Description: "Fix bug", Priority: 7}},
		{name: "spaces", spec: "  Write tests = 9 ", want: taskqueue.Task{Description: "Write tests", Priority: 9}},
		{name: "equals in description", spec: "a=b=2", want: taskqueue.Task{Description: "a=b", Priority: 2}},
		{name: "zero priority", spec: "idle=0", want: taskqueue.Task{Description: "idle", Priority: 0}},
		{name: "empty description", spec: "=3", wantErr: taskqueue.ErrEmptyDescription},
		{name: "negative priority", spec: "x=-1", wantErr: taskqueue.ErrNegativePriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTaskSpec(tt.spec)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseTaskSpec("no separator")
	assert.Error(t, err)
	_, err = parseTaskSpec("x=high")
	assert.Error(t, err)
}

func TestRunTextOutput(t *testing.T) {
	out, err := runCLI(t, "run",
		"-t", "Fix bug=7", "-t", "Write tests=9", "-t", "Update docs=3",
		"--peek", "--pop", "1")
	require.NoError(t, err)

	assert.Equal(t,
		"next: Write tests (Priority: 9)\n"+
			"removed: Write tests (Priority: 9)\n"+
			"1. Fix bug (Priority: 7)\n"+
			"2. Update docs (Priority: 3)\n",
		out)
}

func TestRunEmptyQueueText(t *testing.T) {
	out, err := runCLI(t, "run", "--peek", "--pop", "2")
	require.NoError(t, err)
	assert.Equal(t, "next: "+taskqueue.EmptyQueueMessage+"\n"+taskqueue.EmptyQueueMessage+"\n", out)
}

func TestRunJSONOutput(t *testing.T) {
	out, err := runCLI(t, "run", "-o", "json",
		"-t", "Review for Exam=4", "-t", "Clean desk=1", "--filter", "exam")
	require.NoError(t, err)

	var r report
	require.NoError(t, jsoniter.UnmarshalFromString(out, &r))
	assert.Equal(t, 1, r.Size)
	assert.Equal(t, []taskqueue.Task{{Description: "Review for Exam", Priority: 4}}, r.Tasks)
	assert.Empty(t, r.Removed)
}

func TestRunYAMLOutputFromEnv(t *testing.T) {
	t.Setenv("TASKQUEUE_OUTPUT", "yaml")

	out, err := runCLI(t, "run", "-t", "a=1", "-t", "b=2", "--pop", "1")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, 1, r.Size)
	assert.Equal(t, []taskqueue.Task{{Description: "b", Priority: 2}}, r.Removed)
	assert.Equal(t, []taskqueue.Task{{Description: "a", Priority: 1}}, r.Tasks)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := runCLI(t, "run", "-t", "=3")
	assert.ErrorIs(t, err, taskqueue.ErrEmptyDescription)

	_, err = runCLI(t, "run", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = runCLI(t, "run", "--pop", "-1")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := runCLI(t, "demo")
	require.NoError(t, err)

	assert.Equal(t,
		"Write unit tests (Priority: 9)\n"+
			"Fix bug #123 (Priority: 7)\n"+
			"Update README (Priority: 3)\n"+
			"After append, a empty? true\n"+
			"b contents: TaskQueue[A-high (Priority: 10), B-medium (Priority: 5), A-low (Priority: 1)]\n"+
			"b equals c? true\n",
		out)
}
