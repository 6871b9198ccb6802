package taskqueue

import "github.com/timzifer/taskqueue/internal/telemetry"

// drain empties k through RemoveTask, hands every task to visit, rebuilds
// them in a scratch peer and transfers the scratch back into k. k ends in the
// state it started in. It returns the number of tasks moved.
func drain(k Kernel, visit func(Task)) int {
	finish := telemetry.TraceDrain()

	scratch := k.NewInstance()
	n := 0
	for !k.IsEmpty() {
		t := k.RemoveTask()
		scratch.AddTask(t.Description, t.Priority)
		visit(t)
		n++
	}
	k.TransferFrom(scratch)

	finish(n)
	return n
}

// inspect walks k front to back until visit returns false. Kernels that
// implement Inspector are read in place; any other kernel is drained and
// restored, and the remaining tasks are skipped once visit stops.
func inspect(k Kernel, visit func(Task) bool) {
	if in, ok := k.(Inspector); ok {
		telemetry.TraceInspect()
		in.Range(visit)
		return
	}

	stopped := false
	drain(k, func(t Task) {
		if !stopped && !visit(t) {
			stopped = true
		}
	})
}

func snapshot(k Kernel) []Task {
	var tasks []Task
	drain(k, func(t Task) {
		tasks = append(tasks, t)
	})
	return tasks
}
