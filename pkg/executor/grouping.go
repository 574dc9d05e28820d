package executor

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// resourceArgKeys are the argument names that identify a shared resource.
// Calls sharing a signature built from these are assumed dependent and run
// sequentially within a group.
var resourceArgKeys = []string{
	"service", "services", "log-group", "logGroup", "log_group",
	"cluster", "namespace", "region",
}

// TimeoutError marks a call that exceeded the per-call timeout.
type TimeoutError struct {
	Tool    string
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("tool %s timed out after %s", e.Tool, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Cause }

// GroupByResource partitions tasks by resource signature: tool name plus the
// sorted values of any resource-identifying arguments. Tasks without any
// resource argument form singleton groups (treated as independent). Group
// order is deterministic: by first appearance in the task list.
func GroupByResource(tasks []Task) [][]Task {
	type group struct {
		order int
		tasks []Task
	}
	groups := make(map[string]*group)
	var keys []string

	for i, task := range tasks {
		sig := resourceSignature(task)
		if sig == "" {
			// No shared resource: synthesize a unique signature.
			sig = fmt.Sprintf("_solo_%d", i)
		}
		g, ok := groups[sig]
		if !ok {
			g = &group{order: len(keys)}
			groups[sig] = g
			keys = append(keys, sig)
		}
		g.tasks = append(g.tasks, task)
	}

	out := make([][]Task, len(keys))
	for _, sig := range keys {
		g := groups[sig]
		out[g.order] = g.tasks
	}
	return out
}

// resourceSignature returns "" when the call names no shared resource.
func resourceSignature(task Task) string {
	var parts []string
	for _, key := range resourceArgKeys {
		v, ok := task.Call.Args[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case []any:
			items := make([]string, len(val))
			for i, item := range val {
				items[i] = fmt.Sprintf("%v", item)
			}
			sort.Strings(items)
			parts = append(parts, key+"="+strings.Join(items, "+"))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", key, val))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sort.Strings(parts)
	return task.Call.Name + "|" + strings.Join(parts, "|")
}
