// Package engine owns the task list for one session.
//
// The Engine is the single writer of task.State. Each user intent arrives as
// a task.Action through Dispatch, which:
//  1. stamps Add actions with a fresh id and creation time
//  2. applies the action with task.Apply
//  3. saves the list after every accepted mutating action
//  4. returns the freshly rendered view
//
// There is no batching, debounce or background work. Engine is not safe for
// concurrent use; front ends deliver one event at a time.
//
// Load treats a corrupt slot as empty and only logs it. Backend failures
// are returned to the caller.
package engine
