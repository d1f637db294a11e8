// Package view derives what the user sees from a task.State.
//
// Render is pure: the same state always yields the same View, and nothing
// here reads storage or mutates state. The whole view is rebuilt on every
// change; there is no diffing.
package view
