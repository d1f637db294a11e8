// Package task holds the task list state and the pure functions that change
// and project it.
//
// This package has no knowledge of storage or presentation. All other
// internal packages import task; task imports nothing internal.
//
// Key constraints:
//   - Apply never mutates the State it is given; every change returns a
//     fresh slice (copy-on-write)
//   - The list is newest-first: Add prepends
//   - Task ids are unique within a list
//   - Filtering is a projection, never stored back into the list
package task
