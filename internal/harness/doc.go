// Package harness runs scripted task list sessions and checks what the user
// would see after each step.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	ids: [t1, t2]            # optional; defaults to t1, t2, ...
//	initial_slot: '[...]'    # optional raw slot value before the first load
//	steps:
//	  - add: Buy milk
//	  - toggle: t1           # id or 1-based list position
//	  - filter: completed
//	    expect:
//	      visible: [Buy milk]
//	      counter: 1 task left
//	  - reload: true         # fresh engine over the same slot
//
// Each step holds at most one action: add, delete, toggle, clear_completed,
// filter or reload. A step with only expect checks the current state.
//
// # Expectations
//
//   - tasks: texts of the whole list, in order
//   - visible: texts of the rendered items, in order
//   - completed: texts of the completed tasks, in order
//   - counter: the counter line
//   - filter: the active filter
//
// An expectation field left out is not checked; an empty list checks for
// emptiness.
//
// # Golden Traces
//
// RunWithGolden compares the step trace with testdata/golden/<name>.golden.
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
