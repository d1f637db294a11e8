package task

// Filtered returns the tasks visible under the state's filter, in list order.
func Filtered(s State) []Task {
	f := s.CurrentFilter()
	if f == FilterAll {
		return s.Tasks
	}
	want := f == FilterCompleted
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Completed == want {
			out = append(out, t)
		}
	}
	return out
}

// ActiveCount returns the number of incomplete tasks.
func ActiveCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// HasCompleted reports whether any task is completed.
func HasCompleted(tasks []Task) bool {
	return ActiveCount(tasks) != len(tasks)
}
