package problems

import (
	"fmt"
	"sort"
)

// Registry maps problem names to factories, so CLI and TUI layers can
// build targets by name.
type Registry struct {
	problems map[string]func() *Problem
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]func() *Problem)}

	r.problems["sine"] = NewSine
	r.problems["cube"] = NewCube
	r.problems["noroot"] = NewNoRoot
	r.problems["parabola"] = NewParabola
	r.problems["linear2"] = NewLinear2
	r.problems["coupled2"] = NewCoupled2
	r.problems["rosenbrock"] = NewRosenbrock

	return r
}

func (r *Registry) Get(name string) (*Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []*Problem {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Problem, 0, len(names))
	for _, name := range names {
		out = append(out, r.problems[name]())
	}
	return out
}
