package problems

import (
	"math"
	"testing"

	"github.com/san-kum/rootfind/internal/newton"
)

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()

	p, err := reg.Get("sine")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Name != "sine" || p.Dim != 1 {
		t.Errorf("unexpected problem: %+v", p)
	}

	if _, err := reg.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	list := reg.List()
	if len(list) < 5 {
		t.Fatalf("expected at least 5 problems, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("list not sorted: %s before %s", list[i-1].Name, list[i].Name)
		}
	}
}

func TestProblemShapes(t *testing.T) {
	for _, p := range NewRegistry().List() {
		if len(p.X0) != p.Dim {
			t.Errorf("%s: default guess has length %d, dim is %d", p.Name, len(p.X0), p.Dim)
		}
		if p.Dim == 1 && p.Scalar == nil {
			t.Errorf("%s: scalar problem without Scalar func", p.Name)
		}
		if p.Dim > 1 && p.F == nil {
			t.Errorf("%s: vector problem without F", p.Name)
		}
	}
}

func TestKnownRoots(t *testing.T) {
	for _, p := range NewRegistry().List() {
		if p.Root == nil {
			continue
		}
		fx, err := p.Residual(p.Root)
		if err != nil {
			t.Fatalf("%s: residual failed: %v", p.Name, err)
		}
		for i, v := range fx {
			if math.Abs(v) > 1e-12 {
				t.Errorf("%s: residual at known root, component %d = %g", p.Name, i, v)
			}
		}
	}
}

func TestSolveScalarProblem(t *testing.T) {
	p := NewCube()
	res, err := p.Solve(nil, newton.Options{Tolerance: 1e-12})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence")
	}
	if math.Abs(res.Root[0]-2) > 1e-10 {
		t.Errorf("root = %g, want 2", res.Root[0])
	}
}

func TestSolveVectorProblem(t *testing.T) {
	p := NewLinear2()
	res, err := p.Solve(nil, newton.Options{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence")
	}
	if math.Abs(res.Root[0]-2) > 1e-9 || math.Abs(res.Root[1]-3) > 1e-9 {
		t.Errorf("root = %v, want (2,3)", res.Root)
	}
}

func TestSolveGuessDimension(t *testing.T) {
	p := NewLinear2()
	if _, err := p.Solve([]float64{1}, newton.Options{}); err == nil {
		t.Error("expected error for wrong guess dimension")
	}
}

func TestRosenbrockGradientRoot(t *testing.T) {
	p := NewRosenbrock()
	res, err := p.Solve(nil, newton.Options{})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence near the valley floor")
	}
	if math.Abs(res.Root[0]-1) > 1e-6 || math.Abs(res.Root[1]-1) > 1e-6 {
		t.Errorf("root = %v, want (1,1)", res.Root)
	}
}
