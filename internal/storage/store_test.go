package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rootfind/internal/newton"
	"github.com/san-kum/rootfind/internal/trace"
)

func sampleRun() (newton.Options, newton.Result, *trace.Recorder) {
	opts := newton.Options{Tolerance: 1e-10, MaxIter: 100, Strategy: newton.Inverse}
	result := newton.Result{Root: []float64{2, 3}, Converged: true, Iterations: 2}

	rec := trace.NewRecorder()
	rec.OnIteration(0, []float64{0, 0}, []float64{-9, -8})
	rec.OnIteration(1, []float64{2, 3}, []float64{0, 0})
	return opts, result, rec
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	opts, result, rec := sampleRun()
	runID, err := st.Save("linear2", opts, result, rec)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Problem != "linear2" {
		t.Errorf("expected problem linear2, got %s", meta.Problem)
	}
	if meta.Strategy != "inverse" {
		t.Errorf("expected strategy inverse, got %s", meta.Strategy)
	}
	if !meta.Converged || meta.Iterations != 2 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if len(meta.Root) != 2 || meta.Root[0] != 2 || meta.Root[1] != 3 {
		t.Errorf("unexpected root: %v", meta.Root)
	}

	iterates, norms, err := st.LoadIterations(runID)
	if err != nil {
		t.Fatalf("load iterations failed: %v", err)
	}
	if len(iterates) != 2 || len(norms) != 2 {
		t.Fatalf("expected 2 iterates, got %d", len(iterates))
	}
	if iterates[1][0] != 2 || iterates[1][1] != 3 {
		t.Errorf("unexpected iterate: %v", iterates[1])
	}
	if norms[0] != 9 {
		t.Errorf("expected residual norm 9, got %g", norms[0])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	opts, result, rec := sampleRun()
	if _, err := st.Save("linear2", opts, result, rec); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	opts, result, rec := sampleRun()
	runID, err := st.Save("linear2", opts, result, rec)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "iterations.csv")); os.IsNotExist(err) {
		t.Error("iterations.csv not created")
	}
}
