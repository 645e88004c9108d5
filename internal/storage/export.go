package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/rootfind/internal/trace"
)

type ExportData struct {
	ID            string      `json:"id"`
	Problem       string      `json:"problem"`
	Strategy      string      `json:"strategy"`
	Tolerance     float64     `json:"tolerance"`
	MaxIter       int         `json:"max_iter"`
	Converged     bool        `json:"converged"`
	Iterations    int         `json:"iterations"`
	Root          []float64   `json:"root"`
	Iterates      [][]float64 `json:"iterates"`
	ResidualNorms []float64   `json:"residual_norms"`
}

// ExportJSON writes a run, including its full iterate history, as indented
// JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, records []trace.Record) error {
	data := ExportData{
		ID:         meta.ID,
		Problem:    meta.Problem,
		Strategy:   meta.Strategy,
		Tolerance:  meta.Tolerance,
		MaxIter:    meta.MaxIter,
		Converged:  meta.Converged,
		Iterations: meta.Iterations,
		Root:       meta.Root,
	}

	data.Iterates = make([][]float64, len(records))
	data.ResidualNorms = make([]float64, len(records))
	for i, rec := range records {
		data.Iterates[i] = rec.X
		data.ResidualNorms[i] = rec.ResidualNorm
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONStdout is ExportJSON to standard output, loading the iterate
// history back from the saved run.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	iterates, norms, err := s.LoadIterations(runID)
	if err != nil {
		return err
	}

	records := make([]trace.Record, len(iterates))
	for i, x := range iterates {
		records[i] = trace.Record{Iter: i, X: x, ResidualNorm: norms[i]}
	}
	return ExportJSON(os.Stdout, meta, records)
}
