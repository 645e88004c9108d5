package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/rootfind/internal/newton"
	"github.com/san-kum/rootfind/internal/trace"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Problem    string    `json:"problem"`
	Strategy   string    `json:"strategy"`
	Timestamp  time.Time `json:"timestamp"`
	Tolerance  float64   `json:"tolerance"`
	MaxIter    int       `json:"max_iter"`
	Compiled   bool      `json:"compiled"`
	Converged  bool      `json:"converged"`
	Iterations int       `json:"iterations"`
	Root       []float64 `json:"root"`
}

// Save writes one solve run as a directory holding metadata.json and
// iterations.csv, returning the run ID.
func (s *Store) Save(problem string, opts newton.Options, result newton.Result, rec *trace.Recorder) (string, error) {
	runID := fmt.Sprintf("%s_%d", problem, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Problem:    problem,
		Strategy:   opts.Strategy.String(),
		Timestamp:  time.Now(),
		Tolerance:  opts.Tolerance,
		MaxIter:    opts.MaxIter,
		Compiled:   opts.Compiled,
		Converged:  result.Converged,
		Iterations: result.Iterations,
		Root:       result.Root,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "iterations.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	records := rec.Records()
	if len(records) == 0 {
		return runID, nil
	}

	header := []string{"iter"}
	for i := range records[0].X {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := range records[0].FX {
		header = append(header, fmt.Sprintf("f%d", i))
	}
	header = append(header, "residual_norm", "step_norm")

	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range records {
		row := []string{strconv.Itoa(rec.Iter)}
		for _, val := range rec.X {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		for _, val := range rec.FX {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		row = append(row,
			strconv.FormatFloat(rec.ResidualNorm, 'g', -1, 64),
			strconv.FormatFloat(rec.StepNorm, 'g', -1, 64))

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadIterations reads back the iterate rows and residual norms of a
// saved run.
func (s *Store) LoadIterations(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "iterations.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	dim := 0
	for _, col := range records[0][1:] {
		if len(col) > 0 && col[0] == 'x' {
			dim++
		}
	}

	iterates := make([][]float64, 0, len(records)-1)
	norms := make([]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 1+dim {
			continue
		}

		x := make([]float64, 0, dim)
		for j := 1; j <= dim; j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			x = append(x, val)
		}
		iterates = append(iterates, x)

		norm := 0.0
		if len(record) >= 2 {
			if val, err := strconv.ParseFloat(record[len(record)-2], 64); err == nil {
				norm = val
			}
		}
		norms = append(norms, norm)
	}

	return iterates, norms, nil
}
