package trace

import "math"

// Record captures one Newton iteration: the iterate, the residual there,
// and infinity norms of the residual and of the step from the previous
// iterate.
type Record struct {
	Iter         int
	X            []float64
	FX           []float64
	ResidualNorm float64
	StepNorm     float64
}

// Recorder is a newton.Observer collecting per-iteration records. The
// solver may reuse the slices it hands out, so everything is copied.
type Recorder struct {
	records []Record
	last    []float64
}

func NewRecorder() *Recorder {
	return &Recorder{records: make([]Record, 0, 32)}
}

func (r *Recorder) OnIteration(iter int, x, fx []float64) {
	rec := Record{
		Iter:         iter,
		X:            append([]float64(nil), x...),
		FX:           append([]float64(nil), fx...),
		ResidualNorm: normInf(fx),
	}
	if r.last != nil {
		rec.StepNorm = maxAbsDiff(x, r.last)
	}
	r.last = rec.X
	r.records = append(r.records, rec)
}

func (r *Recorder) Records() []Record {
	return r.records
}

// ResidualNorms returns the residual norm series, handy for plotting.
func (r *Recorder) ResidualNorms() []float64 {
	out := make([]float64, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.ResidualNorm
	}
	return out
}

func normInf(v []float64) float64 {
	max := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}

func maxAbsDiff(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
