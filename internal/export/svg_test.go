package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvergenceSVG(t *testing.T) {
	norms := []float64{1, 1e-2, 1e-5, 1e-11}
	svg := ConvergenceSVG(norms, 400, 200, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("missing path element")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestConvergenceSVGTooShort(t *testing.T) {
	if svg := ConvergenceSVG([]float64{1}, 400, 200, "#fff"); svg != "" {
		t.Error("expected empty output for a single sample")
	}
}

func TestWriteConvergenceSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.svg")
	if err := WriteConvergenceSVG(path, []float64{1, 0.1, 0.001}, 400, 200); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "svg") {
		t.Error("file does not look like svg")
	}
}
