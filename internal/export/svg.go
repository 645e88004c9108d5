package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// ConvergenceSVG renders the residual-norm history of a solve as a
// log-scaled polyline.
func ConvergenceSVG(norms []float64, width, height int, strokeColor string) string {
	if len(norms) < 2 {
		return ""
	}

	logs := make([]float64, len(norms))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, v := range norms {
		logs[i] = math.Log10(v + 1e-300)
		if math.IsNaN(logs[i]) || math.IsInf(logs[i], 0) {
			logs[i] = 300
		}
		if logs[i] < minY {
			minY = logs[i]
		}
		if logs[i] > maxY {
			maxY = logs[i]
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range logs {
		x := float64(i) / float64(len(logs)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// WriteConvergenceSVG renders and writes the plot to path.
func WriteConvergenceSVG(path string, norms []float64, width, height int) error {
	svg := ConvergenceSVG(norms, width, height, "#00ff00")
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
