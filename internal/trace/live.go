package trace

import (
	"fmt"
	"time"
)

// LiveRenderer prints each iteration as it happens, rate-limited so fast
// solves do not flood the terminal. It implements newton.Observer.
type LiveRenderer struct {
	frameRate int
	lastFrame time.Time
}

func NewLiveRenderer(frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{frameRate: frameRate}
}

func (r *LiveRenderer) OnIteration(iter int, x, fx []float64) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	fmt.Printf("iter %4d  x = %v  |f| = %.3e\n", iter, x, normInf(fx))
}
