// Package metrics accumulates per-step training statistics for reporting.
package metrics

import "time"

// Window accumulates loss and timing stats across training steps.
type Window struct {
	samples  int
	steps    int
	compute  time.Duration
	lossSum  float64
	lastLoss float64
}

// Record adds a new step measurement to the window.
func (w *Window) Record(batchSize int, computeTime time.Duration, loss float64) {
	w.samples += batchSize
	w.steps++
	w.compute += computeTime
	w.lossSum += loss
	w.lastLoss = loss
}

// Steps returns the number of steps recorded since the last snapshot.
func (w *Window) Steps() int {
	return w.steps
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{LastLoss: w.lastLoss}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.steps > 0 {
		snap.AvgStepMS = (w.compute.Seconds() * 1000) / float64(w.steps)
		snap.MeanLoss = w.lossSum / float64(w.steps)
	}

	w.samples = 0
	w.steps = 0
	w.compute = 0
	w.lossSum = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgStepMS     float64
	MeanLoss      float64
	LastLoss      float64
}
