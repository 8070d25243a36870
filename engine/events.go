// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine implements the Monte Carlo sweep loop, sampler and
// per-sweep event reporting.
package engine

import "github.com/cpmech/gosl/io"

// Phase identifies where the engine is in its state machine:
// IDLE -> EQUILIBRATING -> AVERAGING -> DONE.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEquilibrating
	PhaseAveraging
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseEquilibrating:
		return "EQUILIBRATION"
	case PhaseAveraging:
		return "AVERAGING"
	case PhaseDone:
		return "DONE"
	}
	return "UNKNOWN"
}

// Event is the per-sweep update record emitted to a user-supplied
// consumer. It is delivered synchronously, in sweep order, on the
// engine's own goroutine -- the callback must not mutate the
// configuration or sampler.
type Event struct {
	SweepIndex        int
	Phase             Phase
	CurrentEnergy     float64
	SweepDeltaE       float64
	RollingMeanDeltaE float64
	RollingStdDeltaE  float64
	AcceptRate        float64
	ElapsedMs         float64
}

func (e Event) String() string {
	return io.Sf("sweep %d [%s] E=%.6g dE=%.6g accept=%.3f elapsed=%.1fms",
		e.SweepIndex, e.Phase, e.CurrentEnergy, e.SweepDeltaE, e.AcceptRate, e.ElapsedMs)
}
