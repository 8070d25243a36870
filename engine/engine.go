// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocvm/energy"
	"github.com/cpmech/gocvm/mc"
)

// Engine drives one chain's sweep loop. It owns its
// configuration, calculator, step actor and sampler exclusively for the
// duration of Run -- there is no concurrency inside the loop;
// the only permitted cooperation is the per-sweep Listener callback,
// delivered synchronously on the engine's own goroutine.
type Engine struct {
	Cfg     *energy.Config
	Calc    *energy.Calculator
	Step    mc.Step
	Sampler *Sampler

	N      int
	NEquil int
	NAvg   int
	L      int
	R, T   float64

	// Listener, if non-nil, is invoked once per sweep with the current
	// Event; it must not mutate Cfg or Sampler.
	Listener func(Event)

	// VerifyEvery, if > 0, triggers a full-energy recomputation every
	// VerifyEvery sweeps to check for incremental-tracking drift.
	// currentEnergy is only overwritten if the drift exceeds
	// DriftTol * max(|currentEnergy|,1).
	VerifyEvery int
	DriftTol    float64

	phase         Phase
	currentEnergy float64
	cancelled     atomic.Bool

	dStats welford
}

// NewEngine wires a configuration, calculator and step actor into a fresh
// engine ready to Run.
func NewEngine(cfg *energy.Config, calc *energy.Calculator, step mc.Step, sampler *Sampler, n, nEquil, nAvg, l int, r, t float64) *Engine {
	if nAvg < 1 {
		chk.Panic("engine.NewEngine: nAvg must be >= 1, got %d", nAvg)
	}
	return &Engine{
		Cfg: cfg, Calc: calc, Step: step, Sampler: sampler,
		N: n, NEquil: nEquil, NAvg: nAvg, L: l, R: r, T: t,
		DriftTol: 1e-8,
		phase:    PhaseIdle,
	}
}

// RequestCancel cooperatively requests that Run stop at the next sweep
// boundary; the result returned by Run will have Partial=true.
func (e *Engine) RequestCancel() {
	e.cancelled.Store(true)
}

// Phase returns the engine's current state
func (e *Engine) Phase() Phase {
	return e.phase
}

// CurrentEnergy returns the incrementally-tracked total energy
func (e *Engine) CurrentEnergy() float64 {
	return e.currentEnergy
}

// Run executes equilibration then averaging and returns the final result.
// It computes the full total energy once, up front; every subsequent change
// comes from adding per-step ΔE. The only further full recomputations are
// the VerifyEvery drift checks, when VerifyEvery > 0.
func (e *Engine) Run() *Result {
	start := time.Now()
	e.currentEnergy = e.Calc.TotalEnergy(e.Cfg)

	e.phase = PhaseEquilibrating
	for sweep := 0; sweep < e.NEquil; sweep++ {
		e.runSweep(sweep, start)
		if e.cancelled.Load() {
			return e.buildResult(true)
		}
	}

	e.Step.ResetCounters()
	e.Sampler.Reset()
	e.phase = PhaseAveraging
	for sweep := 0; sweep < e.NAvg; sweep++ {
		e.runSweep(sweep, start)
		e.Sampler.Sample(e.Cfg, e.Calc, e.currentEnergy)
		if e.cancelled.Load() {
			return e.buildResult(true)
		}
	}

	e.phase = PhaseDone
	return e.buildResult(false)
}

func (e *Engine) runSweep(sweepIdx int, start time.Time) {
	sweepDelta := 0.0
	for attempt := 0; attempt < e.N; attempt++ {
		dE := e.Step.Attempt(e.Cfg)
		e.currentEnergy += dE
		sweepDelta += dE
		e.dStats.push(dE)
	}
	if e.VerifyEvery > 0 && (sweepIdx+1)%e.VerifyEvery == 0 {
		full := e.Calc.TotalEnergy(e.Cfg)
		tol := e.DriftTol * utl.Max(math.Abs(e.currentEnergy), 1)
		if math.Abs(full-e.currentEnergy) > tol {
			e.currentEnergy = full
		}
	}
	if e.Listener != nil {
		e.Listener(Event{
			SweepIndex:        sweepIdx,
			Phase:             e.phase,
			CurrentEnergy:     e.currentEnergy,
			SweepDeltaE:       sweepDelta,
			RollingMeanDeltaE: e.dStats.mean,
			RollingStdDeltaE:  e.dStats.std(),
			AcceptRate:        e.Step.AcceptRate(),
			ElapsedMs:         float64(time.Since(start).Microseconds()) / 1000.0,
		})
	}
}

func (e *Engine) buildResult(partial bool) *Result {
	return &Result{
		T:                   e.T,
		X:                   e.Cfg.Composition(),
		AvgCFs:              e.Sampler.AvgCF(),
		EnergyPerSite:       e.Sampler.AvgEnergy() / float64(e.N),
		HeatCapacityPerSite: e.Sampler.HeatCapacityPerSite(e.N, e.R, e.T),
		AcceptRate:          e.Step.AcceptRate(),
		NEquil:              e.NEquil,
		NAvg:                e.NAvg,
		L:                   e.L,
		N:                   e.N,
		Partial:             partial,
	}
}

// welford accumulates a running mean/variance in one pass, used for the
// per-sweep rolling ΔE statistics reported in Event.
type welford struct {
	n    int64
	mean float64
	m2   float64
}

func (w *welford) push(x float64) {
	w.n++
	d := x - w.mean
	w.mean += d / float64(w.n)
	d2 := x - w.mean
	w.m2 += d * d2
}

func (w *welford) std() float64 {
	if w.n < 2 {
		return 0
	}
	return math.Sqrt(w.m2 / float64(w.n))
}
