// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocvm/energy"
)

// Step is the common interface implemented by ExchangeStep and FlipStep.
type Step interface {
	Attempt(cfg *energy.Config) float64
	AcceptRate() float64
	ResetCounters()
}

// AllocatorType defines a function that allocates a Step for one ensemble
type AllocatorType func(calc *energy.Calculator, k int, r, t float64, deltaMu []float64) Step

// allocators holds all registered ensemble step allocators
var allocators = make(map[string]AllocatorType)

// EnsembleCanonical and EnsembleGrandCanonical name the two built-in
// ensembles .8 requires.
const (
	EnsembleCanonical      = "canonical"
	EnsembleGrandCanonical = "grand-canonical"
)

func init() {
	allocators[EnsembleCanonical] = func(calc *energy.Calculator, k int, r, t float64, deltaMu []float64) Step {
		return NewExchangeStep(calc, k, r, t)
	}
	allocators[EnsembleGrandCanonical] = func(calc *energy.Calculator, k int, r, t float64, deltaMu []float64) Step {
		return NewFlipStep(calc, k, deltaMu, r, t)
	}
}

// New returns a new Step for the named ensemble
func New(ensemble string, calc *energy.Calculator, k int, r, t float64, deltaMu []float64) Step {
	fcn, ok := allocators[ensemble]
	if !ok {
		chk.Panic("mc: cannot get allocator for ensemble %q", ensemble)
	}
	return fcn(calc, k, r, t, deltaMu)
}

// SetAllocator registers a new ensemble step allocator
func SetAllocator(ensemble string, fcn AllocatorType) {
	if _, ok := allocators[ensemble]; ok {
		chk.Panic("mc: cannot set allocator for ensemble %q because it exists already", ensemble)
	}
	allocators[ensemble] = fcn
}
