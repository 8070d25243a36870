// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Result holds the final observables of one chain's run, plus a flag
// for cooperative cancellation.
type Result struct {
	T                   float64
	X                   []float64 // composition, length K
	AvgCFs              []float64 // ⟨u_t⟩, length TC
	EnergyPerSite       float64
	HeatCapacityPerSite float64
	AcceptRate          float64
	NEquil              int
	NAvg                int
	L                   int
	N                   int
	Partial             bool // true if cancellation cut the run short of full averaging
}
