// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gocvm/geom"
)

// RunnerConfig groups every option the runner's builder API accepts,
// fields grouped by concern, validated by one Validate call before the
// runner wires up geom/clus/ident/cfident/embed/mc/engine.
type RunnerConfig struct {
	// Geometry & identification inputs
	Clusters   ClusterFile
	Symmetry   SymmetryFile
	Positions  []geom.Vec3 // optional custom lattice positions; nil selects the default BCC generator
	L          int         // supercell edge length, in unit cells

	// Hamiltonian
	ECI fun.Prms // named "eci0", "eci1", ... in clusCoordList order

	// Thermodynamic state
	NumComp     int
	T           float64
	Composition []float64 // length NumComp, sums to 1

	// Ensemble
	UseFlipStep bool     // false selects canonical (exchange), true grand-canonical (flip)
	DeltaMu     fun.Prms // named "dmu1", "dmu2", ...; only consulted when UseFlipStep

	// Monte Carlo schedule
	NEquil int
	NAvg   int
	Seed   int64
	R      float64 // gas constant in the caller's energy units; must match ECI's units

	// Reporting
	UpdateListener func(sweepIdx int, phase string, currentEnergy float64)
}

// Validate checks every field against the InvalidInput class,
// returning the first violation found.
func (c *RunnerConfig) Validate() error {
	if c.NumComp < 2 {
		return chk.Err("RunnerConfig: NumComp must be >= 2, got %d", c.NumComp)
	}
	if c.T <= 0 {
		return chk.Err("RunnerConfig: T must be > 0, got %g", c.T)
	}
	if len(c.Composition) != c.NumComp {
		return chk.Err("RunnerConfig: Composition has length %d, want %d", len(c.Composition), c.NumComp)
	}
	sum := 0.0
	for _, x := range c.Composition {
		if x < 0 {
			return chk.Err("RunnerConfig: Composition entries must be >= 0, got %g", x)
		}
		sum += x
	}
	if sum < 1-1e-6 || sum > 1+1e-6 {
		return chk.Err("RunnerConfig: Composition must sum to 1, got %g", sum)
	}
	if c.L < 1 {
		return chk.Err("RunnerConfig: L must be >= 1, got %d", c.L)
	}
	if c.NEquil < 0 {
		return chk.Err("RunnerConfig: NEquil must be >= 0, got %d", c.NEquil)
	}
	if c.NAvg < 1 {
		return chk.Err("RunnerConfig: NAvg must be >= 1, got %d", c.NAvg)
	}
	if c.R <= 0 {
		return chk.Err("RunnerConfig: R must be > 0, got %g", c.R)
	}
	if len(c.Clusters.MaximalClusters) == 0 {
		return chk.Err("RunnerConfig: Clusters.MaximalClusters must be non-empty")
	}
	return nil
}
