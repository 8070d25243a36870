// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package runner wires geom/clus/ident/cfident/embed/basis/energy/mc/engine
// into a single orchestrator: given a RunnerConfig, build the cluster
// coordinate list, the embedding set, the calculator and the engine,
// then run it.
package runner

import "github.com/cpmech/gocvm/geom"

// DefaultBCCPositions builds the default body-centered-cubic lattice on an
// L×L×L periodic supercell: two sites per unit cell, the
// corner and the body center, replicated over L³ cells. N = 2·L³.
func DefaultBCCPositions(L int) []geom.Vec3 {
	positions := make([]geom.Vec3, 0, 2*L*L*L)
	for x := 0; x < L; x++ {
		for y := 0; y < L; y++ {
			for z := 0; z < L; z++ {
				base := geom.NewVec3(float64(x), float64(y), float64(z))
				positions = append(positions, base)
				positions = append(positions, base.Add(geom.NewVec3(0.5, 0.5, 0.5)))
			}
		}
	}
	return positions
}
