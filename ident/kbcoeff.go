// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import "github.com/cpmech/gocvm/clus"

// KikuchiBakerCoeffs computes the Kikuchi-Baker entropy coefficients via
// the standard inclusion-exclusion recurrence over the subcluster
// containment poset.
//
// Types are processed in the coordinate list's native order (descending
// total site count, so index 0 is the largest/maximal cluster type and
// the last index is the smallest, typically the empty cluster). The
// maximal cluster's coefficient is fixed at 1 (nothing strictly contains
// it); every smaller type's coefficient subtracts the over-counting
// already accounted for by every larger type that contains it, each
// weighted by its own coefficient and by the ratio of orbit
// multiplicities, so that Σ_t mult[t]·kb[t]·S_t telescopes to the
// correct CVM mean-field entropy.
func KikuchiBakerCoeffs(dis *clus.ClusCoordListResult, nij [][]int) []float64 {
	tc := dis.TC
	kb := make([]float64, tc)
	if tc == 0 {
		return kb
	}
	kb[0] = 1
	for t := 1; t < tc; t++ {
		sum := 0.0
		for u := 0; u < t; u++ {
			if nij[u][t] == 0 {
				continue
			}
			sum += dis.Multiplicities[u] * float64(nij[u][t]) * kb[u]
		}
		mt := dis.Multiplicities[t]
		if mt == 0 {
			mt = 1
		}
		kb[t] = 1 - sum/mt
	}
	return kb
}
