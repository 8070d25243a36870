// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// eciName and dmuName name the fun.Prm entries carrying the ECI of cluster
// type t and the chemical-potential offset of species c, using the
// same named-parameter (&fun.Prm{N: ..., V: ...}) convention as the
// rest of the input layer instead of a bare []float64 index.
func eciName(t int) string { return io.Sf("eci%d", t) }
func dmuName(c int) string { return io.Sf("dmu%d", c) }

// FlattenECI turns a named ECI parameter bag into the dense []float64 the
// energy package expects, ordered by clusCoordList index 0..tc-1. A type
// with no matching "eciT" entry gets ECI 0.
func FlattenECI(prms fun.Prms, tc int) []float64 {
	eci := make([]float64, tc)
	for t := 0; t < tc; t++ {
		if p := prms.Find(eciName(t)); p != nil {
			eci[t] = p.V
		}
	}
	return eci
}

// FlattenDeltaMu turns a named chemical-potential bag into the dense
// []float64 FlipStep expects, length k. Species 0 is always 0 regardless of
// any "dmu0" entry.
func FlattenDeltaMu(prms fun.Prms, k int) []float64 {
	dmu := make([]float64, k)
	for c := 1; c < k; c++ {
		if p := prms.Find(dmuName(c)); p != nil {
			dmu[c] = p.V
		}
	}
	return dmu
}
