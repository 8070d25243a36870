// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ident implements stage-1 cluster identification:
// the nij containment table, the Kikuchi-Baker entropy coefficients, and
// the classification of ordered-phase cluster types under disordered-phase
// (HSP) orbits.
package ident

import (
	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/geom"
)

// ClusterIdentificationResult is the output of stage-1 identification.
type ClusterIdentificationResult struct {
	Tcdis    int         // number of HSP (disordered-phase) types
	KbCoeff  []float64   // Kikuchi-Baker coefficient per disordered type
	NijTable [][]int     // NijTable[i][j] = # subclusters of type i translation-equivalent to type j
	Lc       []int       // Lc[t] = number of ordered-phase cluster groups under disordered type t
	Mh       [][]float64 // Mh[t][j] = normalized multiplicity of ordered group j under disordered type t
}

// Identify runs stage-1 identification given the already-generated
// disordered-phase (HSP) coordinate list, the ordered-phase coordinate
// list, and the space group's ordered->disordered affine map.
func Identify(dis *clus.ClusCoordListResult, ord *clus.ClusCoordListResult, sg geom.SpaceGroup) *ClusterIdentificationResult {
	r := &ClusterIdentificationResult{Tcdis: dis.TC}
	r.NijTable = BuildNijTable(dis)
	r.KbCoeff = KikuchiBakerCoeffs(dis, r.NijTable)
	r.Lc, r.Mh = ClassifyOrderedUnderDisordered(dis, ord, sg)
	return r
}
