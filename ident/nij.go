// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import (
	"github.com/cpmech/gocvm/clus"
)

// BuildNijTable implements the nij containment table: nij[i][j]
// counts how many sub-clusters of the representative of type i fall in
// type j's orbit. Matching against the full orbit (not just type j's
// stored representative) is required because two sub-clusters of the
// same maximal cluster are frequently related by a point-group or
// centering operation rather than a pure lattice translation.
func BuildNijTable(dis *clus.ClusCoordListResult) [][]int {
	tc := dis.TC
	nij := make([][]int, tc)
	for i := range nij {
		nij[i] = make([]int, tc)
	}
	for i := 0; i < tc; i++ {
		subs := clus.Subclusters(dis.ClusCoordList[i])
		for _, s := range subs {
			for j := 0; j < tc; j++ {
				if clus.IsContained(dis.OrbitList[j], s, clus.Eps) {
					nij[i][j]++
					break
				}
			}
		}
	}
	return nij
}
