// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clus

import "github.com/cpmech/gocvm/geom"

// GroupRef locates a child coordinate-list type within the grouping
// produced by ClassifyUnderParents: ParentType indexes the parent list,
// GroupIndex is the position of this child within that parent's group
// (order of first discovery).
type GroupRef struct {
	ParentType int
	GroupIndex int
}

// ClassifyUnderParents implements the grouping step shared by stage-1
// identification and stage-2 CF identification: every child type is mapped through affine
// into the parent's reference frame and tested for orbit containment
// against each parent type's orbit; matching children are grouped in
// first-discovery order.
//
// Returns, per child type, the GroupRef it was classified into; per parent
// type, the number of distinct child groups (Lc) and each group's
// multiplicity (Mh, taken from the child's own Multiplicities entry).
func ClassifyUnderParents(parent *ClusCoordListResult, child *ClusCoordListResult, affine geom.SymmetryOperation) (groupOf []GroupRef, lc []int, mh [][]float64) {
	groupOf = make([]GroupRef, child.TC)
	lc = make([]int, parent.TC)
	mh = make([][]float64, parent.TC)
	for c := 0; c < child.TC; c++ {
		mapped := affine.ApplyCluster(child.ClusCoordList[c], Eps)
		matchedParent := -1
		for t := 0; t < parent.TC; t++ {
			if IsContained(parent.OrbitList[t], mapped, Eps) {
				matchedParent = t
				break
			}
		}
		if matchedParent < 0 {
			groupOf[c] = GroupRef{ParentType: -1, GroupIndex: -1}
			continue
		}
		groupOf[c] = GroupRef{ParentType: matchedParent, GroupIndex: lc[matchedParent]}
		lc[matchedParent]++
		mh[matchedParent] = append(mh[matchedParent], child.Multiplicities[c])
	}
	return groupOf, lc, mh
}

// Strip returns a copy of c with every site's symbol reset to
// geom.DefaultSymbol, recovering the undecorated geometric cluster behind a
// decorated CF type.
func Strip(c geom.Cluster) geom.Cluster {
	out := c.Clone()
	for _, sl := range out {
		for i := range sl {
			sl[i].Symbol = geom.DefaultSymbol
		}
	}
	return out
}

// MatchGeometricType returns the index of the type in list whose orbit
// contains cluster, or -1 if none matches.
func MatchGeometricType(list *ClusCoordListResult, cluster geom.Cluster) int {
	for t := 0; t < list.TC; t++ {
		if IsContained(list.OrbitList[t], cluster, Eps) {
			return t
		}
	}
	return -1
}
