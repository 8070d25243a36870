// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clus

import (
	"sort"

	"github.com/cpmech/gocvm/geom"
)

// Eps is the tolerance used throughout the coordinate-list generator; it
// follows geom.Eps unless the caller has a reason to relax it.
const Eps = geom.Eps

// ClusCoordListResult is the output of the cluster coordinate list
// generator.
type ClusCoordListResult struct {
	ClusCoordList        []geom.Cluster   // canonical representative per type, descending site count
	Multiplicities       []float64        // raw orbit size / total point-orbit-member count
	OrbitList            [][]geom.Cluster // OrbitList[t] = full orbit of type t
	RCList               [][]int          // RCList[t] = per-sublattice site counts of type t
	TC                   int              // number of distinct types
	NumPointSubClusFound int              // internal normalization counter
}

// OrbitSize returns the size of the orbit of type t
func (r *ClusCoordListResult) OrbitSize(t int) int {
	return len(r.OrbitList[t])
}

// typeCandidate is a pending sub-cluster awaiting classification, tagged
// with its total site count so the pool can be sorted once up front.
type typeCandidate struct {
	cluster geom.Cluster
	nsites  int
}

// GenerateClusCoordList takes maximal clusters and a space group (and,
// for decorated/CF mode, a basis-symbol alphabet) and produces the
// canonical list of distinct cluster types with their orbits,
// multiplicities and per-sublattice site counts.
//
// basisSymbols == nil selects the undecorated (geometric) enumeration used
// by stage-1 identification; a non-nil alphabet selects the decorated
// enumeration used by stage-2 CF identification.
func GenerateClusCoordList(maximal []geom.Cluster, ops []geom.SymmetryOperation, basisSymbols []string) *ClusCoordListResult {
	// step 1: gather every sub-cluster of every maximal cluster
	var pool []typeCandidate
	for _, mc := range maximal {
		var subs []geom.Cluster
		if basisSymbols == nil {
			subs = Subclusters(mc)
		} else {
			subs = DecoratedSubclusters(mc, basisSymbols)
		}
		for _, s := range subs {
			pool = append(pool, typeCandidate{cluster: s, nsites: s.NumSites()})
		}
	}

	// step 2: sort sub-clusters by descending site count
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].nsites > pool[j].nsites
	})

	// step 3: iterate in reverse (ascending site count); classify into types.
	// Membership is tested against each type's full orbit (not just its
	// representative): two subclusters of the same maximal cluster are
	// frequently related by a point-group or centering operation rather than
	// a pure lattice translation (e.g. a BCC corner site and its body-center
	// partner), and must still collapse to one type.
	res := &ClusCoordListResult{}
	for i := len(pool) - 1; i >= 0; i-- {
		cand := pool[i].cluster
		found := false
		for t := range res.ClusCoordList {
			if IsContained(res.OrbitList[t], cand, Eps) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		rep := cand.Canonical(Eps)
		orbit := GenerateOrbit(rep, ops, Eps)
		res.ClusCoordList = append(res.ClusCoordList, rep)
		res.OrbitList = append(res.OrbitList, orbit)
		res.RCList = append(res.RCList, rep.RCVector())
		if rep.NumSites() == 1 {
			res.NumPointSubClusFound += len(orbit)
		}
	}
	res.TC = len(res.ClusCoordList)

	// step 4: normalize multiplicities by the point-orbit member count
	res.Multiplicities = make([]float64, res.TC)
	denom := float64(res.NumPointSubClusFound)
	if denom == 0 {
		denom = 1
	}
	for t := 0; t < res.TC; t++ {
		res.Multiplicities[t] = float64(len(res.OrbitList[t])) / denom
	}

	// step 5: final sort, descending by total site count
	order := make([]int, res.TC)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return res.ClusCoordList[order[i]].NumSites() > res.ClusCoordList[order[j]].NumSites()
	})
	res.reorder(order)
	return res
}

// reorder permutes every parallel slice in res according to order
func (r *ClusCoordListResult) reorder(order []int) {
	cc := make([]geom.Cluster, r.TC)
	mult := make([]float64, r.TC)
	ol := make([][]geom.Cluster, r.TC)
	rc := make([][]int, r.TC)
	for newIdx, oldIdx := range order {
		cc[newIdx] = r.ClusCoordList[oldIdx]
		mult[newIdx] = r.Multiplicities[oldIdx]
		ol[newIdx] = r.OrbitList[oldIdx]
		rc[newIdx] = r.RCList[oldIdx]
	}
	r.ClusCoordList = cc
	r.Multiplicities = mult
	r.OrbitList = ol
	r.RCList = rc
}
