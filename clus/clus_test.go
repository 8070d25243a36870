// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clus

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocvm/geom"
)

func bccPair() geom.Cluster {
	return geom.Cluster{geom.Sublattice{
		geom.NewSite(geom.NewVec3(0, 0, 0)),
		geom.NewSite(geom.NewVec3(0.5, 0.5, 0.5)),
	}}
}

func bccPoint() geom.Cluster {
	return geom.Cluster{geom.Sublattice{geom.NewSite(geom.NewVec3(0, 0, 0))}}
}

func Test_subclusters_count(tst *testing.T) {

	chk.PrintTitle("subclusters_count")

	subs := Subclusters(bccPair())
	chk.IntAssert(len(subs), 4) // 2^2 subsets: {}, {a}, {b}, {a,b}
}

func Test_decorated_subclusters_count(tst *testing.T) {

	chk.PrintTitle("decorated_subclusters_count")

	syms := []string{"s1"}
	subs := DecoratedSubclusters(bccPair(), syms)
	// empty (1) + 2 singles * 1 symbol + 1 pair * 1^2 symbol assignments
	chk.IntAssert(len(subs), 1+2+1)
}

func Test_orbit_closed_and_distinct(tst *testing.T) {

	chk.PrintTitle("orbit_closed_and_distinct")

	ops := []geom.SymmetryOperation{geom.Identity()}
	orbit := GenerateOrbit(bccPair(), ops, Eps)
	if !IsOrbitClosed(orbit, ops, Eps) {
		tst.Errorf("orbit must be closed under ops")
	}
	if !IsOrbitDistinct(orbit, Eps) {
		tst.Errorf("orbit members must be pairwise distinct")
	}
}

// swapCornerBodyCenter maps the pair cluster's body-center site exactly onto
// its corner site (and vice-versa under composition), the symmetry
// operation that makes the two single-site subclusters of bccPair one type.
func swapCornerBodyCenter() geom.SymmetryOperation {
	return geom.NewSymmetryOperation(geom.Identity().R, geom.NewVec3(-0.5, -0.5, -0.5))
}

func Test_generate_clus_coord_list(tst *testing.T) {

	chk.PrintTitle("generate_clus_coord_list")

	ops := []geom.SymmetryOperation{geom.Identity(), swapCornerBodyCenter()}
	res := GenerateClusCoordList([]geom.Cluster{bccPair()}, ops, nil)

	// expect 3 distinct undecorated types: pair, point, empty, in descending
	// site-count order
	chk.IntAssert(res.TC, 3)
	chk.IntAssert(res.ClusCoordList[0].NumSites(), 2)
	chk.IntAssert(res.ClusCoordList[1].NumSites(), 1)
	chk.IntAssert(res.ClusCoordList[2].NumSites(), 0)

	// the point type's multiplicity must normalize to 1 by construction
	// (NumPointSubClusFound counts exactly the point orbit members)
	chk.Scalar(tst, "point multiplicity", 1e-12, res.Multiplicities[1], 1.0)
}

func Test_classify_under_parents(tst *testing.T) {

	chk.PrintTitle("classify_under_parents")

	ops := []geom.SymmetryOperation{geom.Identity()}
	parent := GenerateClusCoordList([]geom.Cluster{bccPair()}, ops, nil)
	child := GenerateClusCoordList([]geom.Cluster{bccPair()}, ops, nil)

	groupOf, lc, _ := ClassifyUnderParents(parent, child, geom.Identity())
	for c, g := range groupOf {
		if g.ParentType < 0 {
			tst.Errorf("child type %d failed to classify under any parent", c)
		}
	}
	for t, n := range lc {
		if n < 1 {
			tst.Errorf("parent type %d acquired no child groups", t)
		}
	}
}
