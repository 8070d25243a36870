// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfident

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/geom"
)

func bccPair() geom.Cluster {
	return geom.Cluster{geom.Sublattice{
		geom.NewSite(geom.NewVec3(0, 0, 0)),
		geom.NewSite(geom.NewVec3(0.5, 0.5, 0.5)),
	}}
}

func swapCornerBodyCenter() geom.SymmetryOperation {
	return geom.NewSymmetryOperation(geom.Identity().R, geom.NewVec3(-0.5, -0.5, -0.5))
}

func Test_basis_symbols(tst *testing.T) {

	chk.PrintTitle("basis_symbols")

	syms := BasisSymbols(3)
	chk.IntAssert(len(syms), 2)
	if syms[0] != "s1" || syms[1] != "s2" {
		tst.Errorf("expected [s1 s2], got %v", syms)
	}
}

func Test_identify_binary(tst *testing.T) {

	chk.PrintTitle("identify_binary")

	ops := []geom.SymmetryOperation{geom.Identity(), swapCornerBodyCenter()}
	sg := geom.SpaceGroup{Name: "test", Ops: ops, Ord2DisRot: geom.Identity().R, Ord2DisTran: geom.Vec3{}}
	maximal := []geom.Cluster{bccPair()}

	geomList := clus.GenerateClusCoordList(maximal, ops, nil)
	res := Identify(maximal, maximal, ops, ops, geomList, geomList, sg, 2)

	if res.Tcf != res.Tcfdis {
		tst.Errorf("ordered and disordered CF counts must agree when both phases share the same geometry, got %d != %d", res.Tcf, res.Tcfdis)
	}
	if res.Nxcf < 1 {
		tst.Errorf("a binary system must produce at least one point CF")
	}
	if res.Ncf < 1 {
		tst.Errorf("a pair maximal cluster must produce at least one non-point CF")
	}
}
