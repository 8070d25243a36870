// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfident implements stage-2 correlation-function identification:
// the decorated enumeration of correlation-function types and their
// grouping under disordered-phase parents.
package cfident

import (
	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/geom"
)

// CFIdentificationResult is the output of stage-2 CF identification.
type CFIdentificationResult struct {
	Tcf     int            // total number of (ordered-phase) CF types
	Tcfdis  int            // total number of disordered-phase CF types
	Nxcf    int            // number of point CFs
	Ncf     int            // number of non-point CFs
	Lcf     [][]int        // Lcf[t][j] = number of CFs in group j under HSP type t (every decoration of one geometric type lands in the same group)
	Grouped [][][]int      // Grouped[t][j] = list of indices into CFList of CFs in that group
	CFList  []geom.Cluster // decorated CF type representatives, in enumeration order
}

// BasisSymbols returns the basis-symbol alphabet {s1,...,s_{k-1}} used by
// the decorated enumerator for a numComp-component system.
func BasisSymbols(numComp int) []string {
	syms := make([]string, 0, numComp-1)
	for a := 1; a < numComp; a++ {
		syms = append(syms, geom.SymbolFor(a))
	}
	return syms
}

// Identify runs stage-2 CF identification.
//
// disMaximal/disOps generate the disordered-phase CF parents (Tcfdis);
// ordMaximal/ordOps generate the ordered-phase CF children (Tcf). disGeom
// and ordGeom are the corresponding stage-1 undecorated coordinate lists,
// already grouped by ClassifyUnderParents logic (ordGeom types classified
// under disGeom orbits via sg's ordered->disordered affine map); this
// grouping is recomputed here so cfident has no hard dependency on ident's
// result type.
func Identify(disMaximal, ordMaximal []geom.Cluster, disOps, ordOps []geom.SymmetryOperation, disGeom, ordGeom *clus.ClusCoordListResult, sg geom.SpaceGroup, numComp int) *CFIdentificationResult {
	syms := BasisSymbols(numComp)

	disCF := clus.GenerateClusCoordList(disMaximal, disOps, syms)
	ordCF := clus.GenerateClusCoordList(ordMaximal, ordOps, syms)

	geomGroupOf, lcGeom, _ := clus.ClassifyUnderParents(disGeom, ordGeom, sg.Ord2Dis())

	r := &CFIdentificationResult{
		Tcf:    ordCF.TC,
		Tcfdis: disCF.TC,
		CFList: ordCF.ClusCoordList,
	}
	r.Grouped = make([][][]int, disGeom.TC)
	for t := range r.Grouped {
		r.Grouped[t] = make([][]int, lcGeom[t])
	}

	for c := 0; c < ordCF.TC; c++ {
		cf := ordCF.ClusCoordList[c]
		n := cf.NumSites()
		if n == 1 {
			r.Nxcf++
		} else if n > 1 {
			r.Ncf++
		}

		stripped := clus.Strip(cf)
		geomType := clus.MatchGeometricType(ordGeom, stripped)
		if geomType < 0 {
			continue
		}
		ref := geomGroupOf[geomType]
		if ref.ParentType < 0 {
			continue
		}
		r.Grouped[ref.ParentType][ref.GroupIndex] = append(r.Grouped[ref.ParentType][ref.GroupIndex], c)
	}

	r.Lcf = make([][]int, len(r.Grouped))
	for t, groups := range r.Grouped {
		r.Lcf[t] = make([]int, len(groups))
		for j, g := range groups {
			r.Lcf[t][j] = len(g)
		}
	}
	return r
}
