// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/la"

// SymmetryOperation is an affine map r' = R.r + t acting on fractional
// coordinates, preserving site symbols and sublattice structure. R is
// stored as a 3x3 dense matrix allocated with la.MatAlloc, the same
// primitive used elsewhere in this module for small dense
// linear-algebra blocks.
type SymmetryOperation struct {
	R [][]float64 // 3x3 rotation/point-group matrix
	T Vec3        // translation
}

// Identity returns the identity symmetry operation
func Identity() SymmetryOperation {
	R := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		R[i][i] = 1
	}
	return SymmetryOperation{R: R, T: Vec3{}}
}

// NewSymmetryOperation builds an operation from a 3x3 rotation matrix and a
// translation vector
func NewSymmetryOperation(R [][]float64, t Vec3) SymmetryOperation {
	M := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		copy(M[i], R[i])
	}
	return SymmetryOperation{R: M, T: t}
}

// Apply maps a single position, symbol preserved
func (op SymmetryOperation) Apply(s Site) Site {
	var r Vec3
	la.MatVecMul(r[:], 1, op.R, s.Pos[:])
	la.VecAdd2(r[:], 1, r[:], 1, op.T[:])
	return Site{Pos: r, Symbol: s.Symbol}
}

// ApplyCluster maps every site of c, then canonicalizes each sublattice.
func (op SymmetryOperation) ApplyCluster(c Cluster, eps float64) Cluster {
	out := make(Cluster, len(c))
	for i, sl := range c {
		nsl := make(Sublattice, len(sl))
		for j, s := range sl {
			nsl[j] = op.Apply(s)
		}
		nsl.SortCanonical(eps)
		out[i] = nsl
	}
	return out
}

// AffineMap is a rotation+translation pair used for the ordered->disordered
// frame change; it is structurally identical to a
// SymmetryOperation but kept as a distinct name for clarity at call sites.
type AffineMap = SymmetryOperation

// SpaceGroup bundles a name, the list of symmetry operations, and the
// ordered-phase -> disordered-phase frame change used by stage-1
// classification.
type SpaceGroup struct {
	Name        string
	Ops         []SymmetryOperation
	Ord2DisRot  [][]float64 // 3x3 rotation mapping ordered -> disordered frame
	Ord2DisTran Vec3        // translation mapping ordered -> disordered frame
}

// Ord2Dis returns the affine map taking ordered-phase coordinates into the
// disordered-phase reference frame
func (g SpaceGroup) Ord2Dis() AffineMap {
	return NewSymmetryOperation(g.Ord2DisRot, g.Ord2DisTran)
}
