// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the geometry kernel of the cluster expansion
// core: fractional-coordinate vectors, decorated sites, sublattices,
// clusters and symmetry operations.
package geom

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Eps is the default absolute tolerance used for Vec3 equality and hashing.
const Eps = 1e-10

// hashGrid is the rounding step used to build tolerance-stable map keys; it
// is coarser than Eps so that two coordinates within Eps of each other round
// to the same grid point unless they straddle a rounding boundary.
const hashGrid = 1e-6

// Vec3 holds fractional coordinates of a point in the lattice.
type Vec3 [3]float64

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns a+b
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a-b
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns s*a
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Dot returns the dot product a.b
func (a Vec3) Dot(b Vec3) float64 {
	return utl.Dot3d(a[:], b[:])
}

// Norm returns the Euclidean norm of a
func (a Vec3) Norm() float64 {
	return la.VecNorm(a[:])
}

// Mod1 reduces each component of a into [0,1) modulo 1
func (a Vec3) Mod1() Vec3 {
	var r Vec3
	for i := 0; i < 3; i++ {
		r[i] = a[i] - math.Floor(a[i])
		if r[i] >= 1.0 {
			r[i] -= 1.0
		}
		if r[i] < 0 {
			r[i] = 0
		}
	}
	return r
}

// ModL reduces each component of a into [0,L) modulo L; used when indexing
// positions on a periodic L×L×L supercell expressed in unit-cell units.
func (a Vec3) ModL(L int) Vec3 {
	fL := float64(L)
	var r Vec3
	for i := 0; i < 3; i++ {
		r[i] = a[i] - fL*math.Floor(a[i]/fL)
		if r[i] >= fL {
			r[i] -= fL
		}
		if r[i] < 0 {
			r[i] = 0
		}
	}
	return r
}

// Equals compares a and b within the given absolute tolerance eps
func (a Vec3) Equals(b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// IsIntegerVector tells whether every component of a is within eps of an
// integer; used by the translation-equivalence test
func (a Vec3) IsIntegerVector(eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-math.Round(a[i])) > eps {
			return false
		}
	}
	return true
}

// HashKey is a tolerance-stable, hashable representation of a Vec3: each
// component is rounded to the hashGrid before forming an integer triple.
// This must be used for every map key derived from a Vec3 so that positions that compare Equals under
// Eps always hash identically.
type HashKey [3]int64

// Hash returns the tolerance-stable hash key for a
func (a Vec3) Hash() HashKey {
	var k HashKey
	for i := 0; i < 3; i++ {
		k[i] = int64(math.Round(a[i] / hashGrid))
	}
	return k
}
