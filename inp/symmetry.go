// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gocvm/geom"

// SymmetryFile is the fixed output contract of the (out-of-scope)
// symmetry-file parser: the point-group operations plus the affine map
// taking ordered-phase coordinates into the disordered-phase reference
// frame.
type SymmetryFile struct {
	Name        string
	Ops         []geom.SymmetryOperation
	Ord2DisRot  [][]float64
	Ord2DisTran geom.Vec3
}

// SpaceGroup converts the file contract into the geom.SpaceGroup the core
// packages actually consume.
func (f SymmetryFile) SpaceGroup() geom.SpaceGroup {
	return geom.SpaceGroup{
		Name:        f.Name,
		Ops:         f.Ops,
		Ord2DisRot:  f.Ord2DisRot,
		Ord2DisTran: f.Ord2DisTran,
	}
}
