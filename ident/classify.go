// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ident

import (
	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/geom"
)

// ClassifyOrderedUnderDisordered implements the final
// classification step: every ordered-phase cluster type is mapped into the
// disordered-phase reference frame via the space group's ordered->
// disordered affine map, then tested for containment against each
// disordered orbit. lc[t] is the number of ordered types that land in
// disordered type t's orbit; mh[t][j] is the j-th such ordered type's own
// normalized multiplicity, as computed in the ordered-phase list.
func ClassifyOrderedUnderDisordered(dis *clus.ClusCoordListResult, ord *clus.ClusCoordListResult, sg geom.SpaceGroup) (lc []int, mh [][]float64) {
	_, lc, mh = clus.ClassifyUnderParents(dis, ord, sg.Ord2Dis())
	return lc, mh
}
