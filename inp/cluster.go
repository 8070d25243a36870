// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp models the core's external-interface contracts:
// the cluster-file and symmetry-file parser output shapes, the runner
// configuration, and the ECI / chemical-potential parameter bags. Parsing
// these file formats from disk is explicitly out of scope;
// only the parser's output contract is fixed here.
package inp

import "github.com/cpmech/gocvm/geom"

// ClusterFile is the fixed output contract of the (out-of-scope)
// cluster-file parser: a sequence of maximal clusters, each a list of
// sublattices, each a list of sites. Coordinates are stored verbatim --
// no normalization happens at parse time.
type ClusterFile struct {
	MaximalClusters []geom.Cluster
}
