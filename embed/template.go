// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package embed realizes abstract cluster orbits as concrete site-index
// tuples on a periodic L×L×L supercell.
package embed

import "github.com/cpmech/gocvm/geom"

// ClusterTemplate is a single anchor-relative realization of one orbit
// member: rel[0] is always the zero vector (the anchor's own position),
// and rel[1:] are the remaining sites' positions relative to the anchor,
// in the orbit member's original order. Alpha carries the
// parsed basis index for each slot, aligned with Rel.
type ClusterTemplate struct {
	ClusterType      int
	OrbitMemberIndex int
	AnchorIndex      int // index of the anchor among the member's flat sites; -1 for the degenerate empty-cluster template
	Rel              []geom.Vec3
	Alpha            []int
}

// BuildTemplates produces one template per anchor choice for a non-empty
// orbit member, or a single degenerate zero-length template for the empty
// cluster.
func BuildTemplates(clusterType, orbitMemberIndex int, member geom.Cluster) ([]ClusterTemplate, error) {
	sites := member.AllSites()
	n := len(sites)
	if n == 0 {
		return []ClusterTemplate{{
			ClusterType:      clusterType,
			OrbitMemberIndex: orbitMemberIndex,
			AnchorIndex:      -1,
			Rel:              []geom.Vec3{},
			Alpha:            []int{},
		}}, nil
	}
	positions := make([]geom.Vec3, n)
	alphas := make([]int, n)
	for i, s := range sites {
		positions[i] = s.Pos
		a, err := geom.AlphaFromSymbol(s.Symbol)
		if err != nil {
			return nil, err
		}
		alphas[i] = a
	}
	templates := make([]ClusterTemplate, n)
	for a := 0; a < n; a++ {
		rel := make([]geom.Vec3, n)
		alpha := make([]int, n)
		rel[0] = geom.Vec3{}
		alpha[0] = alphas[a]
		idx := 1
		for k := 0; k < n; k++ {
			if k == a {
				continue
			}
			rel[idx] = positions[k].Sub(positions[a])
			alpha[idx] = alphas[k]
			idx++
		}
		templates[a] = ClusterTemplate{
			ClusterType:      clusterType,
			OrbitMemberIndex: orbitMemberIndex,
			AnchorIndex:      a,
			Rel:              rel,
			Alpha:            alpha,
		}
	}
	return templates, nil
}
