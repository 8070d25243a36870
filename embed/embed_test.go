// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package embed

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

func buildUnitCellData(tst *testing.T) (*EmbeddingData, *clus.ClusCoordListResult) {
	ops := []geom.SymmetryOperation{geom.Identity(), swapCornerBodyCenter()}
	coords := clus.GenerateClusCoordList([]geom.Cluster{bccPair()}, ops, nil)
	positions := []geom.Vec3{geom.NewVec3(0, 0, 0), geom.NewVec3(0.5, 0.5, 0.5)}
	data, err := Generate(positions, coords, 1)
	if err != nil {
		tst.Fatalf("Generate failed: %v", err)
	}
	return data, coords
}

func Test_embedding_every_member_contains_anchor_site(tst *testing.T) {

	chk.PrintTitle("embedding_every_member_contains_anchor_site")

	data, coords := buildUnitCellData(tst)
	for i, idxs := range data.SiteToEmbeddings {
		for _, idx := range idxs {
			e := data.AllEmbeddings[idx]
			found := false
			for _, s := range e.SiteIndices {
				if s == i {
					found = true
					break
				}
			}
			if !found {
				tst.Errorf("site %d lists embedding %d (type %d) which does not contain it", i, idx, e.ClusterType)
			}
		}
	}
	_ = coords
}

func Test_embedding_site_counts_uniform(tst *testing.T) {

	chk.PrintTitle("embedding_site_counts_uniform")

	data, coords := buildUnitCellData(tst)
	for t := 0; t < coords.TC; t++ {
		if coords.ClusCoordList[t].NumSites() == 0 {
			continue // empty type has no per-site presence, .7
		}
		base := data.OrbitSizeOf(0, t)
		for i := 1; i < data.N; i++ {
			if data.OrbitSizeOf(i, t) != base {
				tst.Errorf("type %d: site 0 sees %d embeddings but site %d sees %d; periodic supercell must be site-uniform", t, base, i, data.OrbitSizeOf(i, t))
			}
		}
	}
}

func Test_empty_cluster_embedding_is_global_and_unlisted(tst *testing.T) {

	chk.PrintTitle("empty_cluster_embedding_is_global_and_unlisted")

	data, coords := buildUnitCellData(tst)
	emptyType := -1
	for t := 0; t < coords.TC; t++ {
		if coords.ClusCoordList[t].NumSites() == 0 {
			emptyType = t
		}
	}
	if emptyType < 0 {
		tst.Fatalf("expected an empty cluster type in the coordinate list")
	}
	count := 0
	for _, e := range data.AllEmbeddings {
		if e.ClusterType == emptyType {
			count++
			chk.IntAssert(len(e.SiteIndices), 0)
		}
	}
	chk.IntAssert(count, 1)
	for i, idxs := range data.SiteToEmbeddings {
		for _, idx := range idxs {
			if data.AllEmbeddings[idx].ClusterType == emptyType {
				tst.Errorf("site %d must never list the empty-cluster embedding", i)
			}
		}
	}
}
