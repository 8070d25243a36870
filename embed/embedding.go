// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package embed

// Embedding is a concrete realization of a cluster orbit member on specific
// lattice sites of the supercell. SiteIndices and BasisIndices
// are aligned slot-by-slot, with slot 0 always the anchor.
type Embedding struct {
	ClusterType      int
	OrbitMemberIndex int
	SiteIndices      []int
	BasisIndices     []int
}

// Size returns the physical cluster size (number of sites); the empty
// cluster's single global embedding has Size() == 0.
func (e Embedding) Size() int {
	return len(e.SiteIndices)
}

// EmbeddingData bundles the deduplicated embedding list with its inverted
// per-site index.
type EmbeddingData struct {
	AllEmbeddings   []Embedding
	SiteToEmbeddings [][]int // SiteToEmbeddings[i] = indices into AllEmbeddings touching site i
	N               int
}

// EmbeddingsAt returns the embeddings touching site i
func (d *EmbeddingData) EmbeddingsAt(i int) []Embedding {
	idxs := d.SiteToEmbeddings[i]
	out := make([]Embedding, len(idxs))
	for j, idx := range idxs {
		out[j] = d.AllEmbeddings[idx]
	}
	return out
}

// OrbitSizeOf returns how many distinct embeddings of clusterType touch
// site i; used to confirm site-uniformity on a periodic supercell.
func (d *EmbeddingData) OrbitSizeOf(i, clusterType int) int {
	n := 0
	for _, idx := range d.SiteToEmbeddings[i] {
		if d.AllEmbeddings[idx].ClusterType == clusterType {
			n++
		}
	}
	return n
}
