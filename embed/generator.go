// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package embed

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/geom"
)

// Generate builds a position->index lookup for the supercell, constructs
// templates per orbit member (one per anchor), and instantiates each
// template at every site, deduplicating by (type, sorted siteIndices) to
// produce the canonical embedding list with its inverted per-site index.
//
// positions holds the N supercell site positions, in unit-cell fractional
// coordinates (not divided by L). L is the supercell's linear repetition
// count. coords is the (already generated) cluster coordinate list.
//
// Missing position lookups are silently skipped;
// the generator never returns an error for that case. The empty cluster
// type (if present in coords) contributes exactly one global embedding
// with zero-length SiteIndices, present in AllEmbeddings but never listed
// in any site's SiteToEmbeddings -- the energy calculator special-cases
// it as the constant term, and the per-site properties (every listed
// embedding contains its site; per-type counts are equal across sites)
// hold for non-empty cluster types only.
func Generate(positions []geom.Vec3, coords *clus.ClusCoordListResult, L int) (*EmbeddingData, error) {
	N := len(positions)
	posToIndex := make(map[geom.HashKey]int, N)
	for i, p := range positions {
		posToIndex[p.ModL(L).Hash()] = i
	}

	type kept struct {
		key string
		emb Embedding
	}
	seen := make(map[string]bool)
	var orderedKept []kept

	for t := 0; t < coords.TC; t++ {
		for o, member := range coords.OrbitList[t] {
			n := member.NumSites()
			templates, err := BuildTemplates(t, o, member)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				// one global degenerate embedding, independent of site
				key := emptyKey(t)
				if !seen[key] {
					seen[key] = true
					orderedKept = append(orderedKept, kept{key: key, emb: Embedding{
						ClusterType:      t,
						OrbitMemberIndex: o,
						SiteIndices:      []int{},
						BasisIndices:     []int{},
					}})
				}
				continue
			}
			for _, tmpl := range templates {
				for _, i := range utl.IntRange(N) {
					indices := make([]int, len(tmpl.Rel))
					ok := true
					for k, rel := range tmpl.Rel {
						key := positions[i].Add(rel).ModL(L).Hash()
						idx, found := posToIndex[key]
						if !found {
							ok = false
							break
						}
						indices[k] = idx
					}
					if !ok {
						continue
					}
					dedupKey := sortedKey(t, indices)
					if seen[dedupKey] {
						continue
					}
					seen[dedupKey] = true
					alpha := make([]int, len(tmpl.Alpha))
					copy(alpha, tmpl.Alpha)
					siteIndices := make([]int, len(indices))
					copy(siteIndices, indices)
					orderedKept = append(orderedKept, kept{key: dedupKey, emb: Embedding{
						ClusterType:      t,
						OrbitMemberIndex: o,
						SiteIndices:      siteIndices,
						BasisIndices:     alpha,
					}})
				}
			}
		}
	}

	data := &EmbeddingData{N: N}
	data.AllEmbeddings = make([]Embedding, len(orderedKept))
	data.SiteToEmbeddings = make([][]int, N)
	for idx, k := range orderedKept {
		data.AllEmbeddings[idx] = k.emb
		for _, site := range k.emb.SiteIndices {
			data.SiteToEmbeddings[site] = append(data.SiteToEmbeddings[site], idx)
		}
	}
	return data, nil
}

func emptyKey(t int) string {
	return "E:" + strconv.Itoa(t)
}

func sortedKey(t int, indices []int) string {
	s := make([]int, len(indices))
	copy(s, indices)
	sort.Ints(s)
	var b strings.Builder
	b.WriteString(strconv.Itoa(t))
	b.WriteByte(':')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
