// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clus

import "github.com/cpmech/gocvm/geom"

// flatWithSublattice pairs each site of a maximal cluster with the index of
// the sublattice it originally belonged to, so subsets can be re-grouped.
type flatWithSublattice struct {
	site geom.Site
	sub  int
}

func flatten(c geom.Cluster) []flatWithSublattice {
	out := make([]flatWithSublattice, 0, c.NumSites())
	for i, sl := range c {
		for _, s := range sl {
			out = append(out, flatWithSublattice{site: s, sub: i})
		}
	}
	return out
}

// rebuild reconstructs a Cluster with the same number of sublattices as the
// original maximal cluster nsub, placing the chosen flat sites back into
// their original sublattice, preserving relative order.
func rebuild(chosen []flatWithSublattice, nsub int) geom.Cluster {
	out := make(geom.Cluster, nsub)
	for i := range out {
		out[i] = geom.NewSublattice()
	}
	for _, fs := range chosen {
		out[fs.sub] = append(out[fs.sub], fs.site)
	}
	return out
}

// Subclusters produces all 2^n subsets of a maximal cluster's sites
// (including the empty subset), re-grouped back into the original
// sublattice shape. n is the total
// site count of c; for n beyond a handful of sites the caller is expected
// to only pass maximal clusters of modest size, as is standard for CVM
// cluster bases.
func Subclusters(c geom.Cluster) []geom.Cluster {
	flat := flatten(c)
	n := len(flat)
	nsub := len(c)
	total := 1 << uint(n)
	out := make([]geom.Cluster, 0, total)
	for mask := 0; mask < total; mask++ {
		chosen := make([]flatWithSublattice, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				chosen = append(chosen, flat[i])
			}
		}
		out = append(out, rebuild(chosen, nsub))
	}
	return out
}

// DecoratedSubclusters is the decorated variant of Subclusters: each
// non-empty subset additionally receives every possible assignment of
// symbols drawn from basisSymbols to its sites (the cartesian product,
// enumerated exhaustively, .2 step 1 decorated case). The empty
// subset contributes exactly one decorated cluster: itself.
func DecoratedSubclusters(c geom.Cluster, basisSymbols []string) []geom.Cluster {
	flat := flatten(c)
	n := len(flat)
	nsub := len(c)
	total := 1 << uint(n)
	var out []geom.Cluster
	for mask := 0; mask < total; mask++ {
		chosen := make([]flatWithSublattice, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				chosen = append(chosen, flat[i])
			}
		}
		if len(chosen) == 0 {
			out = append(out, rebuild(chosen, nsub))
			continue
		}
		out = append(out, decorate(chosen, nsub, basisSymbols)...)
	}
	return out
}

// decorate enumerates every basisSymbols^len(chosen) symbol assignment for
// the chosen sites, via odometer-style counting over an arbitrary
// alphabet.
func decorate(chosen []flatWithSublattice, nsub int, basisSymbols []string) []geom.Cluster {
	m := len(chosen)
	k := len(basisSymbols)
	total := 1
	for i := 0; i < m; i++ {
		total *= k
	}
	out := make([]geom.Cluster, 0, total)
	digits := make([]int, m)
	for count := 0; count < total; count++ {
		decorated := make([]flatWithSublattice, m)
		for i, fs := range chosen {
			decorated[i] = flatWithSublattice{site: fs.site.WithSymbol(basisSymbols[digits[i]]), sub: fs.sub}
		}
		out = append(out, rebuild(decorated, nsub))
		// advance odometer
		for i := 0; i < m; i++ {
			digits[i]++
			if digits[i] < k {
				break
			}
			digits[i] = 0
		}
	}
	return out
}
