// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Cluster is an ordered list of sublattices; it is the fundamental unit of
// the expansion. The empty cluster is represented here as a
// single sublattice of length zero -- every operation in this package
// honours that convention consistently.
type Cluster []Sublattice

// NewEmptyCluster returns the canonical empty cluster: one sublattice with
// zero sites. Omitting this type from downstream enumeration is a known
// historical bug class -- callers must keep it.
func NewEmptyCluster() Cluster {
	return Cluster{NewSublattice()}
}

// NumSites returns the total number of sites across all sublattices
func (c Cluster) NumSites() int {
	n := 0
	for _, sl := range c {
		n += len(sl)
	}
	return n
}

// RCVector returns the per-sublattice site counts
func (c Cluster) RCVector() []int {
	rc := make([]int, len(c))
	for i, sl := range c {
		rc[i] = len(sl)
	}
	return rc
}

// AllSites returns the in-order concatenation of every sublattice's sites
func (c Cluster) AllSites() []Site {
	out := make([]Site, 0, c.NumSites())
	for _, sl := range c {
		out = append(out, sl...)
	}
	return out
}

// Clone returns a deep copy of the cluster
func (c Cluster) Clone() Cluster {
	out := make(Cluster, len(c))
	for i, sl := range c {
		out[i] = sl.Clone()
	}
	return out
}

// Canonical returns a copy of c with every sublattice sorted ascending by
// (x,y,z) under eps-equality. This canonical form is the
// reference representation for every equivalence test in the package.
func (c Cluster) Canonical(eps float64) Cluster {
	out := c.Clone()
	for _, sl := range out {
		sl.SortCanonical(eps)
	}
	return out
}

// FromFlatSites rebuilds a Cluster from a flat list of sites, re-distributed
// back into sublattices according to the given per-sublattice counts rc.
// Panics if the counts in rc do not sum to len(flat).
func FromFlatSites(flat []Site, rc []int) Cluster {
	out := make(Cluster, len(rc))
	pos := 0
	for i, n := range rc {
		out[i] = make(Sublattice, n)
		copy(out[i], flat[pos:pos+n])
		pos += n
	}
	checkDims("rc sum", "flat sites", pos, len(flat))
	return out
}

// TranslationEquivalent implements the translation-equivalence
// test: same sublattice count, same per-sublattice site counts, matching
// species symbols site-by-site, and a single translation Δ (each component
// within eps of an integer) mapping c1 onto c2. Empty clusters are always
// equivalent to empty clusters.
func TranslationEquivalent(c1, c2 Cluster, eps float64) bool {
	if len(c1) != len(c2) {
		return false
	}
	n1, n2 := c1.NumSites(), c2.NumSites()
	if n1 != n2 {
		return false
	}
	if n1 == 0 {
		return true
	}
	a := c1.Canonical(eps)
	b := c2.Canonical(eps)
	var delta Vec3
	have := false
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			s1, s2 := a[i][j], b[i][j]
			if s1.Symbol != s2.Symbol {
				return false
			}
			d := s2.Pos.Sub(s1.Pos)
			if !have {
				delta = d
				have = true
				if !delta.IsIntegerVector(eps) {
					return false
				}
				continue
			}
			if !d.Equals(delta, eps) {
				return false
			}
		}
	}
	return true
}
