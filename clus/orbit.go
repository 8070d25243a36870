// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clus implements the sub-cluster enumerator and the cluster
// coordinate list generator, built on top of geom's
// symmetry and translation-equivalence primitives.
package clus

import "github.com/cpmech/gocvm/geom"

// IsContained implements the orbit-containment test: a linear
// scan for a member of orbit that is translation-equivalent to cluster.
func IsContained(orbit []geom.Cluster, cluster geom.Cluster, eps float64) bool {
	for _, m := range orbit {
		if geom.TranslationEquivalent(m, cluster, eps) {
			return true
		}
	}
	return false
}

// GenerateOrbit applies every symmetry operation in ops to seed, keeping
// each image not yet contained in the accumulating orbit. Result order is
// the order of first discovery.
func GenerateOrbit(seed geom.Cluster, ops []geom.SymmetryOperation, eps float64) []geom.Cluster {
	orbit := []geom.Cluster{seed.Canonical(eps)}
	for _, op := range ops {
		img := op.ApplyCluster(seed, eps)
		if !IsContained(orbit, img, eps) {
			orbit = append(orbit, img)
		}
	}
	return orbit
}

// IsOrbitClosed checks orbit closure: applying any op to any orbit member
// yields a cluster translation-equivalent to some member of the same
// orbit. Exposed for use by tests across packages.
func IsOrbitClosed(orbit []geom.Cluster, ops []geom.SymmetryOperation, eps float64) bool {
	for _, m := range orbit {
		for _, op := range ops {
			img := op.ApplyCluster(m, eps)
			if !IsContained(orbit, img, eps) {
				return false
			}
		}
	}
	return true
}

// IsOrbitDistinct checks : no two distinct members of
// orbit are translation-equivalent.
func IsOrbitDistinct(orbit []geom.Cluster, eps float64) bool {
	for i := 0; i < len(orbit); i++ {
		for j := i + 1; j < len(orbit); j++ {
			if geom.TranslationEquivalent(orbit[i], orbit[j], eps) {
				return false
			}
		}
	}
	return true
}
