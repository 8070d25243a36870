// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import "github.com/cpmech/gocvm/embed"

// Calculator evaluates cluster products and energies over a fixed embedding
// set. ECI is indexed in clusCoordList order (the order the
// embedding generator's ClusCoordListResult used), zero-padded by the
// caller per the type count.
type Calculator struct {
	ECI        []float64
	Embeddings *embed.EmbeddingData
}

// NewCalculator builds a calculator over a fixed embedding set and ECI
// vector.
func NewCalculator(eci []float64, embeddings *embed.EmbeddingData) *Calculator {
	return &Calculator{ECI: eci, Embeddings: embeddings}
}

func (c *Calculator) eciFor(clusterType int) float64 {
	if clusterType < len(c.ECI) {
		return c.ECI[clusterType]
	}
	return 0
}

// ClusterProduct evaluates Φ(e,cfg) = Π_k φ_{α[k]}(cfg.occ[e.siteIndices[k]])
func (c *Calculator) ClusterProduct(e embed.Embedding, cfg *Config) float64 {
	phi := 1.0
	for k, site := range e.SiteIndices {
		alpha := e.BasisIndices[k]
		phi *= cfg.Basis.Evaluate(alpha, cfg.Occ[site])
	}
	return phi
}

// TotalEnergy computes H(cfg) = Σ_e ECI[e.type]·Φ(e,cfg) over AllEmbeddings.
// embed.Generate keeps each physical cluster exactly once in AllEmbeddings,
// so no term is divided by cluster size; the empty cluster's single
// embedding (Φ = 1) contributes the constant term.
func (c *Calculator) TotalEnergy(cfg *Config) float64 {
	h := 0.0
	for _, e := range c.Embeddings.AllEmbeddings {
		eci := c.eciFor(e.ClusterType)
		if eci == 0 {
			continue
		}
		h += eci * c.ClusterProduct(e, cfg)
	}
	return h
}

// DeltaSingleSite computes ΔE for changing the occupation of site i from
// oldOcc to newOcc, holding all other sites fixed. No
// division by cluster size: each embedding touching i represents one full
// physical incidence of that cluster at i.
func (c *Calculator) DeltaSingleSite(cfg *Config, i, oldOcc, newOcc int) float64 {
	delta := 0.0
	for _, idx := range c.Embeddings.SiteToEmbeddings[i] {
		e := c.Embeddings.AllEmbeddings[idx]
		eci := c.eciFor(e.ClusterType)
		if eci == 0 {
			continue
		}
		rest := 1.0
		var alphaI int
		for k, site := range e.SiteIndices {
			if site == i {
				alphaI = e.BasisIndices[k]
				continue
			}
			rest *= cfg.Basis.Evaluate(e.BasisIndices[k], cfg.Occ[site])
		}
		phiNew := cfg.Basis.Evaluate(alphaI, newOcc)
		phiOld := cfg.Basis.Evaluate(alphaI, oldOcc)
		delta += eci * (phiNew - phiOld) * rest
	}
	return delta
}

// DeltaExchange computes ΔE for swapping the occupations of sites i and j
//: apply the single-site formula at i, then temporarily
// write the new occupation at i and apply it at j, then restore. The two
// deltas are additive and correctly account for embeddings containing both
// i and j.
func (c *Calculator) DeltaExchange(cfg *Config, i, j int) float64 {
	occI, occJ := cfg.Occ[i], cfg.Occ[j]
	if occI == occJ {
		return 0
	}
	d1 := c.DeltaSingleSite(cfg, i, occI, occJ)
	cfg.Occ[i] = occJ
	d2 := c.DeltaSingleSite(cfg, j, occJ, occI)
	cfg.Occ[i] = occI
	return d1 + d2
}
