// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/cpmech/gocvm/embed"
	"github.com/cpmech/gocvm/energy"
)

// Sampler accumulates energy and correlation-function statistics during
// the averaging phase. Dividing cfNum[t] by embedCount[t]
// (not by N or N·orbitSize) is the normalization that makes an all-one
// configuration evaluate every CF to 1.0 exactly.
type Sampler struct {
	tc         int
	embedCount []int

	sumE, sumE2 float64
	sumCF       []float64
	nSamples    int
}

// NewSampler builds a sampler for tc cluster types over a fixed embedding
// set.
func NewSampler(tc int, embeddings *embed.EmbeddingData) *Sampler {
	embedCount := make([]int, tc)
	for _, e := range embeddings.AllEmbeddings {
		embedCount[e.ClusterType]++
	}
	return &Sampler{tc: tc, embedCount: embedCount, sumCF: make([]float64, tc)}
}

// Reset zeroes every running sum; called once when averaging begins.
func (s *Sampler) Reset() {
	s.sumE, s.sumE2 = 0, 0
	for i := range s.sumCF {
		s.sumCF[i] = 0
	}
	s.nSamples = 0
}

// Sample adds one averaging-phase sample: the current total energy h
// (supplied by the engine, which already tracks it incrementally -- the
// sampler never recomputes H) and the per-type correlation-function mean
// over this configuration's embeddings.
func (s *Sampler) Sample(cfg *energy.Config, calc *energy.Calculator, h float64) {
	s.sumE += h
	s.sumE2 += h * h
	cfNum := make([]float64, s.tc)
	for _, e := range calc.Embeddings.AllEmbeddings {
		cfNum[e.ClusterType] += calc.ClusterProduct(e, cfg)
	}
	for t := 0; t < s.tc; t++ {
		if s.embedCount[t] > 0 {
			s.sumCF[t] += cfNum[t] / float64(s.embedCount[t])
		}
	}
	s.nSamples++
}

// NSamples returns the number of samples accumulated so far
func (s *Sampler) NSamples() int {
	return s.nSamples
}

// AvgCF returns ⟨u_t⟩ = sumCF[t]/nSamples
func (s *Sampler) AvgCF() []float64 {
	u := make([]float64, s.tc)
	if s.nSamples == 0 {
		return u
	}
	for t := range u {
		u[t] = s.sumCF[t] / float64(s.nSamples)
	}
	return u
}

// AvgEnergy returns ⟨H⟩
func (s *Sampler) AvgEnergy() float64 {
	if s.nSamples == 0 {
		return 0
	}
	return s.sumE / float64(s.nSamples)
}

// HeatCapacityPerSite returns (⟨H²⟩-⟨H⟩²)/(N·R·T²)
func (s *Sampler) HeatCapacityPerSite(n int, r, t float64) float64 {
	if s.nSamples == 0 {
		return 0
	}
	avgE := s.AvgEnergy()
	avgE2 := s.sumE2 / float64(s.nSamples)
	return (avgE2 - avgE*avgE) / (float64(n) * r * t * t)
}
