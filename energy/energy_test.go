// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package energy

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gocvm/basis"
	"github.com/cpmech/gocvm/embed"
)

// twoSitePairEmbeddings builds the embedding set for 2 sites with one point
// type touching each site and one pair type touching both, mirroring what
// embed.Generate would produce for a 2-site periodic ring -- built by hand
// here so the energy tests do not depend on the geometry/clus/embed stack.
func twoSitePairEmbeddings() *embed.EmbeddingData {
	return &embed.EmbeddingData{
		N: 2,
		AllEmbeddings: []embed.Embedding{
			{ClusterType: 0, SiteIndices: []int{}, BasisIndices: []int{}},       // empty
			{ClusterType: 1, SiteIndices: []int{0}, BasisIndices: []int{1}},     // point @0
			{ClusterType: 1, SiteIndices: []int{1}, BasisIndices: []int{1}},     // point @1
			{ClusterType: 2, SiteIndices: []int{0, 1}, BasisIndices: []int{1, 1}}, // pair
		},
		SiteToEmbeddings: [][]int{{1, 3}, {2, 3}},
	}
}

func Test_total_energy_all_same_species(tst *testing.T) {

	chk.PrintTitle("total_energy_all_same_species")

	bas := basis.New(2)
	cfg := NewConfig(2, 2, bas)
	calc := NewCalculator([]float64{0.5, -1.0, 2.0}, twoSitePairEmbeddings())

	// every site at species 0: phi1(0) = 1, so every cluster product is 1;
	// each physical cluster is listed once, so every term enters undivided.
	h := calc.TotalEnergy(cfg)
	want := 0.5 + (-1.0) + (-1.0) + 2.0
	chk.Scalar(tst, "H", 1e-12, h, want)
}

func Test_delta_single_site_matches_full_recompute(tst *testing.T) {

	chk.PrintTitle("delta_single_site_matches_full_recompute")

	bas := basis.New(2)
	cfg := NewConfig(2, 2, bas)
	calc := NewCalculator([]float64{0.5, -1.0, 2.0}, twoSitePairEmbeddings())

	h0 := calc.TotalEnergy(cfg)
	dE := calc.DeltaSingleSite(cfg, 0, cfg.Occ[0], 1)
	cfg.Occ[0] = 1
	h1 := calc.TotalEnergy(cfg)
	chk.Scalar(tst, "dE", 1e-12, dE, h1-h0)
}

func Test_delta_exchange_matches_full_recompute(tst *testing.T) {

	chk.PrintTitle("delta_exchange_matches_full_recompute")

	bas := basis.New(2)
	cfg := NewConfig(2, 2, bas)
	cfg.Occ[0], cfg.Occ[1] = 0, 1
	calc := NewCalculator([]float64{0.5, -1.0, 2.0}, twoSitePairEmbeddings())

	h0 := calc.TotalEnergy(cfg)
	dE := calc.DeltaExchange(cfg, 0, 1)
	cfg.Occ[0], cfg.Occ[1] = cfg.Occ[1], cfg.Occ[0]
	h1 := calc.TotalEnergy(cfg)
	chk.Scalar(tst, "dE", 1e-12, dE, h1-h0)
}

func Test_config_composition_and_randomize(tst *testing.T) {

	chk.PrintTitle("config_composition_and_randomize")

	bas := basis.New(3)
	cfg := NewConfig(100, 3, bas)
	cfg.Randomize([]float64{0, 0.3, 0.2})
	x := cfg.Composition()
	chk.Scalar(tst, "x1", 1e-9, x[1], 0.3)
	chk.Scalar(tst, "x2", 1e-9, x[2], 0.2)
	chk.Scalar(tst, "x0", 1e-9, x[0], 0.5)
}
