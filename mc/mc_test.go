// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/basis"
	"github.com/cpmech/gocvm/embed"
	"github.com/cpmech/gocvm/energy"
)

func ringEmbeddings(n int) *embed.EmbeddingData {
	data := &embed.EmbeddingData{N: n}
	data.SiteToEmbeddings = make([][]int, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		idx := len(data.AllEmbeddings)
		data.AllEmbeddings = append(data.AllEmbeddings, embed.Embedding{
			ClusterType: 0, SiteIndices: []int{i, j}, BasisIndices: []int{1, 1},
		})
		data.SiteToEmbeddings[i] = append(data.SiteToEmbeddings[i], idx)
		data.SiteToEmbeddings[j] = append(data.SiteToEmbeddings[j], idx)
	}
	return data
}

func Test_exchange_step_conserves_composition(tst *testing.T) {

	chk.PrintTitle("exchange_step_conserves_composition")

	rnd.Init(99)
	bas := basis.New(2)
	n := 20
	cfg := energy.NewConfig(n, 2, bas)
	cfg.Randomize([]float64{0, 0.4})
	before := cfg.Composition()

	calc := energy.NewCalculator([]float64{-0.3}, ringEmbeddings(n))
	step := NewExchangeStep(calc, 2, 1.0, 500.0)
	for i := 0; i < 200; i++ {
		step.Attempt(cfg)
	}
	after := cfg.Composition()
	chk.Scalar(tst, "x0", 1e-12, after[0], before[0])
	chk.Scalar(tst, "x1", 1e-12, after[1], before[1])
}

func Test_exchange_step_accept_rate_in_range(tst *testing.T) {

	chk.PrintTitle("exchange_step_accept_rate_in_range")

	rnd.Init(7)
	bas := basis.New(2)
	n := 20
	cfg := energy.NewConfig(n, 2, bas)
	cfg.Randomize([]float64{0, 0.5})

	calc := energy.NewCalculator([]float64{-0.1}, ringEmbeddings(n))
	step := NewExchangeStep(calc, 2, 1.0, 1000.0)
	for i := 0; i < 500; i++ {
		step.Attempt(cfg)
	}
	rate := step.AcceptRate()
	if rate < 0 || rate > 1 {
		tst.Errorf("accept rate out of [0,1]: %g", rate)
	}
}

func Test_exchange_step_accept_rate_high_temperature_limit(tst *testing.T) {

	chk.PrintTitle("exchange_step_accept_rate_high_temperature_limit")

	// detailed balance: as T -> infinity, beta*dE -> 0 for every attempted
	// move, so exp(-beta*dE) -> 1 and every proposed exchange (besides the
	// already-always-accepted dE<=0 case) is accepted too. The acceptance
	// rate must approach 1, not merely lie in [0,1].
	rnd.Init(13)
	bas := basis.New(2)
	n := 30
	cfg := energy.NewConfig(n, 2, bas)
	cfg.Randomize([]float64{0, 0.5})

	calc := energy.NewCalculator([]float64{-0.2}, ringEmbeddings(n))
	step := NewExchangeStep(calc, 2, 1.0, 1e8)
	for i := 0; i < 2000; i++ {
		step.Attempt(cfg)
	}
	rate := step.AcceptRate()
	if rate < 0.99 {
		tst.Errorf("accept rate at T=1e8 should approach 1 (detailed balance, beta*dE -> 0), got %g", rate)
	}
}

func Test_exchange_step_accept_rate_low_temperature_favors_downhill(tst *testing.T) {

	chk.PrintTitle("exchange_step_accept_rate_low_temperature_favors_downhill")

	// at very low T, only dE<=0 moves (or the exponentially rare upward
	// fluctuation) are accepted, so the rate must be strictly below the
	// high-temperature limit on the same configuration and move proposals.
	rnd.Init(13)
	bas := basis.New(2)
	n := 30
	cfg := energy.NewConfig(n, 2, bas)
	cfg.Randomize([]float64{0, 0.5})

	calc := energy.NewCalculator([]float64{-0.2}, ringEmbeddings(n))
	step := NewExchangeStep(calc, 2, 1.0, 1e-3)
	for i := 0; i < 2000; i++ {
		step.Attempt(cfg)
	}
	rate := step.AcceptRate()
	if rate > 0.9 {
		tst.Errorf("accept rate at T=1e-3 should stay well below the high-temperature limit, got %g", rate)
	}
}

func Test_flip_step_species_zero_fixed_reference(tst *testing.T) {

	chk.PrintTitle("flip_step_species_zero_fixed_reference")

	rnd.Init(5)
	bas := basis.New(3)
	n := 10
	cfg := energy.NewConfig(n, 3, bas)
	calc := energy.NewCalculator([]float64{0, -0.2, 0.1}, ringEmbeddings(n))
	// deltaMu[0] must always be forced to zero regardless of caller input
	step := NewFlipStep(calc, 3, []float64{99, 1.0, -2.0}, 1.0, 500.0)
	chk.Scalar(tst, "deltaMu[0]", 1e-12, step.deltaMu[0], 0.0)
}
