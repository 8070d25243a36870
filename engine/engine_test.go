// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/basis"
	"github.com/cpmech/gocvm/embed"
	"github.com/cpmech/gocvm/energy"
	"github.com/cpmech/gocvm/mc"
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

func Test_engine_deterministic_given_seed(tst *testing.T) {

	chk.PrintTitle("engine_deterministic_given_seed")

	run := func() *Result {
		rnd.Init(123)
		n := 16
		bas := basis.New(2)
		cfg := energy.NewConfig(n, 2, bas)
		cfg.Randomize([]float64{0, 0.5})
		calc := energy.NewCalculator([]float64{-0.2}, ringEmbeddings(n))
		step := mc.NewExchangeStep(calc, 2, 1.0, 800.0)
		sampler := NewSampler(1, ringEmbeddings(n))
		eng := NewEngine(cfg, calc, step, sampler, n, 10, 50, 2, 1.0, 800.0)
		return eng.Run()
	}

	r1 := run()
	r2 := run()
	chk.Scalar(tst, "EnergyPerSite", 1e-12, r1.EnergyPerSite, r2.EnergyPerSite)
	chk.Scalar(tst, "AcceptRate", 1e-12, r1.AcceptRate, r2.AcceptRate)
}

func Test_engine_cancellation_yields_partial(tst *testing.T) {

	chk.PrintTitle("engine_cancellation_yields_partial")

	rnd.Init(1)
	n := 8
	bas := basis.New(2)
	cfg := energy.NewConfig(n, 2, bas)
	calc := energy.NewCalculator([]float64{-0.1}, ringEmbeddings(n))
	step := mc.NewExchangeStep(calc, 2, 1.0, 500.0)
	sampler := NewSampler(1, ringEmbeddings(n))
	eng := NewEngine(cfg, calc, step, sampler, n, 1000, 1000, 2, 1.0, 500.0)
	eng.RequestCancel()
	res := eng.Run()
	if !res.Partial {
		tst.Errorf("a pre-cancelled engine must report a partial result")
	}
}

func Test_sampler_all_one_cf_is_one(tst *testing.T) {

	chk.PrintTitle("sampler_all_one_cf_is_one")

	n := 6
	bas := basis.New(2)
	cfg := energy.NewConfig(n, 2, bas)
	// every site stays at species 0 (phi1(0) = 1): every cluster product is 1
	calc := energy.NewCalculator([]float64{-0.1}, ringEmbeddings(n))
	sampler := NewSampler(1, ringEmbeddings(n))
	sampler.Sample(cfg, calc, calc.TotalEnergy(cfg))
	u := sampler.AvgCF()
	chk.Scalar(tst, "u[0]", 1e-12, u[0], 1.0)
}
