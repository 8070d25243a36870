// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/basis"
	"github.com/cpmech/gocvm/cfident"
	"github.com/cpmech/gocvm/clus"
	"github.com/cpmech/gocvm/embed"
	"github.com/cpmech/gocvm/energy"
	"github.com/cpmech/gocvm/engine"
	"github.com/cpmech/gocvm/ident"
	"github.com/cpmech/gocvm/inp"
	"github.com/cpmech/gocvm/mc"
)

// Identification bundles the two identification stages, computed once per RunnerConfig and independent of any particular
// Monte Carlo chain: it describes the cluster-type equivalence structure
// the Hamiltonian is built over, not a simulation state.
type Identification struct {
	Stage1 *ident.ClusterIdentificationResult
	Stage2 *cfident.CFIdentificationResult
	CF     *clus.ClusCoordListResult // decorated (CF-type) coordinate list actually used by the Hamiltonian
}

// Identify runs both identification stages against the ordered-phase
// geometry in cfg, using the disordered (HSP) frame as the parent space
// to classify under. The ordered and disordered phases coincide here
// (cfg carries a single maximal-cluster set and a single symmetry file)
// -- callers studying a genuinely lower-symmetry ordered phase supply
// the already-reduced ordOps/ordMaximal themselves via the lower-level
// clus/ident/cfident packages directly.
func Identify(cfg *inp.RunnerConfig) *Identification {
	sg := cfg.Symmetry.SpaceGroup()
	maximal := cfg.Clusters.MaximalClusters

	geomList := clus.GenerateClusCoordList(maximal, sg.Ops, nil)
	stage1 := ident.Identify(geomList, geomList, sg)

	syms := cfident.BasisSymbols(cfg.NumComp)
	cfList := clus.GenerateClusCoordList(maximal, sg.Ops, syms)
	stage2 := cfident.Identify(maximal, maximal, sg.Ops, sg.Ops, geomList, geomList, sg, cfg.NumComp)

	return &Identification{Stage1: stage1, Stage2: stage2, CF: cfList}
}

// Run builds the full pipeline from a validated RunnerConfig -- geometry,
// embeddings, calculator, ensemble step and engine -- seeds the Monte Carlo
// engine's sole random source, and
// executes one chain to completion.
func Run(cfg *inp.RunnerConfig) (*engine.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rnd.Init(int(cfg.Seed))

	idr := Identify(cfg)

	positions := cfg.Positions
	if positions == nil {
		positions = DefaultBCCPositions(cfg.L)
	}

	embeddings, err := embed.Generate(positions, idr.CF, cfg.L)
	if err != nil {
		return nil, err
	}

	eci := inp.FlattenECI(cfg.ECI, idr.CF.TC)
	calc := energy.NewCalculator(eci, embeddings)

	bas := basis.New(cfg.NumComp)
	lcfg := energy.NewConfig(len(positions), cfg.NumComp, bas)
	lcfg.Randomize(cfg.Composition)

	ensemble := mc.EnsembleCanonical
	deltaMu := make([]float64, cfg.NumComp)
	if cfg.UseFlipStep {
		ensemble = mc.EnsembleGrandCanonical
		deltaMu = inp.FlattenDeltaMu(cfg.DeltaMu, cfg.NumComp)
	}
	step := mc.New(ensemble, calc, cfg.NumComp, cfg.R, cfg.T, deltaMu)

	sampler := engine.NewSampler(idr.CF.TC, embeddings)
	eng := engine.NewEngine(lcfg, calc, step, sampler, len(positions), cfg.NEquil, cfg.NAvg, cfg.L, cfg.R, cfg.T)
	eng.VerifyEvery = 1000

	if cfg.UpdateListener != nil {
		listener := cfg.UpdateListener
		eng.Listener = func(e engine.Event) {
			listener(e.SweepIndex, e.Phase.String(), e.CurrentEnergy)
		}
	}

	io.Pf("gocvm: running %d sites, %d equilibration + %d averaging sweeps, ensemble=%s\n",
		len(positions), cfg.NEquil, cfg.NAvg, ensemble)

	return eng.Run(), nil
}
