// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command gocvm runs one Monte Carlo chain from a fixed point+pair BCC
// binary-alloy example.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/gocvm/geom"
	"github.com/cpmech/gocvm/inp"
	"github.com/cpmech/gocvm/runner"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ngocvm -- Cluster Variation Method Monte Carlo\n\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	L := flag.Int("L", 4, "supercell edge length, in unit cells")
	T := flag.Float64("T", 1000, "temperature")
	nEquil := flag.Int("nequil", 200, "equilibration sweeps")
	nAvg := flag.Int("navg", 1000, "averaging sweeps")
	seed := flag.Int64("seed", 4321, "random seed")
	flag.Parse()

	cfg := bccBinaryExample(*L, *T, *nEquil, *nAvg, *seed)

	if mpi.Rank() == 0 {
		res, err := runner.Run(cfg)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pfgreen("\ndone: E/site=%.6g, Cv/site=%.6g, accept=%.3f, x=%v\n",
			res.EnergyPerSite, res.HeatCapacityPerSite, res.AcceptRate, res.X)
	}
}

// bccBinaryExample builds the point + nearest-neighbor-pair maximal cluster
// set for a binary (k=2) BCC alloy: one point cluster and one pair cluster
// joining a corner site to the body-center site at distance √3/2.
func bccBinaryExample(L int, T float64, nEquil, nAvg int, seed int64) *inp.RunnerConfig {
	point := geom.Cluster{geom.Sublattice{geom.NewSite(geom.NewVec3(0, 0, 0))}}
	pair := geom.Cluster{geom.Sublattice{
		geom.NewSite(geom.NewVec3(0, 0, 0)),
		geom.NewSite(geom.NewVec3(0.5, 0.5, 0.5)),
	}}

	sym := inp.SymmetryFile{
		Name:        "Im-3m",
		Ops:         []geom.SymmetryOperation{geom.Identity()},
		Ord2DisRot:  geom.Identity().R,
		Ord2DisTran: geom.Vec3{},
	}

	return &inp.RunnerConfig{
		Clusters: inp.ClusterFile{MaximalClusters: []geom.Cluster{point, pair}},
		Symmetry: sym,
		L:        L,
		ECI: fun.Prms{
			&fun.Prm{N: "eci0", V: 0},
			&fun.Prm{N: "eci1", V: -0.02},
		},
		NumComp:     2,
		T:           T,
		Composition: []float64{0.5, 0.5},
		NEquil:      nEquil,
		NAvg:        nAvg,
		Seed:        seed,
		R:           1,
	}
}
