// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"context"
	"sort"

	"github.com/cpmech/gopd/ana"
	"github.com/cpmech/gopd/eig"
	"github.com/cpmech/gopd/mdl/pd"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

type Input struct {
	Criterion   string             `yaml:"criterion"`
	Critical    float64            `yaml:"critical"`
	SurfCorr    bool               `yaml:"surface_correction"`
	LimitDamage bool               `yaml:"limit_damage"`
	Nworkers    int                `yaml:"nworkers"`
	Height      float64            `yaml:"height"`
	Nnodes      int                `yaml:"nnodes"`
	Horizon     int                `yaml:"horizon"`
	Tini        float64            `yaml:"tini"`
	Tfin        float64            `yaml:"tfin"`
	Nsteps      int                `yaml:"nsteps"`
	Prms        map[string]float64 `yaml:"prms"`

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Criterion == "" {
		o.Criterion = "CriticalStretch"
	}
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	if o.Nnodes < 2 {
		o.Nnodes = 11
	}
	if o.Horizon < 1 {
		o.Horizon = 3
	}
	if o.Nsteps < 1 {
		o.Nsteps = 10
	}
	if o.Height <= 0 {
		o.Height = 1
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"failure criterion", "Criterion", o.Criterion,
		"critical value", "Critical", o.Critical,
		"surface correction", "SurfCorr", o.SurfCorr,
		"limit damage", "LimitDamage", o.LimitDamage,
		"number of workers", "Nworkers", o.Nworkers,
		"column height", "Height", o.Height,
		"number of nodes", "Nnodes", o.Nnodes,
		"horizon (in spacings)", "Horizon", o.Horizon,
		"initial load factor", "Tini", o.Tini,
		"final load factor", "Tfin", o.Tfin,
		"number of steps", "Nsteps", o.Nsteps,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/column", ".yaml", true)

	// read and parse input data
	b := io.ReadFile(in.inpfn)
	err := yaml.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// analytical solution
	keys := make([]string, 0, len(in.Prms))
	for k := range in.Prms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var prms dbf.Params
	for _, k := range keys {
		prms = append(prms, &dbf.P{N: k, V: in.Prms[k]})
	}
	prms = append(prms, &dbf.P{N: "h", V: in.Height})
	var sol ana.ConfinedSelfWeight
	if err = sol.Init(prms); err != nil {
		io.PfRed("cannot initialise analytical solution: %v\n", err)
		return
	}

	// nodes along the column and bonds within the horizon
	dz := in.Height / float64(in.Nnodes-1)
	vols := make([]float64, in.Nnodes)
	for i := range vols {
		vols[i] = dz
	}
	var bonds []*pd.Bond
	for i := 0; i < in.Nnodes; i++ {
		for j := i + 1; j < in.Nnodes && j <= i+in.Horizon; j++ {
			bonds = append(bonds, pd.NewBond(len(bonds), i, j, in.Critical))
		}
	}
	mesh, err := pd.NewBondMesh(1, vols, bonds)
	if err != nil {
		io.PfRed("cannot allocate mesh: %v\n", err)
		return
	}

	// updater
	upd, err := pd.NewUpdater(in.Criterion, []*dbf.P{
		&dbf.P{N: "surface_correction", V: b2f(in.SurfCorr)},
		&dbf.P{N: "limit_damage", V: b2f(in.LimitDamage)},
		&dbf.P{N: "nworkers", V: float64(in.Nworkers)},
	})
	if err != nil {
		io.PfRed("cannot allocate updater: %v\n", err)
		return
	}

	// run
	io.Pf("%8s%14s%14s%10s%10s\n", "t", "σmax(base)", "stretch(base)", "broken", "intact")
	dt := (in.Tfin - in.Tini) / float64(in.Nsteps)
	for step := 0; step <= in.Nsteps; step++ {
		t := in.Tini + float64(step)*dt
		for _, bond := range bonds {
			zi, zj := float64(bond.Nodes[0])*dz, float64(bond.Nodes[1])*dz
			ui, uj := sol.Displ(t, []float64{0, 0, zi}), sol.Displ(t, []float64{0, 0, zj})
			bond.Stretch = (uj[2] - ui[2]) / (zj - zi)
			bond.Stress = []eig.Ten2{sol.Stress(t, []float64{0, 0, zi}), sol.Stress(t, []float64{0, 0, zj})}
		}
		nbroken, err := upd.UpdateAll(context.Background(), mesh, bonds)
		if err != nil {
			io.PfRed("update failed: %v\n", err)
			return
		}
		nintact := 0
		for _, bond := range bonds {
			if bond.Intact() {
				nintact++
			}
		}
		σmax := eig.NewSpectrum(bonds[0].AvgStress()).Max()
		io.Pf("%8.3f%14.6f%14.6f%10d%10d\n", t, σmax, bonds[0].Stretch, nbroken, nintact)
	}
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
