// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"context"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
)

// Updater updates the status of bonds
type Updater struct {
	Crit        Criterion // failure criterion
	SurfCorr    bool      // scale critical values by the surface correction factor
	LimitDamage bool      // keep bonds of nodes with too few (≤ ndim) intact bonds
	Nworkers    int       // maximum number of concurrent evaluations in UpdateAll
	Verbose     bool      // show messages
}

// NewUpdater returns a new updater
//  Parameters: surface_correction, limit_damage and nworkers. The remaining ones go to the criterion
func NewUpdater(criterion string, prms dbf.Params) (o *Updater, err error) {
	o = new(Updater)
	o.Crit, err = New(criterion)
	if err != nil {
		return nil, err
	}
	o.Nworkers = runtime.NumCPU()
	var crit dbf.Params
	for _, p := range prms {
		switch p.N {
		case "surface_correction":
			o.SurfCorr = p.V > 0
		case "limit_damage":
			o.LimitDamage = p.V > 0
		case "nworkers":
			o.Nworkers = int(p.V)
		default:
			crit = append(crit, p)
		}
	}
	if o.Nworkers < 1 {
		return nil, chk.Err("number of workers must be positive. %d is invalid\n", o.Nworkers)
	}
	if err = o.Crit.Init(crit); err != nil {
		return nil, err
	}
	return
}

// Status computes the new status of bond b: 1 if intact; 0 if broken
func (o *Updater) Status(mesh Mesh, b *Bond) (float64, error) {
	if !b.Intact() {
		return 0, nil
	}
	val, err := o.Crit.Value(b)
	if err != nil {
		return 0, err
	}
	factor, err := o.CorrFactor(mesh, b)
	if err != nil {
		return 0, err
	}
	if val < b.Critical*factor {
		return 1, nil
	}
	if o.LimitDamage {
		ndim := mesh.Dim()
		if mesh.IntactBonds(b.Nodes[0]) <= ndim || mesh.IntactBonds(b.Nodes[1]) <= ndim {
			return 1, nil
		}
	}
	return 0, nil
}

// CorrFactor computes the surface correction factor of bond b; or 1 if SurfCorr is false
//  factor = ½ (avg/Vi + avg/Vj)   where V is the volume sum and avg its mean over the mesh
func (o *Updater) CorrFactor(mesh Mesh, b *Bond) (float64, error) {
	if !o.SurfCorr {
		return 1, nil
	}
	vi, vj := mesh.VolumeSum(b.Nodes[0]), mesh.VolumeSum(b.Nodes[1])
	if vi <= 0 || vj <= 0 {
		return 0, chk.Err("volume sums of the nodes of bond %d must be positive. Vi=%g Vj=%g\n", b.Id, vi, vj)
	}
	avg := mesh.AvgVolumeSum()
	return 0.5 * (avg/vi + avg/vj), nil
}

// UpdateAll updates the status of all bonds. The new statuses are computed from the
// current state and committed together after all evaluations succeed
func (o *Updater) UpdateAll(ctx context.Context, mesh Mesh, bonds []*Bond) (nbroken int, err error) {
	status := make([]float64, len(bonds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Nworkers)
	for i, b := range bonds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (e error) {
			if e = gctx.Err(); e != nil {
				return
			}
			status[i], e = o.Status(mesh, b)
			return
		})
	}
	if err = g.Wait(); err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}
	for i, b := range bonds {
		if b.Intact() && status[i] < 0.5 {
			nbroken++
		}
		b.Status = status[i]
	}
	if o.Verbose {
		io.Pf("pd: %d of %d bonds broken\n", nbroken, len(bonds))
	}
	return
}
