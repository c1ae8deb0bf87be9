// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gopd/eig"
)

// CriticalStretch uses the mechanical stretch of the bond
type CriticalStretch struct{}

// MaximumPrincipalStress uses the largest eigenvalue of the average stress of the end nodes
type MaximumPrincipalStress struct {
	tol float64 // tolerance to detect repeated eigenvalues
}

// add criteria to factory
func init() {
	allocators["CriticalStretch"] = func() Criterion { return new(CriticalStretch) }
	allocators["MaximumPrincipalStress"] = func() Criterion { return new(MaximumPrincipalStress) }
}

// Init initialises criterion
func (o *CriticalStretch) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("CriticalStretch: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o CriticalStretch) GetPrms() dbf.Params {
	return nil
}

// Value returns the mechanical stretch
func (o CriticalStretch) Value(b *Bond) (float64, error) {
	return b.Stretch, nil
}

// Init initialises criterion
func (o *MaximumPrincipalStress) Init(prms dbf.Params) (err error) {
	o.tol = eig.EvTol
	for _, p := range prms {
		switch p.N {
		case "evtol":
			o.tol = p.V
		default:
			return chk.Err("MaximumPrincipalStress: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.tol <= 0 {
		return chk.Err("MaximumPrincipalStress: evtol must be positive. %g is invalid\n", o.tol)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MaximumPrincipalStress) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "evtol", V: eig.EvTol},
	}
}

// Value returns the maximum principal stress of ½(σi + σj). Broken bonds give zero
func (o MaximumPrincipalStress) Value(b *Bond) (float64, error) {
	if len(b.Stress) != 2 {
		return 0, chk.Err("MaximumPrincipalStress: stresses at both nodes of bond %d are required\n", b.Id)
	}
	if !b.Intact() {
		return 0, nil
	}
	return eig.NewSpectrumTol(b.AvgStress(), o.tol).Max(), nil
}

// Sensitivity computes the maximum principal stress of σ and its first and second derivatives
func (o MaximumPrincipalStress) Sensitivity(σ eig.Ten2) (σmax float64, dσmax eig.Ten2, d2σmax eig.Ten4) {
	res := eig.AnalyseTol(σ, 2, o.tol)
	return res.L[2], res.D1[2], res.D2[2]
}
