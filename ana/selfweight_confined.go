// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the eigen-analysis engine
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gopd/eig"
)

// ConfinedSelfWeight computes the stress state of a confined linear elastic column under gravity
//
//     ▷ o-----------o ◁
//     ▷ |           | ◁
//     ▷ |    E, ρ   | ◁       negative stress means compression
//  h  ▷ |    ν, g   | ◁       g = 10  =>  b = -10 * ρ (body force)
//     ▷ |           | ◁
//     ▷ o-----------o ◁
//       △  △  △  △  △
//             w
//
//  The horizontal stresses are equal, thus the two largest principal stresses coincide
type ConfinedSelfWeight struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	ρ float64 // density
	g float64 // gravity constant (positive value)
	h float64 // height
	w float64 // width

	// derived
	d float64 // horizontal/vertical stress ratio = ν/(1-ν)
	M float64 // P-wave modulus
}

// Init initialises this structure
func (o *ConfinedSelfWeight) Init(prms dbf.Params) (err error) {

	// default values
	o.E = 1000.0
	o.ν = 0.25
	o.ρ = 2.0
	o.g = 10.0
	o.h = 1.0
	o.w = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "rho":
			o.ρ = p.V
		case "g":
			o.g = p.V
		case "h":
			o.h = p.V
		case "w":
			o.w = p.V
		default:
			return chk.Err("selfweight: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.ν < 0 || o.ν >= 0.5 {
		return chk.Err("selfweight: Poisson's coefficient must be in [0, 0.5). nu = %g is invalid\n", o.ν)
	}

	// derived
	o.d = o.ν / (1.0 - o.ν)
	o.M = o.E * (1.0 - o.ν) / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	return
}

// Stress computes the stress tensor at time t and point x. The last coordinate is the elevation
func (o ConfinedSelfWeight) Stress(t float64, x []float64) (σ eig.Ten2) {
	ndim := len(x)
	z := x[ndim-1]
	b := o.g * t
	σv := -o.ρ * b * (o.h - z)
	σh := o.d * σv
	if ndim == 2 {
		return eig.Diag(σh, σv, σh)
	}
	return eig.Diag(σh, σh, σv)
}

// PrincipalStresses computes the principal stresses in ascending order; i.e. σv ≤ σh = σh
func (o ConfinedSelfWeight) PrincipalStresses(t float64, x []float64) [3]float64 {
	return eig.Values(o.Stress(t, x))
}

// Displ computes displacement components
func (o ConfinedSelfWeight) Displ(t float64, x []float64) (u []float64) {
	ndim := len(x)
	z := x[ndim-1]
	b := o.g * t
	α := -o.ρ * b / o.M
	u = make([]float64, ndim)
	u[ndim-1] = α * (o.h - z/2.0) * z
	return
}

// CheckStress checks stresses
func (o ConfinedSelfWeight) CheckStress(tst *testing.T, t float64, σ eig.Ten2, x []float64, tol float64) {
	σana := o.Stress(t, x)
	chk.Array(tst, "σ", tol, σ[:], σana[:])
}

// CheckDispl checks displacements
func (o ConfinedSelfWeight) CheckDispl(tst *testing.T, t float64, u, x []float64, tol float64) {
	uana := o.Displ(t, x)
	chk.Array(tst, "u", tol, u, uana)
}
