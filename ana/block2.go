// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gopd/eig"
)

// Block2 computes the eigenvalues of a symmetric 2×2 block and their derivatives
// with respect to the block components (a, b, c)
//
//        / a  c \         λ = (a+b)/2 ± r
//   M =  |      |   =>
//        \ c  b /         r = √(h² + c²)   with   h = (a-b)/2
//
//  Embedded in 3D with an out-of-plane value z, the derivatives relate to the
//  tensor derivatives by: ∂λ/∂c = 2 ∂λ/∂A01 and ∂²λ/∂c² = 4 ∂²λ/∂A01∂A01
type Block2 struct {
	A, B, C float64 // components
	Z       float64 // out-of-plane component when embedded in 3D
}

// Init initialises this structure
func (o *Block2) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "c":
			o.C = p.V
		case "z":
			o.Z = p.V
		default:
			return chk.Err("block2: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// Ten2 returns the block embedded in a 3D tensor
func (o Block2) Ten2() eig.Ten2 {
	return eig.NewSymTen2(o.A, o.B, o.Z, o.C, 0, 0)
}

// Values returns the lower and higher eigenvalues of the block
func (o Block2) Values() (lo, hi float64) {
	m, r := (o.A+o.B)/2.0, o.radius()
	return m - r, m + r
}

// Derivs returns the first derivatives of (lo, hi) with respect to (a, b, c)
func (o Block2) Derivs() (d1 [2][3]float64, err error) {
	h, r := (o.A-o.B)/2.0, o.radius()
	if r == 0 {
		return d1, chk.Err("block2: derivatives are undefined for equal eigenvalues\n")
	}
	dr := [3]float64{h / (2.0 * r), -h / (2.0 * r), o.C / r}
	dm := [3]float64{0.5, 0.5, 0}
	for k := 0; k < 3; k++ {
		d1[0][k] = dm[k] - dr[k]
		d1[1][k] = dm[k] + dr[k]
	}
	return
}

// Derivs2 returns the second derivatives of (lo, hi) with respect to (a, b, c)
func (o Block2) Derivs2() (d2 [2][3][3]float64, err error) {
	h, c, r := (o.A-o.B)/2.0, o.C, o.radius()
	if r == 0 {
		return d2, chk.Err("block2: derivatives are undefined for equal eigenvalues\n")
	}
	r3 := r * r * r
	rr := [3][3]float64{
		{c * c / (4.0 * r3), -c * c / (4.0 * r3), -h * c / (2.0 * r3)},
		{-c * c / (4.0 * r3), c * c / (4.0 * r3), h * c / (2.0 * r3)},
		{-h * c / (2.0 * r3), h * c / (2.0 * r3), h * h / r3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d2[0][i][j] = -rr[i][j]
			d2[1][i][j] = rr[i][j]
		}
	}
	return
}

func (o Block2) radius() float64 {
	return math.Hypot((o.A-o.B)/2.0, o.C)
}
