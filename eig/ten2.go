// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/tsr"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Ten2 holds a second order tensor in 3D as a row-major array
//  Note: symmetric tensors are expected; see Sym
type Ten2 [9]float64

// NewTen2 returns a tensor with components given row by row
func NewTen2(a00, a01, a02, a10, a11, a12, a20, a21, a22 float64) Ten2 {
	return Ten2{a00, a01, a02, a10, a11, a12, a20, a21, a22}
}

// NewSymTen2 returns a symmetric tensor from its 6 independent components
func NewSymTen2(xx, yy, zz, xy, yz, zx float64) Ten2 {
	return Ten2{xx, xy, zx, xy, yy, yz, zx, yz, zz}
}

// Diag returns a diagonal tensor
func Diag(a0, a1, a2 float64) Ten2 {
	return Ten2{a0, 0, 0, 0, a1, 0, 0, 0, a2}
}

// Identity returns the second order identity tensor
func Identity() Ten2 {
	return Diag(1, 1, 1)
}

// FromMandel converts a tensor given in Mandel's basis
//  m -- {m00, m11, m22, √2 m01} in 2D or {m00, m11, m22, √2 m01, √2 m12, √2 m20} in 3D
func FromMandel(m []float64) (a Ten2, err error) {
	if len(m) != 4 && len(m) != 6 {
		return a, chk.Err("Mandel vector must have 4 or 6 components; %d is invalid", len(m))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			I := tsr.SecToManI[i][j]
			if I >= len(m) {
				continue
			}
			if i == j {
				a.Set(i, j, m[I])
			} else {
				a.Set(i, j, m[I]/utl.SQ2)
			}
		}
	}
	return
}

// Mandel returns the 6 components of the symmetric part of a in Mandel's basis
func (a Ten2) Mandel() (m []float64) {
	s := a.Sym()
	m = make([]float64, 6)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			if i == j {
				m[tsr.SecToManI[i][j]] = s.At(i, j)
			} else {
				m[tsr.SecToManI[i][j]] = s.At(i, j) * utl.SQ2
			}
		}
	}
	return
}

// At returns a_ij
func (a Ten2) At(i, j int) float64 { return a[3*i+j] }

// Set sets a_ij
func (a *Ten2) Set(i, j int, v float64) { a[3*i+j] = v }

// Add adds v to a_ij
func (a *Ten2) Add(i, j int, v float64) { a[3*i+j] += v }

// Tr returns the trace
func (a Ten2) Tr() float64 { return a[0] + a[4] + a[8] }

// Sym returns the symmetric part (a + aᵀ)/2
func (a Ten2) Sym() (s Ten2) {
	for i := 0; i < 3; i++ {
		s[4*i] = a[4*i]
		for j := i + 1; j < 3; j++ {
			v := (a[3*i+j] + a[3*j+i]) / 2.0
			s[3*i+j], s[3*j+i] = v, v
		}
	}
	return
}

// Dev returns the deviatoric part a - tr(a)/3 I
func (a Ten2) Dev() Ten2 {
	p := a.Tr() / 3.0
	a[0] -= p
	a[4] -= p
	a[8] -= p
	return a
}

// Scale returns α a
func (a Ten2) Scale(α float64) Ten2 {
	for i := range a {
		a[i] *= α
	}
	return a
}

// Plus returns a + b
func (a Ten2) Plus(b Ten2) Ten2 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Minus returns a - b
func (a Ten2) Minus(b Ten2) Ten2 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

// ShiftDiag returns a + α I
func (a Ten2) ShiftDiag(α float64) Ten2 {
	a[0] += α
	a[4] += α
	a[8] += α
	return a
}

// Dot returns the single contraction a・b
func (a Ten2) Dot(b Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}
	return
}

// Ddot returns the double contraction a:b
func (a Ten2) Ddot(b Ten2) (res float64) {
	for i := range a {
		res += a[i] * b[i]
	}
	return
}

// IsSymmetric tells whether |a_ij - a_ji| ≤ tol for all i, j
func (a Ten2) IsSymmetric(tol float64) bool {
	return math.Abs(a[1]-a[3]) <= tol && math.Abs(a[2]-a[6]) <= tol && math.Abs(a[5]-a[7]) <= tol
}

// Mat returns a copy as a nested slice [3][3]
func (a Ten2) Mat() [][]float64 {
	return [][]float64{
		{a[0], a[1], a[2]},
		{a[3], a[4], a[5]},
		{a[6], a[7], a[8]},
	}
}

// SymDense returns the symmetric part as a gonum matrix
func (a Ten2) SymDense() *mat.SymDense {
	s := a.Sym()
	return mat.NewSymDense(3, s[:])
}

// String returns a formatted representation
func (a Ten2) String() string {
	l := ""
	for i := 0; i < 3; i++ {
		l += io.Sf("%13.6e %13.6e %13.6e\n", a[3*i], a[3*i+1], a[3*i+2])
	}
	return l
}
