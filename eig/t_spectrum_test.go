// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"gonum.org/v1/gonum/mat"
)

func Test_spectrum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum01")

	m0 := NewTen2(0, 0, 0, 0, 0, 0, 0, 0, 0)
	m2 := NewTen2(1, 0, 0, 0, 2, 0, 0, 0, 3)
	m3 := NewTen2(1, 2, 3, 2, -5, -6, 3, -6, 9)

	λ := Values(m0)
	chk.Array(tst, "λ(m0)", 1e-17, λ[:], []float64{0, 0, 0})

	λ = Values(m2)
	chk.Array(tst, "λ(m2)", 1e-14, λ[:], []float64{1, 2, 3})

	λ = Values(m3)
	io.Pforan("λ(m3) = %v\n", λ)
	chk.Array(tst, "λ(m3)", 1e-4, λ[:], []float64{-8.17113, 1.51145, 11.6597})
}

func Test_spectrum02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum02")

	tests := []struct {
		a    Ten2
		λ    []float64
		mult Multiplicity
	}{
		{Diag(1, 1, 2), []float64{1, 1, 2}, DoubleLow},
		{Diag(1, 2, 1), []float64{1, 1, 2}, DoubleLow},
		{Diag(1, 2, 2), []float64{1, 2, 2}, DoubleHigh},
		{NewTen2(1, 1, 0, 1, 1, 0, 0, 0, 2), []float64{0, 2, 2}, DoubleHigh},
		{Diag(7, 7, 7), []float64{7, 7, 7}, Triple},
		{Diag(0, 0, 0), []float64{0, 0, 0}, Triple},
		{Diag(3, 1, 2), []float64{1, 2, 3}, Distinct},
		{Diag(-1, 1e3, 1e-3), []float64{-1, 1e-3, 1e3}, Distinct},
	}
	for idx, t := range tests {
		sp := NewSpectrum(t.a)
		io.Pforan("%d: λ = %v  %v\n", idx, sp.L, sp.Mult)
		chk.Array(tst, io.Sf("λ%d", idx), 1e-7, sp.L[:], t.λ)
		if sp.Mult != t.mult {
			tst.Errorf("%d: multiplicity is incorrect: %v != %v\n", idx, sp.Mult, t.mult)
		}
	}
}

func Test_spectrum03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum03. ordering and comparison with gonum")

	rnd.Init(1234)
	var es mat.EigenSym
	for idx := 0; idx < 200; idx++ {
		a := NewSymTen2(
			rnd.Float64(-10, 10), rnd.Float64(-10, 10), rnd.Float64(-10, 10),
			rnd.Float64(-10, 10), rnd.Float64(-10, 10), rnd.Float64(-10, 10),
		)
		λ := Values(a)
		if λ[0] > λ[1] || λ[1] > λ[2] {
			tst.Errorf("eigenvalues are not in ascending order: %v\n", λ)
			return
		}
		if ok := es.Factorize(a.SymDense(), false); !ok {
			tst.Errorf("gonum EigenSym failed\n")
			return
		}
		chk.Array(tst, io.Sf("λ%d", idx), 1e-9, λ[:], es.Values(nil))
	}
}

func Test_spectrum04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum04. invariants identity")

	m3 := NewTen2(1, 2, 3, 2, -5, -6, 3, -6, 9)
	λ := Values(m3)

	mean := Tr(m3) / 3.0
	shear := math.Sqrt(J2(m3))
	lode := math.Asin(Sin3Lode(m3, 0, 0)) / 3.0

	chk.Float64(tst, "λ0", 1e-4, λ[0], 2*shear*math.Sin(lode-TWOPIBY3)/SQ3+mean)
	chk.Float64(tst, "λ1", 1e-4, λ[1], 2*shear*math.Sin(lode)/SQ3+mean)
	chk.Float64(tst, "λ2", 1e-4, λ[2], 2*shear*math.Sin(lode+TWOPIBY3)/SQ3+mean)
	chk.Float64(tst, "θ", 1e-15, LodeAngle(m3), lode)

	// characteristic polynomial: λ³ - I1 λ² + I2 λ - I3 = 0
	I1, I2, I3 := λ[0]+λ[1]+λ[2], λ[0]*λ[1]+λ[1]*λ[2]+λ[2]*λ[0], λ[0]*λ[1]*λ[2]
	chk.Float64(tst, "I1", 1e-13, I1, m3.Tr())
	chk.Float64(tst, "I3", 1e-11, I3, det(m3))
	s := m3.Dev()
	chk.Float64(tst, "I2", 1e-11, I2, I1*I1/3.0-J2(m3))
	chk.Float64(tst, "J3", 1e-12, J3(m3), det(s))
}

func Test_spectrum05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum05. non-symmetric input and isotropic part")

	// only the symmetric part matters
	a := NewTen2(1, 3, 0, 1, 2, 0, 0, 0, 3)
	b := NewSymTen2(1, 2, 3, 2, 0, 0)
	λa, λb := Values(a), Values(b)
	chk.Array(tst, "λ(a) == λ(sym(a))", 1e-15, λa[:], λb[:])

	// large isotropic part
	c := Diag(1e6, 1e6, 1e6).Plus(NewSymTen2(-1, 0, 1, 0.5, 0, 0))
	λc := Values(c)
	var es mat.EigenSym
	es.Factorize(c.SymDense(), false)
	chk.Array(tst, "λ(c)", 1e-9, λc[:], es.Values(nil))
	if NewSpectrum(c).Mult != Distinct {
		tst.Errorf("eigenvalues of c should be distinct\n")
	}

	// isotropic with rounding in the deviator
	d := Diag(0.1, 0.1, 0.1)
	sp := NewSpectrum(d)
	chk.Array(tst, "λ(d)", 1e-15, sp.L[:], []float64{0.1, 0.1, 0.1})
	if sp.Mult != Triple {
		tst.Errorf("eigenvalues of d should be triple\n")
	}
}

func Test_spectrum06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum06. exact double roots")

	// the closed form splits a double root by O(√eps); equal eigenvalues must come out equal
	for _, h := range []float64{0, 5e-6, -5e-6, 1e-3, 0.5} {
		sp := NewSpectrum(Diag(1, 2+h, 1))
		io.Pforan("h = %g: λ = %v  %v\n", h, sp.L, sp.Mult)
		if sp.Mult != DoubleLow {
			tst.Errorf("h = %g: multiplicity should be double-low. %v is incorrect\n", h, sp.Mult)
			return
		}
		if sp.L[0] != sp.L[1] {
			tst.Errorf("h = %g: λ0 and λ1 must be equal: %v != %v\n", h, sp.L[0], sp.L[1])
		}
		chk.Array(tst, io.Sf("λ(h=%g)", h), 1e-14, sp.L[:], []float64{1, 1, 2 + h})
	}

	// σmax of a confined column
	sp := NewSpectrum(Diag(-7.5, -7.5, -30))
	if sp.L[1] != sp.L[2] {
		tst.Errorf("λ1 and λ2 must be equal: %v != %v\n", sp.L[1], sp.L[2])
	}
	chk.Float64(tst, "σmax", 1e-14, sp.Max(), -7.5)

	// rotated pair
	sp = NewSpectrum(NewTen2(1, 1, 0, 1, 1, 0, 0, 0, 2))
	if sp.L[1] != sp.L[2] {
		tst.Errorf("λ1 and λ2 must be equal: %v != %v\n", sp.L[1], sp.L[2])
	}
	chk.Array(tst, "λ(m8)", 1e-14, sp.L[:], []float64{0, 2, 2})
}

func Test_spectrum07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectrum07. lower bound of the tolerance")

	a := Diag(1, 2, 1)
	ref := Analyse(a, 2)
	for _, tol := range []float64{0, -1, 1e-16} {
		res := AnalyseTol(a, 2, tol)
		chk.Float64(tst, io.Sf("tol(%g)", tol), 1e-17, res.Tol, EvTolMin)
		if res.Mult != DoubleLow {
			tst.Errorf("tol = %g: multiplicity should be double-low. %v is incorrect\n", tol, res.Mult)
			return
		}
		for m := 0; m < 3; m++ {
			chk.Array(tst, io.Sf("tol(%g): dλ%d/dA", tol, m), 1e-15, res.D1[m][:], ref.D1[m][:])
			chk.Array(tst, io.Sf("tol(%g): d²λ%d/dA dA", tol, m), 1e-12, res.D2[m][:], ref.D2[m][:])
		}
	}

	// larger tolerances are kept
	chk.Float64(tst, "tol(1e-3)", 1e-17, NewSpectrumTol(a, 1e-3).Tol, 1e-3)
}
