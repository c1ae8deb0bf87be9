// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eig implements closed-form eigenvalues of symmetric 3×3 tensors and their
// first and second derivatives with respect to the tensor components
/*
 *   A ──► NewSpectrum ──► λ0 ≤ λ1 ≤ λ2, multiplicity
 *              │
 *              ├──► FirstDerivs  ──► ∂λm/∂A       [3]Ten2
 *              │         │
 *              └─────────┴──► SecondDerivs ──► ∂²λm/∂A∂A  [3]Ten4
 *
 *  λk = 2/√3 √J2 sin(θ + ok) + I1/3   with   ok = {-2π/3, 0, 2π/3}
 *  sin(3θ) = -(3√3/2) J3 / J2^(3/2)
 */
package eig

import "math"

// ShearZero defines isotropic tensors: √J2 ≤ ShearZero |I1/3|
const ShearZero = 1e-14

// Spectrum holds the eigenvalues of a symmetric tensor and the data shared by the derivative engines
type Spectrum struct {
	A     Ten2         // symmetric part of the input tensor
	S     Ten2         // deviator of A
	Mean  float64      // I1/3
	Shear float64      // √J2
	Lode  float64      // θ ∈ [-π/6, π/6]
	D     [3]float64   // deviatoric principal values; ascending
	L     [3]float64   // eigenvalues λ0 ≤ λ1 ≤ λ2
	Mult  Multiplicity // classification of repeated eigenvalues
	Tol   float64      // tolerance used to compute Mult
}

// NewSpectrum computes the eigenvalues of the symmetric part of a
func NewSpectrum(a Ten2) *Spectrum {
	return NewSpectrumTol(a, EvTol)
}

// NewSpectrumTol computes the eigenvalues of the symmetric part of a
//  tol -- tolerance to detect repeated eigenvalues, relative to √J2; at least EvTolMin
func NewSpectrumTol(a Ten2, tol float64) (o *Spectrum) {
	o = &Spectrum{A: a.Sym(), Tol: math.Max(tol, EvTolMin)}
	o.Mean = o.A.Tr() / 3.0
	o.S = o.A.Dev()
	o.Shear = math.Sqrt(j2dev(o.S))
	if o.Shear <= ShearZero*math.Abs(o.Mean) {
		o.Shear = 0 // isotropic up to round-off
	}
	if o.Shear > 0 {
		o.Lode = math.Asin(sin3lode(o.S, o.Shear)) / 3.0
		c := TWOBYSQ3 * o.Shear
		o.D[0] = c * math.Sin(o.Lode-TWOPIBY3)
		o.D[1] = c * math.Sin(o.Lode)
		o.D[2] = c * math.Sin(o.Lode+TWOPIBY3)
		sort3(&o.D)
	}
	o.Mult = Classify(o.D, o.Shear, o.Tol)

	// equal eigenvalues take the mean of their group; the splitting errors are opposite
	for _, g := range o.Mult.Groups() {
		if len(g) < 2 {
			continue
		}
		var d float64
		for _, n := range g {
			d += o.D[n]
		}
		d /= float64(len(g))
		for _, n := range g {
			o.D[n] = d
		}
	}
	for k := 0; k < 3; k++ {
		o.L[k] = o.Mean + o.D[k]
	}
	return
}

// Values returns the eigenvalues of the symmetric part of a in ascending order
func Values(a Ten2) [3]float64 {
	return NewSpectrum(a).L
}

// Max returns the largest eigenvalue
func (o *Spectrum) Max() float64 { return o.L[2] }

// Min returns the smallest eigenvalue
func (o *Spectrum) Min() float64 { return o.L[0] }

// sort3 sorts three values in ascending order
func sort3(v *[3]float64) {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
}
