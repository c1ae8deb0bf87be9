// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

// Analysis collects the results of an eigen-analysis
type Analysis struct {
	*Spectrum
	Order int     // 0: eigenvalues only; 1: and first derivatives; 2: and second derivatives
	D1    [3]Ten2 // dλm/dA (if Order ≥ 1)
	D2    [3]Ten4 // d²λm/dA dA (if Order ≥ 2)
}

// Analyse computes the eigenvalues of a and, depending on order, their derivatives
func Analyse(a Ten2, order int) Analysis {
	return AnalyseTol(a, order, EvTol)
}

// AnalyseTol computes the eigenvalues of a and, depending on order, their derivatives
//  tol -- tolerance to detect repeated eigenvalues, relative to √J2; at least EvTolMin
func AnalyseTol(a Ten2, order int, tol float64) (o Analysis) {
	o.Spectrum = NewSpectrumTol(a, tol)
	o.Order = order
	if order < 1 {
		return
	}
	o.D1 = FirstDerivs(o.Spectrum)
	if order < 2 {
		return
	}
	o.D2 = SecondDerivs(o.Spectrum, o.D1)
	return
}

// Derivs returns the eigenvalues of a and their first derivatives
func Derivs(a Ten2) (λ [3]float64, d1 [3]Ten2) {
	sp := NewSpectrum(a)
	return sp.L, FirstDerivs(sp)
}

// Derivs2 returns the second derivatives of the eigenvalues of a
func Derivs2(a Ten2) (d2 [3]Ten4) {
	sp := NewSpectrum(a)
	return SecondDerivs(sp, FirstDerivs(sp))
}
