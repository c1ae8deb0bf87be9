// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

// Multiplicity classifies the eigenvalues of a symmetric tensor
type Multiplicity int

// multiplicities
const (
	Distinct   Multiplicity = iota // λ0 < λ1 < λ2
	DoubleLow                      // λ0 = λ1 < λ2
	DoubleHigh                     // λ0 < λ1 = λ2
	Triple                         // λ0 = λ1 = λ2
)

// EvTol is the default tolerance to detect repeated eigenvalues, relative to √J2
const EvTol = 1e-6

// EvTolMin is the smallest tolerance accepted to detect repeated eigenvalues. Near a double
// root, asin(sin3θ) loses half of the digits, so smaller gaps cannot be resolved
const EvTolMin = 1e-7

// Classify classifies sorted deviatoric principal values d given shear = √J2
//  λi and λj are taken as equal if |di - dj| ≤ tol √J2
func Classify(d [3]float64, shear, tol float64) Multiplicity {
	if shear == 0 {
		return Triple
	}
	lo := d[1]-d[0] <= tol*shear
	hi := d[2]-d[1] <= tol*shear
	switch {
	case lo && hi:
		return Triple
	case lo:
		return DoubleLow
	case hi:
		return DoubleHigh
	}
	return Distinct
}

// String returns the name of the multiplicity
func (o Multiplicity) String() string {
	switch o {
	case Distinct:
		return "distinct"
	case DoubleLow:
		return "double-low"
	case DoubleHigh:
		return "double-high"
	case Triple:
		return "triple"
	}
	return "unknown"
}

// Repeated returns true if at least two eigenvalues coincide
func (o Multiplicity) Repeated() bool {
	return o != Distinct
}

// Groups returns the indices of eigenvalues sharing the same value
func (o Multiplicity) Groups() [][]int {
	switch o {
	case DoubleLow:
		return [][]int{{0, 1}, {2}}
	case DoubleHigh:
		return [][]int{{0}, {1, 2}}
	case Triple:
		return [][]int{{0, 1, 2}}
	}
	return [][]int{{0}, {1}, {2}}
}

// Group returns the indices of eigenvalues sharing the value of λm
func (o Multiplicity) Group(m int) []int {
	for _, g := range o.Groups() {
		for _, n := range g {
			if n == m {
				return g
			}
		}
	}
	return nil
}
