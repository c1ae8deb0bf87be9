// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import "math"

// constants
const (
	SQ3      = 1.7320508075688772935274463415059 // √3
	TWOPIBY3 = 2.0 * math.Pi / 3.0               // 2π/3
	SIN3COEF = -1.5 * SQ3                        // coefficient in sin(3θ) = -(3√3/2) J3 / J2^(3/2)
	TWOBYSQ3 = 2.0 / SQ3                         // 2/√3
)

// Tr returns the first invariant I1 = tr(a)
func Tr(a Ten2) float64 {
	return a.Tr()
}

// J2 returns the second invariant of the deviator of the symmetric part of a
//  J2 = ½ s:s
func J2(a Ten2) float64 {
	return j2dev(a.Sym().Dev())
}

// J3 returns the third invariant of the deviator of the symmetric part of a
//  J3 = det(s)
func J3(a Ten2) float64 {
	return det(a.Sym().Dev())
}

// Sin3Lode returns sin(3θ) = -(3√3/2) J3 / J2^(3/2), clamped to [-1,1]
//  r0Value is returned if J2 ≤ r0; e.g. for isotropic tensors
func Sin3Lode(a Ten2, r0, r0Value float64) float64 {
	s := a.Sym().Dev()
	j2 := j2dev(s)
	if j2 <= r0 || j2 == 0 {
		return r0Value
	}
	return sin3lode(s, math.Sqrt(j2))
}

// LodeAngle returns θ = asin(sin(3θ))/3 ∈ [-π/6, π/6]; zero for isotropic tensors
func LodeAngle(a Ten2) float64 {
	return math.Asin(Sin3Lode(a, 0, 0)) / 3.0
}

// j2dev computes ½ s:s for a symmetric deviator s
func j2dev(s Ten2) float64 {
	return 0.5*(s[0]*s[0]+s[4]*s[4]+s[8]*s[8]) + s[1]*s[1] + s[5]*s[5] + s[2]*s[2]
}

// sin3lode computes the clamped sin(3θ) of a symmetric deviator with shear = √J2 > 0
//  Note: s is normalised first so that J2^(3/2) cannot underflow
func sin3lode(s Ten2, shear float64) float64 {
	return clamp(SIN3COEF*det(s.Scale(1.0/shear)), -1, 1)
}

// det computes the determinant
func det(a Ten2) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
