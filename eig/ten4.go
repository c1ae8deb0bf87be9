// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Ten4 holds a fourth order tensor in 3D as a flat array; see idx4
type Ten4 [81]float64

// idx4 maps (i,j,k,l) to the position in Ten4
func idx4(i, j, k, l int) int {
	return 27*i + 9*j + 3*k + l
}

// At returns a_ijkl
func (a Ten4) At(i, j, k, l int) float64 { return a[idx4(i, j, k, l)] }

// Set sets a_ijkl
func (a *Ten4) Set(i, j, k, l int, v float64) { a[idx4(i, j, k, l)] = v }

// Add adds v to a_ijkl
func (a *Ten4) Add(i, j, k, l int, v float64) { a[idx4(i, j, k, l)] += v }

// Scale returns α a
func (a Ten4) Scale(α float64) Ten4 {
	for i := range a {
		a[i] *= α
	}
	return a
}

// Contract returns a:b, i.e. c_ij = a_ijkl b_kl
func (a Ten4) Contract(b Ten2) (c Ten2) {
	for ij := 0; ij < 9; ij++ {
		for kl := 0; kl < 9; kl++ {
			c[ij] += a[9*ij+kl] * b[kl]
		}
	}
	return
}

// MinorSymErr returns the largest deviation from a_ijkl = a_jikl = a_ijlk
func (a Ten4) MinorSymErr() (maxErr float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					v := a[idx4(i, j, k, l)]
					maxErr = math.Max(maxErr, math.Abs(v-a[idx4(j, i, k, l)]))
					maxErr = math.Max(maxErr, math.Abs(v-a[idx4(i, j, l, k)]))
				}
			}
		}
	}
	return
}

// MajorSymErr returns the largest deviation from a_ijkl = a_klij
func (a Ten4) MajorSymErr() (maxErr float64) {
	for ij := 0; ij < 9; ij++ {
		for kl := ij + 1; kl < 9; kl++ {
			maxErr = math.Max(maxErr, math.Abs(a[9*ij+kl]-a[9*kl+ij]))
		}
	}
	return
}

// Deep4 returns a copy as a nested slice [3][3][3][3]
func (a Ten4) Deep4() (A [][][][]float64) {
	A = make([][][][]float64, 3)
	for i := 0; i < 3; i++ {
		A[i] = utl.Deep3alloc(3, 3, 3)
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					A[i][j][k][l] = a[idx4(i, j, k, l)]
				}
			}
		}
	}
	return
}

// addSymProd adds α (b_ik c_jl + b_il c_jk + c_il b_jk + c_ik b_jl) to a_ijkl
func (a *Ten4) addSymProd(α float64, b, c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					a[idx4(i, j, k, l)] += α * (b[3*i+k]*c[3*j+l] + b[3*i+l]*c[3*j+k] +
						c[3*i+l]*b[3*j+k] + c[3*i+k]*b[3*j+l])
				}
			}
		}
	}
}
