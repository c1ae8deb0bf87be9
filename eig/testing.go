// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckFirstDerivs compares dλ/dA with finite differences of the eigenvalues
//  ε       -- perturbation applied to one component a_ij at a time (aji is not changed)
//  central -- use (λ(a+ε/2) - λ(a-ε/2))/ε; otherwise (λ(a+ε) - λ(a))/ε
func CheckFirstDerivs(tst *testing.T, a Ten2, ε, tol float64, central, verbose bool) {
	λ, d1 := Derivs(a)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var num [3]float64
			if central {
				ap, am := a, a
				ap.Add(i, j, ε/2.0)
				am.Add(i, j, -ε/2.0)
				λp, λm := Values(ap), Values(am)
				for k := 0; k < 3; k++ {
					num[k] = (λp[k] - λm[k]) / ε
				}
			} else {
				ap := a
				ap.Add(i, j, ε)
				λp := Values(ap)
				for k := 0; k < 3; k++ {
					num[k] = (λp[k] - λ[k]) / ε
				}
			}
			for k := 0; k < 3; k++ {
				chk.AnaNum(tst, io.Sf("dλ%d/da%d%d", k, i, j), tol, d1[k].At(i, j), num[k], verbose)
			}
		}
	}
}

// CheckSecondDerivs compares d²λ/dA dA with forward differences of dλ/dA
//  Note: for repeated eigenvalues, the first derivatives are replaced by their mean over the
//        group of equal eigenvalues, which is smooth. At the perturbed tensor, this mean is
//        computed from the complement of the isolated projectors
func CheckSecondDerivs(tst *testing.T, a Ten2, ε, tol float64, verbose bool) {
	sp := NewSpectrum(a)
	d1 := FirstDerivs(sp)
	d2 := SecondDerivs(sp, d1)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			ap := a
			ap.Add(k, l, ε)
			d1p := FirstDerivs(NewSpectrum(ap))
			for m := 0; m < 3; m++ {
				G := sp.Mult.Group(m)
				ana, anap := groupMean(d1, G), groupMean(d1p, G)
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						num := (anap.At(i, j) - ana.At(i, j)) / ε
						chk.AnaNum(tst, io.Sf("d²λ%d/da%d%d da%d%d", m, i, j, k, l), tol, d2[m].At(i, j, k, l), num, verbose)
					}
				}
			}
		}
	}
}

// CheckSymmetry checks the symmetries of the derivatives
func CheckSymmetry(tst *testing.T, res Analysis, tol float64) {
	for m := 0; m < 3; m++ {
		if res.Order > 0 && !res.D1[m].IsSymmetric(tol) {
			tst.Errorf("dλ%d/dA is not symmetric:\n%v", m, res.D1[m])
		}
		if res.Order > 1 {
			if e := res.D2[m].MinorSymErr(); e > tol {
				tst.Errorf("d²λ%d/dA dA does not have minor symmetry. err = %g", m, e)
			}
			if e := res.D2[m].MajorSymErr(); e > tol {
				tst.Errorf("d²λ%d/dA dA does not have major symmetry. err = %g", m, e)
			}
		}
	}
}

// groupMean computes the mean of the first derivatives over the indices in G
func groupMean(d1 [3]Ten2, G []int) (res Ten2) {
	switch len(G) {
	case 1:
		return d1[G[0]]
	case 3:
		return Identity().Scale(1.0 / 3.0)
	}
	res = Identity()
	for n := 0; n < 3; n++ {
		if n != G[0] && n != G[1] {
			res = res.Minus(d1[n])
		}
	}
	return res.Scale(0.5)
}
