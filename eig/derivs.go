// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eig

// FirstDerivs computes dλm/dA for each eigenvalue; i.e. the eigenprojectors
//  Note: the derivatives are discontinuous at repeated eigenvalues. For a double eigenvalue,
//        each member of the pair receives the average of the two one-sided limits; for a
//        triple eigenvalue, λ0 and λ2 receive I/2 and λ1 receives zero. These values
//        coincide with central finite differences
func FirstDerivs(sp *Spectrum) (d1 [3]Ten2) {
	switch sp.Mult {
	case Distinct:
		return distinctProjs(sp)
	case DoubleLow:
		return doubleProjs(sp, 2, 0, 1)
	case DoubleHigh:
		return doubleProjs(sp, 0, 1, 2)
	}
	return tripleProjs()
}

// SecondDerivs computes d²λm/dA dA for each eigenvalue
//  d1 -- first derivatives computed by FirstDerivs with the same spectrum
//  Note: for repeated eigenvalues, the result is the second derivative of the mean of the group
func SecondDerivs(sp *Spectrum, d1 [3]Ten2) (d2 [3]Ten4) {
	groups := sp.Mult.Groups()
	if len(groups) < 2 {
		return // triple: all zero
	}

	// projectors and mean deviatoric values of each group
	P := make([]Ten2, len(groups))
	μ := make([]float64, len(groups))
	for g, G := range groups {
		for _, n := range G {
			P[g] = P[g].Plus(d1[n]) // sum over group is the projector of the eigenspace
			μ[g] += sp.D[n]
		}
		μ[g] /= float64(len(G))
	}

	// Σ_{H≠G} (PH ⊗ PG + ...) / (2 (μG - μH)) / nG
	for g, G := range groups {
		var t Ten4
		for h := range groups {
			if h == g {
				continue
			}
			t.addSymProd(0.5/(μ[g]-μ[h]), P[h], P[g])
		}
		if len(G) > 1 {
			t = t.Scale(1.0 / float64(len(G)))
		}
		for _, m := range G {
			d2[m] = t
		}
	}
	return
}

// distinctProjs computes Pm = Π_{n≠m} (S - dn I) / (dm - dn)
func distinctProjs(sp *Spectrum) (P [3]Ten2) {
	d := sp.D
	for m := 0; m < 3; m++ {
		a, b := (m+1)%3, (m+2)%3
		X := sp.S.ShiftDiag(-d[a]).Dot(sp.S.ShiftDiag(-d[b]))
		P[m] = X.Scale(1.0 / ((d[m] - d[a]) * (d[m] - d[b]))).Sym()
	}
	return
}

// doubleProjs computes Pq = (S - d̄ I) / (dq - d̄) for the isolated eigenvalue q and
// (I - Pq)/2 for the pair {a, b}, where d̄ = (da + db)/2
func doubleProjs(sp *Spectrum, q, a, b int) (P [3]Ten2) {
	d := sp.D
	dbar := (d[a] + d[b]) / 2.0
	P[q] = sp.S.ShiftDiag(-dbar).Scale(1.0 / (d[q] - dbar))
	P[a] = Identity().Minus(P[q]).Scale(0.5)
	P[b] = P[a]
	return
}

// tripleProjs returns I/2, 0 and I/2; i.e. the central differences along each component
func tripleProjs() (P [3]Ten2) {
	P[0] = Identity().Scale(0.5)
	P[2] = P[0]
	return
}
