// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopd/eig"
	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".yaml", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGopd -- eigenvalues of symmetric tensors and their derivatives\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	in, err := inp.ReadInput(fnamepath)
	if err != nil {
		chk.Panic("cannot read input:\n%v", err)
	}
	if verbose && in.Desc != "" {
		io.Pf("%s\n\n", in.Desc)
	}

	// run
	for _, t := range in.Tensors {
		a, err := t.Ten2()
		if err != nil {
			chk.Panic("%v", err)
		}
		res := eig.AnalyseTol(a, in.Order, in.Tol)
		io.Pfyel("%s\n", t.Name)
		io.Pf("A =\n%v", a)
		io.Pf("λ = %v  (%v)  θ = %g\n", res.L, res.Mult, res.Lode)
		if !in.Verbose {
			continue
		}
		for m := 0; m < 3; m++ {
			if in.Order > 0 {
				io.Pforan("dλ%d/dA =\n%v", m, res.D1[m])
			}
			if in.Order > 1 {
				io.Pforan("d²λ%d/dA dA: minor symmetry error = %g  major symmetry error = %g\n", m, res.D2[m].MinorSymErr(), res.D2[m].MajorSymErr())
			}
		}
		io.Pf("\n")
	}
}
