// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_input01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input01")

	in, err := ReadInput("data/tensors.yaml")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	io.Pforan("%+v\n", in)
	chk.String(tst, in.Key, "tensors")
	chk.Float64(tst, "tol", 1e-17, in.Tol, 1e-6)
	chk.Int(tst, "order", in.Order, 2)
	chk.Int(tst, "ntensors", len(in.Tensors), 6)
	chk.String(tst, in.Tensors[5].Name, "t5")

	a, err := in.Tensors[1].Ten2()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Array(tst, "m3", 1e-17, a[:], []float64{1, 2, 3, 2, -5, -6, 3, -6, 9})

	a, _ = in.Tensors[2].Ten2()
	chk.Array(tst, "m5", 1e-17, a[:], []float64{1, 0, 0, 0, 1, 0, 0, 0, 2})

	a, _ = in.Tensors[5].Ten2()
	chk.Array(tst, "mandel", 1e-15, a[:], []float64{1, 1, 0, 1, 2, 0, 0, 0, 3})
}

func Test_input02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input02. errors")

	for _, fn := range []string{"data/badorder.yaml", "data/badtensor.yaml", "data/notfound.yaml"} {
		_, err := ReadInput(fn)
		if err == nil {
			tst.Errorf("%s should fail\n", fn)
			return
		}
		io.Pforan("%v\n", err)
	}

	for _, t := range []TensorData{
		{Name: "none"},
		{Name: "short", A: []float64{1, 2, 3}},
		{Name: "sym", Sym: []float64{1, 2, 3, 4, 5}},
		{Name: "mandel", Mandel: []float64{1, 2, 3}},
	} {
		if _, err := t.Ten2(); err == nil {
			tst.Errorf("%s should fail\n", t.Name)
		}
	}
}
