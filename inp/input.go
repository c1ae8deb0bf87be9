// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) file
package inp

import (
	"path/filepath"

	"github.com/cpmech/gopd/eig"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// TensorData holds the components of one tensor. Only one of A, Sym or Mandel must be given
type TensorData struct {
	Name   string    `yaml:"name"`   // name of tensor
	A      []float64 `yaml:"a"`      // 9 components, row by row
	Sym    []float64 `yaml:"sym"`    // 6 components: xx, yy, zz, xy, yz, zx
	Mandel []float64 `yaml:"mandel"` // 4 or 6 components in Mandel's basis
}

// Input holds the data for an eigen-analysis run
type Input struct {
	Desc    string        `yaml:"desc"`    // description
	Tol     float64       `yaml:"tol"`     // tolerance to detect repeated eigenvalues, relative to √J2
	Order   int           `yaml:"order"`   // 0: eigenvalues; 1: and first derivatives; 2: and second derivatives
	Verbose bool          `yaml:"verbose"` // show derivatives
	Tensors []*TensorData `yaml:"tensors"` // tensors to be analysed

	// derived
	Key string `yaml:"-"` // filename key
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.Tol = eig.EvTol
	o.Order = 1
}

// ReadInput reads and validates an input file
func ReadInput(fnpath string) (o *Input, err error) {

	// read file; io.ReadFile panics on failure
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("ReadInput: cannot read input file %q\n%v", fnpath, r)
		}
	}()
	b := io.ReadFile(fnpath)

	// decode
	o = new(Input)
	o.SetDefault()
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadInput: cannot unmarshal input file %q\n%v", fnpath, err)
	}
	o.Key = io.FnKey(filepath.Base(fnpath))

	// check
	if o.Tol <= 0 {
		return nil, chk.Err("ReadInput: tol must be positive. %g is invalid", o.Tol)
	}
	if o.Order < 0 || o.Order > 2 {
		return nil, chk.Err("ReadInput: order must be 0, 1 or 2. %d is invalid", o.Order)
	}
	if len(o.Tensors) == 0 {
		return nil, chk.Err("ReadInput: at least one tensor must be given in %q", fnpath)
	}
	for i, t := range o.Tensors {
		if t.Name == "" {
			t.Name = io.Sf("t%d", i)
		}
		if _, err = t.Ten2(); err != nil {
			return nil, err
		}
	}
	return
}

// Ten2 returns the tensor
func (o TensorData) Ten2() (a eig.Ten2, err error) {
	given := 0
	for _, v := range [][]float64{o.A, o.Sym, o.Mandel} {
		if v != nil {
			given++
		}
	}
	if given != 1 {
		return a, chk.Err("tensor %q: one of 'a', 'sym' or 'mandel' must be given", o.Name)
	}
	switch {
	case o.A != nil:
		if len(o.A) != 9 {
			return a, chk.Err("tensor %q: 'a' must have 9 components. %d is invalid", o.Name, len(o.A))
		}
		copy(a[:], o.A)
	case o.Sym != nil:
		if len(o.Sym) != 6 {
			return a, chk.Err("tensor %q: 'sym' must have 6 components. %d is invalid", o.Name, len(o.Sym))
		}
		a = eig.NewSymTen2(o.Sym[0], o.Sym[1], o.Sym[2], o.Sym[3], o.Sym[4], o.Sym[5])
	default:
		a, err = eig.FromMandel(o.Mandel)
		if err != nil {
			return a, chk.Err("tensor %q: %v", o.Name, err)
		}
	}
	return
}
