// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd implements the bond status update of bond-based peridynamic models
/*
 *   bond (i,j) ──► Criterion.Value ──► val
 *                                       │
 *   intact  &&  val < critical × (surface correction)   ──► 1 (intact)
 *   intact  &&  too few intact bonds at i or j          ──► 1 (intact)
 *   otherwise                                           ──► 0 (broken)
 */
package pd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Criterion defines the value of a bond compared against its critical value
type Criterion interface {
	Init(prms dbf.Params) error     // initialises criterion
	GetPrms() dbf.Params            // gets (an example) of parameters
	Value(b *Bond) (float64, error) // computes the value of an intact bond
}

// New returns a new failure criterion
func New(name string) (model Criterion, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("failure criterion %q is not available in 'pd' database. Choose from: CriticalStretch and MaximumPrincipalStress", name)
	}
	return allocator(), nil
}

// allocators holds all available failure criteria; name => allocator
var allocators = map[string]func() Criterion{}
