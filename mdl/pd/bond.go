// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gopd/eig"
)

// Bond holds the state of a bond connecting two material points
type Bond struct {
	Id       int        // bond index
	Nodes    [2]int     // end nodes
	Status   float64    // 1: intact; 0: broken
	Stretch  float64    // mechanical stretch
	Critical float64    // critical value of the failure criterion
	Stress   []eig.Ten2 // stresses at the end nodes (optional)
}

// NewBond returns a new intact bond
func NewBond(id, i, j int, critical float64) *Bond {
	return &Bond{Id: id, Nodes: [2]int{i, j}, Status: 1, Critical: critical}
}

// Intact tells whether the bond is not broken
func (o *Bond) Intact() bool {
	return o.Status > 0.5
}

// AvgStress returns ½(σi + σj)
func (o *Bond) AvgStress() eig.Ten2 {
	return o.Stress[0].Plus(o.Stress[1]).Scale(0.5)
}

// Mesh defines the nodal quantities of the peridynamic discretisation needed by the updater
type Mesh interface {
	Dim() int                   // space dimension
	AvgVolumeSum() float64      // average of VolumeSum over all nodes
	VolumeSum(node int) float64 // sum of volumes of the nodes within the horizon of node
	IntactBonds(node int) int   // number of intact bonds connected to node
}

// BondMesh implements Mesh from the node volumes and the bonds
type BondMesh struct {
	ndim   int
	vols   []float64 // volumes of nodes
	vsums  []float64 // volume sums of nodes
	vavg   float64   // average volume sum
	bonds  []*Bond   // all bonds
	byNode [][]int   // node => bonds indices
}

// NewBondMesh allocates a new mesh
//  vols -- volume of each node
func NewBondMesh(ndim int, vols []float64, bonds []*Bond) (o *BondMesh, err error) {
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. %d is invalid\n", ndim)
	}
	nnod := len(vols)
	if nnod == 0 {
		return nil, chk.Err("at least one node is required\n")
	}
	o = &BondMesh{ndim: ndim, vols: vols, bonds: bonds}
	o.vsums = make([]float64, nnod)
	o.byNode = make([][]int, nnod)
	for k, b := range bonds {
		i, j := b.Nodes[0], b.Nodes[1]
		if i < 0 || i >= nnod || j < 0 || j >= nnod || i == j {
			return nil, chk.Err("bond %d has invalid nodes: %v\n", b.Id, b.Nodes)
		}
		o.byNode[i] = append(o.byNode[i], k)
		o.byNode[j] = append(o.byNode[j], k)
		o.vsums[i] += vols[j]
		o.vsums[j] += vols[i]
	}
	for _, v := range o.vsums {
		o.vavg += v
	}
	o.vavg /= float64(nnod)
	return
}

// Dim returns the space dimension
func (o *BondMesh) Dim() int { return o.ndim }

// AvgVolumeSum returns the average volume sum
func (o *BondMesh) AvgVolumeSum() float64 { return o.vavg }

// VolumeSum returns the sum of the volumes of the neighbours of node
func (o *BondMesh) VolumeSum(node int) float64 { return o.vsums[node] }

// IntactBonds counts the intact bonds connected to node
func (o *BondMesh) IntactBonds(node int) (count int) {
	for _, k := range o.byNode[node] {
		if o.bonds[k].Intact() {
			count++
		}
	}
	return
}
