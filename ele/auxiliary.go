// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/MaSheep/oofem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// pf prints formatted output (if io.Verbose)
var pf = io.Pf

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
//   x -- [ndim][nverts]
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// BuildUmap builds the assembly map (location array) of an element with nn nodes and nd dofs per node
func BuildUmap(eqs [][]int, nn, nd int) (umap []int, err error) {
	if len(eqs) < nn {
		return nil, chk.Err("number of nodes in equations array must be at least %d. %d is invalid", nn, len(eqs))
	}
	umap = make([]int, nn*nd)
	for m := 0; m < nn; m++ {
		if len(eqs[m]) < nd {
			return nil, chk.Err("node %d must have at least %d equations. %d is invalid", m, nd, len(eqs[m]))
		}
		for i := 0; i < nd; i++ {
			umap[i+m*nd] = eqs[m][i]
		}
	}
	return
}
