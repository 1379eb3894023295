// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
//  Note: beam cells ("lin2") may list a third vertex: the reference vertex defining the
//        orientation of the cross-section. This vertex carries no degrees of freedom
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; e.g. "lin2"
	Verts []int  `json:"verts"` // vertices
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert    // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell    // cell tag => set of cells
	Ctype2cells   map[string][]*Cell // cell type => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = os.ExpandEnv(filepath.Join(dir, fn))
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// check
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh %q must have at least 2 vertices", fn)
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q must have at least 1 cell", fn)
	}

	// vertex related derived data
	o.Ndim = len(o.Verts[0].C)
	o.Xmin, o.Xmax = math.Inf(+1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(+1), math.Inf(-1)
	o.Zmin, o.Zmax = 0, 0
	if o.Ndim == 3 {
		o.Zmin, o.Zmax = math.Inf(+1), math.Inf(-1)
	}
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return nil, chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}

		// ndim
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return nil, chk.Err("number of space dimensions must be 2 or 3. vertex %d has %d coordinates", v.Id, nd)
		}
		if nd != o.Ndim {
			return nil, chk.Err("number of space dimensions of all vertices must be the same. vertex %d: %d != %d", v.Id, nd, o.Ndim)
		}

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
		if nd == 3 {
			o.Zmin = math.Min(o.Zmin, v.C[2])
			o.Zmax = math.Max(o.Zmax, v.C[2])
		}
	}

	// derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return nil, chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return nil, chk.Err("cells tags must be negative. %d is incorrect", c.Tag)
		}

		// check vertices
		if len(c.Verts) < 2 {
			return nil, chk.Err("cell %d must have at least 2 vertices", c.Id)
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return nil, chk.Err("cell %d: vertex %d does not exist", c.Id, vid)
			}
		}

		// set maps
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)
	}

	// log
	io.Pforan("mesh %q: ndim=%d nverts=%d ncells=%d\n", fn, o.Ndim, len(o.Verts), len(o.Cells))
	return
}

// ExtractCellCoords extracts cell coordinates
//   X -- matrix with coordinates [ndim][nverts]
func (o *Mesh) ExtractCellCoords(cellId int) (X [][]float64) {
	c := o.Cells[cellId]
	X = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		X[i] = make([]float64, len(c.Verts))
		for m, v := range c.Verts {
			X[i][m] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ","
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, x := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
