// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to set a simulation stage
//  Note: only vertices listed in Dofs carry unknowns. Extra cell vertices (e.g. the reference
//        vertex of beams) are geometric data only
type Info struct {

	// essential
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "rz"], ["ux", "uy", "rz"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rx" => "mx"

	// t2 variables (time-derivatives of second order)
	T2vars []string // "ux", "uy", "rx"
}

// Ndofs returns the total number of degrees of freedom of the element
func (o *Info) Ndofs() (n int) {
	for _, dofs := range o.Dofs {
		n += len(dofs)
	}
	return
}
