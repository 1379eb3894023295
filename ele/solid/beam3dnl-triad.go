// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/MaSheep/oofem/rot"
	"github.com/cpmech/gosl/chk"
)

// Triad holds the orientation of a corotational beam
//  Columns of Tc and Tmp are the local axes expressed in the global system
//  Tmp is always computed from Tc (never from a previous Tmp); thus, iterations within one step
//  do not compound rotations
type Triad struct {
	Tc      [][]float64 // [3][3] committed triad (end of last converged step)
	Tmp     [][]float64 // [3][3] trial triad
	Counter int         // solution state counter of the last refresh; -1 means never refreshed

	// scratchpad
	spin []float64   // [3] midpoint spin
	R    [][]float64 // [3][3] incremental rotation
}

// NewTriad returns a new triad given the local frame [3][3] (rows are local axes)
func NewTriad(lcs [][]float64) (o *Triad) {
	o = new(Triad)
	o.Tc = rot.Alloc()
	o.Tmp = rot.Alloc()
	o.R = rot.Alloc()
	o.spin = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.Tc[i][j] = lcs[j][i]
		}
	}
	rot.Copy(o.Tmp, o.Tc)
	o.Counter = -1
	return
}

// Refresh recomputes the trial triad for the increment of nodal displacements Δu since the last
// converged step, unless it has already been computed for this solution state counter
//
//  ψ = (Δθ_A + Δθ_B) / 2    Tmp = exp(ψ) ⋅ Tc
//
//  Input:
//   counter -- solution state counter
//   Δu      -- [12] increment of nodal displacements {u_A, θ_A, u_B, θ_B}
func (o *Triad) Refresh(counter int, Δu []float64) {
	if len(Δu) != 12 {
		chk.Panic("Triad: increment of nodal displacements must have 12 components. len(Δu)=%d is invalid", len(Δu))
	}
	if counter == o.Counter {
		return
	}
	for i := 0; i < 3; i++ {
		o.spin[i] = 0.5 * (Δu[3+i] + Δu[9+i])
	}
	rot.Exp(o.R, o.spin)
	rot.MatMul(o.Tmp, o.R, o.Tc)
	o.Counter = counter
}

// Commit accepts the trial triad
func (o *Triad) Commit() {
	rot.Copy(o.Tc, o.Tmp)
}

// Reset discards the trial triad
func (o *Triad) Reset() {
	rot.Copy(o.Tmp, o.Tc)
	o.Counter = -1
}

// Set copies the committed triad from another one and discards the trial triad
func (o *Triad) Set(other *Triad) {
	rot.Copy(o.Tc, other.Tc)
	o.Reset()
}

// GetCopy returns a copy of this triad
func (o *Triad) GetCopy() (other *Triad) {
	other = &Triad{Tc: rot.Alloc(), Tmp: rot.Alloc(), R: rot.Alloc(), spin: make([]float64, 3)}
	rot.Copy(other.Tc, o.Tc)
	rot.Copy(other.Tmp, o.Tmp)
	other.Counter = o.Counter
	return
}
