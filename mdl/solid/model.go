// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements constitutive models for structural members (rods and beams) and the
// cross-section dispatch that routes a material mode to the right model capability
/*
 *    Mode      | Capability | Strains
 *  ==============================================================
 *    1d        | OneD       | ε
 *    3dbeam    | Beam3d     | ε, γ2, γ3, κ1, κ2, κ3
 *              |            |
 *    Stresses follow the same ordering: N, Q2, Q3, Mt, M2, M3
 */
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NumBeamStrains is the number of generalised strains (and stresses) of space beams
const NumBeamStrains = 6

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	GetRho() float64            // returns density
	Free()                      // frees resources
}

// OneD specialises Model to 1D (axial) members
type OneD interface {
	InitIntVars1D() (*OnedState, error)                // initialises AND allocates internal (secondary) variables
	Update(s *OnedState, ε, Δε float64) error          // update state
	CalcD(s *OnedState, firstIt bool) (float64, error) // computes D = dσ_new/dε_new consistent with Update
	GetA() float64                                     // returns cross-sectional area
}

// Beam3d specialises Model to space beams with 6 generalised strains/stresses
//  Note: UpdateBeam always starts from the converged values in s and writes the trial ones
type Beam3d interface {
	InitIntVarsBeam() (*BeamState, error)                           // initialises AND allocates internal (secondary) variables
	UpdateBeam(s *BeamState, ε []float64) error                     // computes trial generalised stresses for total generalised strains
	CalcDbeam(D [][]float64, s *BeamState, rmode ResponseMode) error // computes the 6x6 material matrix
	GetSection() (A, Iy, Iz float64)                                // returns area and second moments of area
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
