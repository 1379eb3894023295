// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//  y = { u, θ }  (ny x 1) translations and rotations
//
//  Note: StateCounter identifies the (step, iteration) pair that produced Y and ΔY.
//        Solvers must call BumpCounter whenever Y or ΔY are modified; elements use it to
//        decide whether cached kinematic data are stale
type Solution struct {

	// current state
	T      float64   // current time
	Y      []float64 // DOFs (solution variables); total since the beginning of the analysis
	Dydt   []float64 // dy/dt
	D2ydt2 []float64 // d²y/dt²

	// auxiliary
	Dt  float64   // current time increment
	ΔY  []float64 // increment since the last converged step (for nonlinear solver)
	Zet []float64 // t2 star vars; e.g. ζ* = α1.u + α2.v + α3.a
	Chi []float64 // t2 star vars; e.g. χ* = α4.u + α5.v + α6.a

	// solution state token
	StateCounter int // monotonically increasing (step, iteration) token

	// problem definition and constants
	Steady bool      // [from Sim] steady simulation
	DynCfs *DynCoefs // [from FEM] coefficients for dynamics/transient simulations
}

// NewSolution allocates a new solution structure
func NewSolution(ny int, steady bool, dc *DynCoefs) (o *Solution) {
	o = new(Solution)
	o.Y = make([]float64, ny)
	o.ΔY = make([]float64, ny)
	o.Steady = steady
	o.DynCfs = dc
	if !steady {
		o.Dydt = make([]float64, ny)
		o.D2ydt2 = make([]float64, ny)
		o.Zet = make([]float64, ny)
		o.Chi = make([]float64, ny)
	}
	return
}

// BumpCounter marks Y and ΔY as modified
func (o *Solution) BumpCounter() {
	o.StateCounter++
}

// Reset clear values
func (o *Solution) Reset(steady bool) {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
	if !steady {
		for i := 0; i < len(o.Y); i++ {
			o.Zet[i] = 0
			o.Chi[i] = 0
			o.Dydt[i] = 0
			o.D2ydt2[i] = 0
		}
	}
	o.BumpCounter()
}
