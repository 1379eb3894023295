// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/MaSheep/oofem/inp"
	"github.com/cpmech/gosl/chk"
)

// DynCoefs calculates θ-method and Newmark's coefficients for dynamics
//
//  u_{n+1} = u_n + Δt⋅v_n + (Δt²/2)⋅[(1-θ2)⋅a_n + θ2⋅a_{n+1}]
//  v_{n+1} = v_n + Δt⋅[(1-θ1)⋅a_n + θ1⋅a_{n+1}]
//
//  a_{n+1} = α1⋅u_{n+1} - ζ*   with  ζ* = α1⋅u_n + α2⋅v_n + α3⋅a_n
//  v_{n+1} = α4⋅u_{n+1} - χ*   with  χ* = α4⋅u_n + α5⋅v_n + α6⋅a_n
//
type DynCoefs struct {

	// input
	θ1, θ2 float64 // Newmark's coefficients
	dtmin  float64 // minimum Δt

	// derived
	α1, α2, α3, α4, α5, α6 float64
}

// Init initialises this structure
func (o *DynCoefs) Init(dat *inp.SolverData) (err error) {
	o.θ1, o.θ2 = dat.Theta1, dat.Theta2
	o.dtmin = dat.DtMin
	if o.θ1 < 1e-5 || o.θ1 > 1.0 || o.θ2 < 1e-5 || o.θ2 > 1.0 {
		return chk.Err("θ1 and θ2 Newmark parameters must be such that 1e-5 ≤ θ ≤ 1.0. θ1=%g and θ2=%g are incorrect", o.θ1, o.θ2)
	}
	return
}

// CalcAlps computes the Newmark coefficients for a time increment Δt
func (o *DynCoefs) CalcAlps(Δt float64) (err error) {
	if Δt < o.dtmin {
		return chk.Err("Δt=%g is smaller than the allowed minimum value (%g)", Δt, o.dtmin)
	}
	o.α1 = 2.0 / (o.θ2 * Δt * Δt)
	o.α2 = 2.0 / (o.θ2 * Δt)
	o.α3 = 1.0/o.θ2 - 1.0
	o.α4 = 2.0 * o.θ1 / (o.θ2 * Δt)
	o.α5 = 2.0*o.θ1/o.θ2 - 1.0
	o.α6 = (o.θ1/o.θ2 - 1.0) * Δt
	return
}

// CalcStarVars computes the star variables of a solution at the beginning of a time step
func (o *DynCoefs) CalcStarVars(sol *Solution) {
	for i := 0; i < len(sol.Y); i++ {
		sol.Zet[i] = o.α1*sol.Y[i] + o.α2*sol.Dydt[i] + o.α3*sol.D2ydt2[i]
		sol.Chi[i] = o.α4*sol.Y[i] + o.α5*sol.Dydt[i] + o.α6*sol.D2ydt2[i]
	}
}

// UpdateRates computes velocities and accelerations after Y has converged
func (o *DynCoefs) UpdateRates(sol *Solution) {
	for i := 0; i < len(sol.Y); i++ {
		sol.D2ydt2[i] = o.α1*sol.Y[i] - sol.Zet[i]
		sol.Dydt[i] = o.α4*sol.Y[i] - sol.Chi[i]
	}
}

// GetAlp1 returns α1
func (o *DynCoefs) GetAlp1() float64 { return o.α1 }

// GetAlp4 returns α4
func (o *DynCoefs) GetAlp4() float64 { return o.α4 }

// Print prints coefficients
func (o *DynCoefs) Print() {
	pf("θ1, θ2 = %v, %v\n", o.θ1, o.θ2)
	pf("α1, α2, α3 = %v, %v, %v\n", o.α1, o.α2, o.α3)
	pf("α4, α5, α6 = %v, %v, %v\n", o.α4, o.α5, o.α6)
}
