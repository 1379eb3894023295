// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedLinElast implements a linear elastic model for rods
type OnedLinElast struct {
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Free frees memory
func (o *OnedLinElast) Free() {
}

// GetRho returns density
func (o *OnedLinElast) GetRho() float64 {
	return o.Rho
}

// GetA returns cross-sectional area
func (o *OnedLinElast) GetA() float64 {
	return o.A
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "A":
			o.A = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E <= 0 || o.A <= 0 || o.Rho < 0 {
		return chk.Err("invalid parameters for oned-elast model: {E=%g, A=%g} must be > 0 and rho=%g must be ≥ 0", o.E, o.A, o.Rho)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "A", V: 1.0000e-02},
		&dbf.P{N: "rho", V: 7.8500e+00},
	}
}

// InitIntVars1D initialises internal (secondary) variables
func (o OnedLinElast) InitIntVars1D() (s *OnedState, err error) {
	s = NewOnedState(0)
	return
}

// Update updates stresses for given strains
func (o OnedLinElast) Update(s *OnedState, ε, Δε float64) (err error) {
	s.Sig += o.E * Δε
	return
}

// CalcD computes D = dσ_new/dε_new
func (o OnedLinElast) CalcD(s *OnedState, firstIt bool) (float64, error) {
	return o.E, nil
}
