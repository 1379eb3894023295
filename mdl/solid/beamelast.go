// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BeamElast implements a linear elastic section for space beams (Timoshenko)
//
//   D = diag(E⋅A, ks⋅G⋅A, ks⋅G⋅A, G⋅Ik, E⋅Iy, E⋅Iz)
//
type BeamElast struct {
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	Iy  float64 // second moment of area about local y-axis
	Iz  float64 // second moment of area about local z-axis
	Ik  float64 // torsional constant. default = Iy + Iz
	Ks  float64 // shear correction factor. default = 5/6
	Rho float64 // density

	// derived
	diag []float64 // diagonal of D
}

// add model to factory
func init() {
	allocators["beam-elast"] = func() Model { return new(BeamElast) }
}

// Free frees memory
func (o *BeamElast) Free() {
}

// GetRho returns density
func (o *BeamElast) GetRho() float64 {
	return o.Rho
}

// GetSection returns area and second moments of area
func (o *BeamElast) GetSection() (A, Iy, Iz float64) {
	return o.A, o.Iy, o.Iz
}

// Init initialises model
func (o *BeamElast) Init(prms dbf.Params) (err error) {
	o.Ks = 5.0 / 6.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "A":
			o.A = p.V
		case "Iy":
			o.Iy = p.V
		case "Iz":
			o.Iz = p.V
		case "Ik":
			o.Ik = p.V
		case "ks":
			o.Ks = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.Ik == 0 {
		o.Ik = o.Iy + o.Iz
	}
	if o.E <= 0 || o.G <= 0 || o.A <= 0 || o.Iy <= 0 || o.Iz <= 0 || o.Ik <= 0 || o.Ks <= 0 {
		return chk.Err("invalid parameters for beam section: {E=%g, G=%g, A=%g, Iy=%g, Iz=%g, Ik=%g, ks=%g} must be all > 0", o.E, o.G, o.A, o.Iy, o.Iz, o.Ik, o.Ks)
	}
	if o.Rho < 0 {
		return chk.Err("invalid density for beam section: rho=%g must be ≥ 0", o.Rho)
	}
	o.diag = []float64{
		o.E * o.A,
		o.Ks * o.G * o.A,
		o.Ks * o.G * o.A,
		o.G * o.Ik,
		o.E * o.Iy,
		o.E * o.Iz,
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BeamElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "G", V: 7.5758e+07},
		&dbf.P{N: "A", V: 1.0000e-02},
		&dbf.P{N: "Iy", V: 8.3333e-06},
		&dbf.P{N: "Iz", V: 8.3333e-06},
		&dbf.P{N: "Ik", V: 1.4063e-05},
		&dbf.P{N: "ks", V: 5.0 / 6.0},
		&dbf.P{N: "rho", V: 7.8500e+00},
	}
}

// InitIntVarsBeam initialises internal (secondary) variables
func (o *BeamElast) InitIntVarsBeam() (s *BeamState, err error) {
	s = NewBeamState(0)
	return
}

// UpdateBeam computes trial generalised stresses for total generalised strains
func (o *BeamElast) UpdateBeam(s *BeamState, ε []float64) (err error) {
	if len(ε) != NumBeamStrains {
		chk.Panic("beam-elast: number of generalised strains must be %d. %d is invalid", NumBeamStrains, len(ε))
	}
	copy(s.EpsTmp, ε)
	for i := 0; i < NumBeamStrains; i++ {
		s.SigTmp[i] = o.diag[i] * ε[i]
	}
	return
}

// CalcDbeam computes the 6x6 material matrix. All response modes coincide
func (o *BeamElast) CalcDbeam(D [][]float64, s *BeamState, rmode ResponseMode) (err error) {
	for i := 0; i < NumBeamStrains; i++ {
		for j := 0; j < NumBeamStrains; j++ {
			D[i][j] = 0
		}
		D[i][i] = o.diag[i]
	}
	return
}
