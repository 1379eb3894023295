// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BeamAxialPlast implements a space beam section with linear isotropic hardening plasticity
// on the axial component; shear, torsion and bending remain elastic
//
//   σ = N/A   f = |σ| - (σy0 + H⋅α)
//
//  Internal variables: α[0] = εp (axial plastic strain) and α[1] = α (accumulated plastic strain)
type BeamAxialPlast struct {
	BeamElast         // elastic part
	Sy0       float64 // initial yield stress
	H         float64 // hardening modulus
}

// add model to factory
func init() {
	allocators["beam-axialplast"] = func() Model { return new(BeamAxialPlast) }
}

// Init initialises model
func (o *BeamAxialPlast) Init(prms dbf.Params) (err error) {
	err = o.BeamElast.Init(prms)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "sy0":
			o.Sy0 = p.V
		case "H":
			o.H = p.V
		}
	}
	if o.Sy0 <= 0 || o.H < 0 {
		return chk.Err("invalid parameters for beam-axialplast model: sy0=%g must be > 0 and H=%g must be ≥ 0", o.Sy0, o.H)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BeamAxialPlast) GetPrms() dbf.Params {
	return append(o.BeamElast.GetPrms(),
		&dbf.P{N: "sy0", V: 2.5e+05},
		&dbf.P{N: "H", V: 2.0e+06},
	)
}

// InitIntVarsBeam initialises internal (secondary) variables
func (o *BeamAxialPlast) InitIntVarsBeam() (s *BeamState, err error) {
	s = NewBeamState(2) // 2:{εp,α}
	return
}

// UpdateBeam computes trial generalised stresses for total generalised strains
func (o *BeamAxialPlast) UpdateBeam(s *BeamState, ε []float64) (err error) {

	// elastic components
	err = o.BeamElast.UpdateBeam(s, ε)
	if err != nil {
		return
	}

	// internal values
	εp := s.Alp[0]
	α := s.Alp[1]

	// trial stress
	σtr := o.E * (ε[0] - εp)
	ftr := math.Abs(σtr) - (o.Sy0 + o.H*α)

	// elastic update
	if ftr <= 0.0 {
		s.SigTmp[0] = o.A * σtr
		s.AlpTmp[0] = εp
		s.AlpTmp[1] = α
		s.Loading = false
		return
	}

	// plastic update
	sgn := math.Copysign(1, σtr)
	Δγ := ftr / (o.E + o.H)
	s.SigTmp[0] = o.A * (σtr - o.E*Δγ*sgn)
	s.AlpTmp[0] = εp + Δγ*sgn
	s.AlpTmp[1] = α + Δγ
	s.Loading = true
	return
}

// CalcDbeam computes the 6x6 material matrix for the requested response
func (o *BeamAxialPlast) CalcDbeam(D [][]float64, s *BeamState, rmode ResponseMode) (err error) {
	err = o.BeamElast.CalcDbeam(D, s, rmode)
	if err != nil {
		return
	}
	switch rmode {
	case ElasticStiffness:
	case SecantStiffness:
		ε := s.EpsTmp[0]
		if math.Abs(ε) > 1e-14 {
			D[0][0] = s.SigTmp[0] / ε
		}
	case TangentStiffness:
		if s.Loading {
			D[0][0] = o.A * o.E * o.H / (o.E + o.H)
		}
	default:
		return chk.Err("beam-axialplast: response mode %d is invalid", rmode)
	}
	return
}
