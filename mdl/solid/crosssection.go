// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// ErrUnsupportedMode is matched (errors.Is) by all errors reporting that a material mode cannot
// be evaluated by a cross-section
var ErrUnsupportedMode = errors.New("unsupported material mode")

// UnsupportedModeError reports a material mode that the cross-section model cannot handle
type UnsupportedModeError struct {
	Op    string       // operation; e.g. "GeneralizedStress"
	Model string       // model description
	Mode  MaterialMode // requested mode
}

// Error returns the error message
func (o *UnsupportedModeError) Error() string {
	return fmt.Sprintf("%s: material mode %q is not supported by model %s", o.Op, o.Mode, o.Model)
}

// Is makes errors.Is(err, ErrUnsupportedMode) work
func (o *UnsupportedModeError) Is(target error) bool {
	return target == ErrUnsupportedMode
}

// Property identifies a scalar cross-section property
type Property int

// cross-section properties
const (
	CsDensity  Property = iota // mass density
	CsArea                     // cross-sectional area
	CsInertiaY                 // second moment of area about local y-axis
	CsInertiaZ                 // second moment of area about local z-axis
)

// CrossSection routes material-mode tagged requests to the capability of a model
type CrossSection struct {
	Model Model        // constitutive model
	Mode  MaterialMode // material mode of the element using this section
}

// NewCrossSection returns a new cross-section after checking that model can serve mode
func NewCrossSection(model Model, mode MaterialMode) (o *CrossSection, err error) {
	if model == nil {
		return nil, chk.Err("cannot create cross-section without a model")
	}
	o = &CrossSection{Model: model, Mode: mode}
	switch mode {
	case Mode3dBeam:
		if _, ok := model.(Beam3d); ok {
			return
		}
	case Mode1d:
		if _, ok := model.(OneD); ok {
			return
		}
	}
	return nil, o.unsupported("NewCrossSection")
}

// Beam returns the beam capability of the model
func (o *CrossSection) Beam() (Beam3d, error) {
	if o.Mode != Mode3dBeam {
		return nil, o.unsupported("Beam")
	}
	b, ok := o.Model.(Beam3d)
	if !ok {
		return nil, o.unsupported("Beam")
	}
	return b, nil
}

// Rod returns the 1D capability of the model
func (o *CrossSection) Rod() (OneD, error) {
	if o.Mode != Mode1d {
		return nil, o.unsupported("Rod")
	}
	r, ok := o.Model.(OneD)
	if !ok {
		return nil, o.unsupported("Rod")
	}
	return r, nil
}

// InitIntVars allocates and initialises the beam state of one integration point
func (o *CrossSection) InitIntVars() (*BeamState, error) {
	b, err := o.Beam()
	if err != nil {
		return nil, err
	}
	return b.InitIntVarsBeam()
}

// GeneralizedStress computes the trial generalised stresses in s for total generalised strains ε
func (o *CrossSection) GeneralizedStress(s *BeamState, ε []float64) error {
	b, err := o.Beam()
	if err != nil {
		return err
	}
	if len(ε) != o.Mode.NumStrains() {
		chk.Panic("GeneralizedStress: number of strains must be %d for mode %q. %d is invalid", o.Mode.NumStrains(), o.Mode, len(ε))
	}
	return b.UpdateBeam(s, ε)
}

// Stiffness computes the material matrix D [nstrains][nstrains] for the requested response
func (o *CrossSection) Stiffness(D [][]float64, s *BeamState, rmode ResponseMode) error {
	b, err := o.Beam()
	if err != nil {
		return err
	}
	if len(D) != o.Mode.NumStrains() {
		chk.Panic("Stiffness: matrix must be %d x %d for mode %q. len(D)=%d is invalid", o.Mode.NumStrains(), o.Mode.NumStrains(), o.Mode, len(D))
	}
	return b.CalcDbeam(D, s, rmode)
}

// Give returns a scalar property of the section
func (o *CrossSection) Give(p Property) (float64, error) {
	if p == CsDensity {
		return o.Model.GetRho(), nil
	}
	switch m := o.Model.(type) {
	case Beam3d:
		A, Iy, Iz := m.GetSection()
		switch p {
		case CsArea:
			return A, nil
		case CsInertiaY:
			return Iy, nil
		case CsInertiaZ:
			return Iz, nil
		}
	case OneD:
		if p == CsArea {
			return m.GetA(), nil
		}
	}
	return 0, chk.Err("cross-section property %d is not available in model %T", p, o.Model)
}

// unsupported returns an UnsupportedModeError
func (o *CrossSection) unsupported(op string) error {
	return &UnsupportedModeError{Op: op, Model: fmt.Sprintf("%T", o.Model), Mode: o.Mode}
}
