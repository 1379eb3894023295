// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// MaterialMode tags the kinematic assumption under which a model is evaluated
type MaterialMode int

// material modes
const (
	ModeUnknown     MaterialMode = iota // not set
	Mode1d                              // axial rods: 1 strain component
	Mode2dBeam                          // plane beams: {ε, γ, κ}
	Mode3dBeam                          // space beams: {ε, γ2, γ3, κ1, κ2, κ3}
	ModePlaneStrain                     // plane-strain continuum
	ModePlaneStress                     // plane-stress continuum
	Mode3d                              // 3D continuum
)

// modeKeys holds the keycodes of material modes
var modeKeys = map[MaterialMode]string{
	ModeUnknown:     "unknown",
	Mode1d:          "1d",
	Mode2dBeam:      "2dbeam",
	Mode3dBeam:      "3dbeam",
	ModePlaneStrain: "pstrain",
	ModePlaneStress: "pstress",
	Mode3d:          "3d",
}

// String returns the keycode of mode
func (o MaterialMode) String() string {
	if key, ok := modeKeys[o]; ok {
		return key
	}
	return "unknown"
}

// NumStrains returns the number of generalised strain components of a mode
func (o MaterialMode) NumStrains() int {
	switch o {
	case Mode1d:
		return 1
	case Mode2dBeam:
		return 3
	case Mode3dBeam:
		return 6
	case ModePlaneStrain, ModePlaneStress:
		return 4
	case Mode3d:
		return 6
	}
	return 0
}

// ParseMode returns the material mode corresponding to a keycode; e.g. "3dbeam"
func ParseMode(key string) (MaterialMode, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for mode, k := range modeKeys {
		if mode != ModeUnknown && k == key {
			return mode, nil
		}
	}
	return ModeUnknown, chk.Err("material mode %q is not available. options are: 1d, 2dbeam, 3dbeam, pstrain, pstress, 3d", key)
}

// ResponseMode selects which material matrix is requested from a model
type ResponseMode int

// response modes
const (
	ElasticStiffness ResponseMode = iota // initial (elastic) stiffness
	SecantStiffness                      // secant stiffness
	TangentStiffness                     // consistent tangent stiffness
)

// String returns a description of response mode
func (o ResponseMode) String() string {
	switch o {
	case ElasticStiffness:
		return "elastic"
	case SecantStiffness:
		return "secant"
	case TangentStiffness:
		return "tangent"
	}
	return "unknown"
}

// ParseResponseMode returns the response mode corresponding to a keycode; e.g. "tangent"
func ParseResponseMode(key string) (ResponseMode, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "elastic":
		return ElasticStiffness, nil
	case "secant":
		return SecantStiffness, nil
	case "tangent":
		return TangentStiffness, nil
	}
	return TangentStiffness, chk.Err("response mode %q is not available. options are: elastic, secant, tangent", key)
}
