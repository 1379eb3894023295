// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/chk"

// BeamForceKeys returns the keys of generalised stresses of space beams
func BeamForceKeys() []string {
	return []string{"N", "Q2", "Q3", "Mt", "M2", "M3"}
}

// BeamStrainKeys returns the keys of generalised strains of space beams
func BeamStrainKeys() []string {
	return []string{"eps", "gam2", "gam3", "kap1", "kap2", "kap3"}
}

// Ivs2beam converts ivs map to generalised stresses σ [6]
//  σ -- [6] generalised stresses
//  i -- index of integration point
func Ivs2beam(σ []float64, i int, ivs map[string][]float64) (err error) {
	for key, vals := range ivs {
		k := -1
		switch key {
		case "N":
			k = 0
		case "Q2":
			k = 1
		case "Q3":
			k = 2
		case "Mt":
			k = 3
		case "M2":
			k = 4
		case "M3":
			k = 5
		default:
			return chk.Err("cannot set initial internal value %q of beam", key)
		}
		if i < 0 || i >= len(vals) {
			return chk.Err("initial internal value %q of beam has %d values; integration point %d is out of range", key, len(vals), i)
		}
		σ[k] = vals[i]
	}
	return
}
