// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// OnedState holds data for 1D models
type OnedState struct {
	Sig     float64   // σ: Cauchy stress component
	Alp     []float64 // α: internal variables of rate type [nalp]
	Dgam    float64   // Δγ: increment of Lagrange multiplier (for plasticity only)
	Loading bool      // unloading flag (for plasticity only)
}

// NewOnedState allocates 1D state structure
func NewOnedState(nalp int) *OnedState {
	var state OnedState
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *OnedState) Set(other *OnedState) {
	o.Sig = other.Sig
	copy(o.Alp, other.Alp)
	o.Dgam = other.Dgam
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *OnedState) GetCopy() *OnedState {
	other := NewOnedState(len(o.Alp))
	other.Set(o)
	return other
}

// BeamState holds the generalised strains and stresses of a beam integration point
//  Converged values are only changed by Commit; models write the trial ones
type BeamState struct {

	// converged (end of last step)
	Eps []float64 // generalised strains {ε, γ2, γ3, κ1, κ2, κ3}
	Sig []float64 // generalised stresses {N, Q2, Q3, Mt, M2, M3}
	Alp []float64 // internal variables [nalp]

	// trial (current iteration)
	EpsTmp  []float64 // trial generalised strains
	SigTmp  []float64 // trial generalised stresses
	AlpTmp  []float64 // trial internal variables
	Loading bool      // trial state is on the loading branch (for plasticity only)
}

// NewBeamState allocates beam state structure
func NewBeamState(nalp int) *BeamState {
	var state BeamState
	state.Eps = make([]float64, NumBeamStrains)
	state.Sig = make([]float64, NumBeamStrains)
	state.EpsTmp = make([]float64, NumBeamStrains)
	state.SigTmp = make([]float64, NumBeamStrains)
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
		state.AlpTmp = make([]float64, nalp)
	}
	return &state
}

// Commit accepts the trial values as converged ones
func (o *BeamState) Commit() {
	copy(o.Eps, o.EpsTmp)
	copy(o.Sig, o.SigTmp)
	copy(o.Alp, o.AlpTmp)
}

// Reset discards the trial values
func (o *BeamState) Reset() {
	copy(o.EpsTmp, o.Eps)
	copy(o.SigTmp, o.Sig)
	copy(o.AlpTmp, o.Alp)
	o.Loading = false
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *BeamState) Set(other *BeamState) {
	copy(o.Eps, other.Eps)
	copy(o.Sig, other.Sig)
	copy(o.Alp, other.Alp)
	copy(o.EpsTmp, other.EpsTmp)
	copy(o.SigTmp, other.SigTmp)
	copy(o.AlpTmp, other.AlpTmp)
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *BeamState) GetCopy() *BeamState {
	other := NewBeamState(len(o.Alp))
	other.Set(o)
	return other
}
