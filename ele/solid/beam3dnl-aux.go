// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/MaSheep/oofem/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/spatial/r3"
)

// localFrame computes the local frame of a beam with coordinates x [3][3] (A, B and reference
// vertex) and its length
//
//  ex = (B - A) / |B - A|    ez = unit(ex × (P - A))    ey = unit(ez × ex)
//
//  Output:
//   lcs -- [3][3] rows are the local axes {ex, ey, ez}
func localFrame(x [][]float64) (lcs [][]float64, l0 float64, err error) {
	a := r3.Vec{X: x[0][0], Y: x[1][0], Z: x[2][0]}
	b := r3.Vec{X: x[0][1], Y: x[1][1], Z: x[2][1]}
	p := r3.Vec{X: x[0][2], Y: x[1][2], Z: x[2][2]}
	chord := r3.Sub(b, a)
	l0 = r3.Norm(chord)
	if l0 < 1e-12 {
		return nil, 0, chk.Err("length of beam must be positive. L0=%g is invalid", l0)
	}
	ex := r3.Scale(1.0/l0, chord)
	aux := r3.Sub(p, a)
	ez := r3.Cross(ex, aux)
	nz := r3.Norm(ez)
	if nz <= 1e-10*r3.Norm(aux) {
		return nil, 0, chk.Err("reference vertex (%g,%g,%g) must not be collinear with the beam axis", p.X, p.Y, p.Z)
	}
	ez = r3.Scale(1.0/nz, ez)
	ey := r3.Unit(r3.Cross(ez, ex))
	lcs = [][]float64{
		{ex.X, ex.Y, ex.Z},
		{ey.X, ey.Y, ey.Z},
		{ez.X, ez.Y, ez.Z},
	}
	return
}

// LocalFrame returns the initial local frame [3][3]; rows are the local axes {ex, ey, ez}
func (o *Beam3dNl) LocalFrame() (lcs [][]float64) {
	lcs = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		copy(lcs[i], o.lcs[i])
	}
	return
}

// LumpedMass computes the lumped mass matrix M [12][12]
//
//  translations:  ρ⋅A⋅L0/2
//  rotations:     ρ⋅L0⋅(Iy+Iz)/2,  ρ⋅L0⋅Iy/2,  ρ⋅L0⋅Iz/2
//
func (o *Beam3dNl) LumpedMass(M [][]float64) (err error) {
	if len(M) != o.Nu {
		chk.Panic("LumpedMass: matrix must be %d x %d. len(M)=%d is invalid", o.Nu, o.Nu, len(M))
	}
	var ρ, A, Iy, Iz float64
	props := []solid.Property{solid.CsDensity, solid.CsArea, solid.CsInertiaY, solid.CsInertiaZ}
	for k, v := range []*float64{&ρ, &A, &Iy, &Iz} {
		*v, err = o.Sec.Give(props[k])
		if err != nil {
			return
		}
	}
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			M[i][j] = 0
		}
	}
	halfMass := ρ * A * o.L0 / 2.0
	c := ρ * o.L0 / 2.0
	for _, r := range []int{0, 6} {
		M[r+0][r+0] = halfMass
		M[r+1][r+1] = halfMass
		M[r+2][r+2] = halfMass
		M[r+3][r+3] = c * (Iy + Iz)
		M[r+4][r+4] = c * Iy
		M[r+5][r+5] = c * Iz
	}
	return
}

// DofMapping returns the kind of each of the 12 local DOFs
func (o *Beam3dNl) DofMapping() (keys []string) {
	keys = make([]string, 0, o.Nu)
	for m := 0; m < 2; m++ {
		keys = append(keys, beam3dnlKeys...)
	}
	return
}

// LoadGtoL returns the [6][6] matrix transforming a global load {f, m} into the local system
func (o *Beam3dNl) LoadGtoL() (T [][]float64) {
	T = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = o.lcs[i][j]
			T[i+3][j+3] = o.lcs[i][j]
		}
	}
	return
}

// EdgeDofMapping returns the local DOFs belonging to edge iedge. Beams have one edge (0)
func (o *Beam3dNl) EdgeDofMapping(iedge int) (dofs []int) {
	if iedge != 0 {
		chk.Panic("EdgeDofMapping: beam3dnl has only one edge (0). iedge=%d is invalid", iedge)
	}
	return utl.IntRange(o.Nu)
}

// GlobalCoords returns the initial coordinates [3] of the point with natural coordinate ξ ∈ [-1,1]
func (o *Beam3dNl) GlobalCoords(ξ float64) (x []float64) {
	n1, n2 := 0.5*(1.0-ξ), 0.5*(1.0+ξ)
	x = make([]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = n1*o.X[i][0] + n2*o.X[i][1]
	}
	return
}

// NmatAt returns the [6][12] interpolation matrix at natural coordinate ξ ∈ [-1,1]
func (o *Beam3dNl) NmatAt(ξ float64) (N [][]float64) {
	n1, n2 := 0.5*(1.0-ξ), 0.5*(1.0+ξ)
	N = utl.Alloc(6, o.Nu)
	for i := 0; i < 6; i++ {
		N[i][i] = n1
		N[i][i+6] = n2
	}
	return
}

// IntegrationWeightLength returns the length associated with the (single) integration point
func (o *Beam3dNl) IntegrationWeightLength() float64 {
	w := 2.0 // weight of one-point Gauss rule
	return 0.5 * o.L0 * w
}
