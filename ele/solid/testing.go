// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/MaSheep/oofem/ele"
	"github.com/MaSheep/oofem/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// KandFi defines elements whose tangent matrix can be checked against their internal forces
type KandFi interface {
	InternalForces(fi []float64, sol *ele.Solution, useUpdated bool) (err error)
	CalcK(sol *ele.Solution, rmode solid.ResponseMode) (err error)
	GetK() [][]float64
	GetUmap() []int
}

// CheckK checks the tangent matrix of e against the central difference of its internal forces
//  Input:
//   rows, cols -- local indices to be checked; nil means all
//   h          -- step size of the 5-point central difference
//  Note: Y and ΔY are perturbed together; thus the increment since the last converged step
//        follows the total displacements
func CheckK(tst *testing.T, msg string, e KandFi, sol *ele.Solution, rows, cols []int, tol, h float64, verb bool) {

	// analytical
	umap := e.GetUmap()
	nu := len(umap)
	sol.BumpCounter()
	err := e.CalcK(sol, solid.TangentStiffness)
	if err != nil {
		tst.Errorf("%s: CalcK failed:\n%v", msg, err)
		return
	}
	Kana := utl.Alloc(nu, nu)
	for i, row := range e.GetK() {
		copy(Kana[i], row)
	}

	// indices
	if rows == nil {
		rows = utl.IntRange(nu)
	}
	if cols == nil {
		cols = utl.IntRange(nu)
	}

	// numerical
	fi := make([]float64, nu)
	for _, j := range cols {
		J := umap[j]
		y, Δy := sol.Y[J], sol.ΔY[J]
		for _, i := range rows {
			dnum := num.DerivCen5(y, h, func(x float64) float64 {
				sol.Y[J], sol.ΔY[J] = x, Δy+x-y
				sol.BumpCounter()
				if ef := e.InternalForces(fi, sol, false); ef != nil {
					chk.Panic("%s: InternalForces failed:\n%v", msg, ef)
				}
				return fi[i]
			})
			chk.AnaNum(tst, io.Sf(msg+"%3d%3d", i, j), tol, Kana[i][j], dnum, verb)
		}
		sol.Y[J], sol.ΔY[J] = y, Δy
		sol.BumpCounter()
	}

	// restore trial state
	err = e.InternalForces(fi, sol, false)
	if err != nil {
		tst.Errorf("%s: InternalForces failed:\n%v", msg, err)
	}
}
