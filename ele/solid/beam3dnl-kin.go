// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/MaSheep/oofem/ele"
	"github.com/MaSheep/oofem/mdl/solid"
	"github.com/MaSheep/oofem/rot"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// extract extracts total and incremental nodal displacements
func (o *Beam3dNl) extract(sol *ele.Solution) {
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
		o.Δue[i] = sol.ΔY[I]
	}
}

// chord computes xd = (X_B + u_B) - (X_A + u_A) with the extracted total displacements
func (o *Beam3dNl) chord(xd []float64) {
	for i := 0; i < 3; i++ {
		xd[i] = o.X[i][1] + o.ue[6+i] - o.X[i][0] - o.ue[i]
	}
}

// ChordVector computes the current chord xd = (X_B + u_B) - (X_A + u_A) using total displacements
func (o *Beam3dNl) ChordVector(xd []float64, sol *ele.Solution) {
	if len(xd) != 3 {
		chk.Panic("ChordVector: chord must have 3 components. len(xd)=%d is invalid", len(xd))
	}
	o.extract(sol)
	o.chord(xd)
}

// ComputeStrain computes the generalised strains {ε, γ2, γ3, κ1, κ2, κ3}
//
//  {1+ε, γ2, γ3} = trans(Tmp) ⋅ xd / L0
//
//  Δψ = Δθ_B - Δθ_A    Tmid = (I + ½⋅skew(½⋅Δψ)) ⋅ Tc
//  κ = trans(Tmid) ⋅ Δψ / L0 + κ_converged
//
//  Note: the trial triad is refreshed if sol.StateCounter changed
func (o *Beam3dNl) ComputeStrain(eps []float64, sol *ele.Solution) {

	// check
	if len(eps) != 6 {
		chk.Panic("ComputeStrain: number of generalised strains must be 6. len(eps)=%d is invalid", len(eps))
	}

	// trial triad and chord
	o.extract(sol)
	o.Triad.Refresh(sol.StateCounter, o.Δue)
	o.chord(o.xd)

	// axial and shear strains
	rot.MatTrVecMul(eps[:3], o.Triad.Tmp, o.xd)
	for i := 0; i < 3; i++ {
		eps[i] /= o.L0
	}
	eps[0] -= 1.0

	// midpoint triad
	for i := 0; i < 3; i++ {
		o.Δψ[i] = o.Δue[9+i] - o.Δue[3+i]
		o.ac[i] = 0.5 * o.Δψ[i]
	}
	rot.Skew(o.Smid, o.ac)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.Smid[i][j] *= 0.5
		}
		o.Smid[i][i] += 1.0
	}
	rot.MatMul(o.Tmid, o.Smid, o.Triad.Tc)

	// curvatures
	rot.MatTrVecMul(eps[3:], o.Tmid, o.Δψ)
	for i := 0; i < 3; i++ {
		eps[3+i] = eps[3+i]/o.L0 + o.State.Eps[3+i]
	}
}

// KinematicMatrix computes the [12][6] matrix X that maps the global force and moment {n, m}
// into nodal forces
//
//         ┌            ┐
//         │  -I     0  │
//   X  =  │ ½S^T   -I  │    S = skew(xd)
//         │   I     0  │
//         │ ½S^T    I  │
//         └            ┘
//
func KinematicMatrix(Xm *mat.Dense, xd []float64) {
	r, c := Xm.Dims()
	if r != 12 || c != 6 {
		chk.Panic("KinematicMatrix: matrix must be 12 x 6. %d x %d is invalid", r, c)
	}
	Xm.Zero()
	S := rot.Alloc()
	rot.Skew(S, xd)
	for i := 0; i < 3; i++ {
		Xm.Set(i, i, -1)
		Xm.Set(i+6, i, 1)
		Xm.Set(i+3, i+3, -1)
		Xm.Set(i+9, i+3, 1)
		for j := 0; j < 3; j++ {
			Xm.Set(i+3, j, 0.5*S[j][i])
			Xm.Set(i+9, j, 0.5*S[j][i])
		}
	}
}

// InternalForces computes the internal forces vector fi = X ⋅ {Tmp⋅σn, Tmp⋅σm}
//  Input:
//   useUpdated -- use the converged generalised stresses instead of updating the state
//  Output:
//   fi -- [12] internal forces
func (o *Beam3dNl) InternalForces(fi []float64, sol *ele.Solution, useUpdated bool) (err error) {

	// check
	if len(fi) != o.Nu {
		chk.Panic("InternalForces: vector of internal forces must have %d components. len(fi)=%d is invalid", o.Nu, len(fi))
	}

	// generalised stresses
	var σ []float64
	if useUpdated {
		o.extract(sol)
		o.Triad.Refresh(sol.StateCounter, o.Δue)
		o.chord(o.xd)
		σ = o.State.Sig
	} else {
		o.ComputeStrain(o.eps, sol)
		err = o.Sec.GeneralizedStress(o.State, o.eps)
		if err != nil {
			return
		}
		σ = o.State.SigTmp
	}

	// force and moment in global system
	rot.MatVecMul(o.nm[:3], o.Triad.Tmp, σ[:3])
	rot.MatVecMul(o.nm[3:], o.Triad.Tmp, σ[3:])

	// fi = X ⋅ nm
	KinematicMatrix(o.Xm, o.xd)
	f := mat.NewVecDense(o.Nu, fi)
	f.MulVec(o.Xm, mat.NewVecDense(6, o.nm))
	return
}

// CalcK computes the tangent matrix K = Kmat + Kg1 + Kg2 for the current solution
//
//  Kmat = Xt ⋅ D ⋅ trans(Xt) / L0    with   Xt = X ⋅ diag(Tmp, Tmp)
//
//  Note: the trial state is updated for sol
func (o *Beam3dNl) CalcK(sol *ele.Solution, rmode solid.ResponseMode) (err error) {

	// state and material matrix
	o.ComputeStrain(o.eps, sol)
	err = o.Sec.GeneralizedStress(o.State, o.eps)
	if err != nil {
		return
	}
	err = o.Sec.Stiffness(o.D, o.State, rmode)
	if err != nil {
		return
	}

	// rotated kinematic matrix
	KinematicMatrix(o.Xm, o.xd)
	o.T6.Zero()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.T6.Set(i, j, o.Triad.Tmp[i][j])
			o.T6.Set(i+3, j+3, o.Triad.Tmp[i][j])
		}
	}
	o.Xt.Mul(o.Xm, o.T6)

	// material part
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			o.Dd.Set(i, j, o.D[i][j])
		}
	}
	o.XtD.Mul(o.Xt, o.Dd)
	o.Kd.Mul(o.XtD, o.Xt.T())
	o.Kd.Scale(1.0/o.L0, o.Kd)
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.Kmat[i][j] = o.Kd.At(i, j)
		}
	}

	// force and moment in global system
	σ := o.State.SigTmp
	rot.MatVecMul(o.n, o.Triad.Tmp, σ[:3])
	rot.MatVecMul(o.m, o.Triad.Tmp, σ[3:])

	// geometric parts
	GeometricStiffness1(o.Kg1, o.Sn, o.Sm, o.n, o.m)
	GeometricStiffness2(o.Kg2, o.Sn, o.Sx, o.Y, o.n, o.xd)

	// total
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.K[i][j] = o.Kmat[i][j] + o.Kg1[i][j] + o.Kg2[i][j]
		}
	}
	return
}

// GeometricStiffness1 computes the geometric stiffness due to the rotation of the force n and
// moment m (global system) with the triad
//
//         ┌                      ┐
//         │ 0  Sn  0  Sn         │
//  Kg1 =  │ 0  Sm  0  Sm         │    Sn = skew(n)   Sm = skew(m)
//         │ 0 -Sn  0 -Sn         │
//         │ 0 -Sm  0 -Sm         │
//         └                      ┘
//
//  sn, sm -- [3][3] workspace for skew(n) and skew(m)
func GeometricStiffness1(K, sn, sm [][]float64, n, m []float64) {
	rot.Skew(sn, n)
	rot.Skew(sm, m)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			K[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			K[i][j+3] += sn[i][j]
			K[i][j+9] += sn[i][j]
			K[i+3][j+3] += sm[i][j]
			K[i+3][j+9] += sm[i][j]
			K[i+6][j+3] -= sn[i][j]
			K[i+6][j+9] -= sn[i][j]
			K[i+9][j+3] -= sm[i][j]
			K[i+9][j+9] -= sm[i][j]
		}
	}
}

// GeometricStiffness2 computes the geometric stiffness due to the change of the chord xd
//
//         ┌                      ┐
//         │  0   0   0   0       │
//  Kg2 =  │ -Sn  Y   Sn  Y       │    Sn = skew(n)   Y = ½⋅skew(xd)⋅Sn
//         │  0   0   0   0       │
//         │ -Sn  Y   Sn  Y       │
//         └                      ┘
//
//  sn, sx, y -- [3][3] workspace for skew(n), skew(xd) and Y
func GeometricStiffness2(K, sn, sx, y [][]float64, n, xd []float64) {
	rot.Skew(sn, n)
	rot.Skew(sx, xd)
	rot.MatMul(y, sx, sn)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			K[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			y[i][j] *= 0.5
		}
	}
	for _, r := range []int{3, 9} {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				K[i+r][j] -= sn[i][j]
				K[i+r][j+3] += y[i][j]
				K[i+r][j+6] += sn[i][j]
				K[i+r][j+9] += y[i][j]
			}
		}
	}
}
