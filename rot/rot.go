// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rot implements finite rotations (pseudovectors and orthonormal matrices) used by
// corotational structural elements
package rot

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// PsiMin is the smallest rotation angle that is treated as a rotation
const PsiMin = 1e-40

// Alloc allocates a 3x3 matrix
func Alloc() [][]float64 {
	return utl.Alloc(3, 3)
}

// Identity returns a new 3x3 identity matrix
func Identity() (I [][]float64) {
	I = utl.Alloc(3, 3)
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// Skew computes the skew-symmetric matrix S(v) such that S·x = v × x for all x
//
//        ┌              ┐
//        │  0   -v2  v1 │
//  S  =  │  v2   0  -v0 │
//        │ -v1  v0   0  │
//        └              ┘
//
//  Input:
//   v -- [3] vector
//  Output:
//   S -- [3][3] skew-symmetric matrix (pre-allocated)
func Skew(S [][]float64, v []float64) {
	if len(v) != 3 {
		chk.Panic("Skew: vector must have 3 components. len(v)=%d is invalid", len(v))
	}
	S[0][0], S[0][1], S[0][2] = 0, -v[2], v[1]
	S[1][0], S[1][1], S[1][2] = v[2], 0, -v[0]
	S[2][0], S[2][1], S[2][2] = -v[1], v[0], 0
}

// Exp computes the rotation matrix corresponding to the rotation pseudovector ψ
// (axis = ψ/|ψ| and angle θ = |ψ|) using the closed-form exponential map
//
//  R = I + (sinθ/θ)·S(ψ) + ((1 - cosθ)/θ²)·S(ψ)²
//
//  Note: R is exactly the identity matrix if θ ≤ PsiMin
//  Input:
//   ψ -- [3] rotation pseudovector
//  Output:
//   R -- [3][3] orthonormal matrix (pre-allocated)
func Exp(R [][]float64, ψ []float64) {
	if len(ψ) != 3 {
		chk.Panic("Exp: pseudovector must have 3 components. len(ψ)=%d is invalid", len(ψ))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = 0
		}
		R[i][i] = 1
	}
	θ := math.Sqrt(ψ[0]*ψ[0] + ψ[1]*ψ[1] + ψ[2]*ψ[2])
	if θ <= PsiMin {
		return
	}
	var S [3][3]float64
	S[0][1], S[0][2] = -ψ[2], ψ[1]
	S[1][0], S[1][2] = ψ[2], -ψ[0]
	S[2][0], S[2][1] = -ψ[1], ψ[0]
	a := math.Sin(θ) / θ
	b := (1.0 - math.Cos(θ)) / (θ * θ)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ss := 0.0
			for k := 0; k < 3; k++ {
				ss += S[i][k] * S[k][j]
			}
			R[i][j] += a*S[i][j] + b*ss
		}
	}
}

// MatMul computes C := A · B for 3x3 matrices
//  Note: C must not share memory with A or B
func MatMul(C, A, B [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[i][0]*B[0][j] + A[i][1]*B[1][j] + A[i][2]*B[2][j]
		}
	}
}

// MatVecMul computes v := A · u for a 3x3 matrix
func MatVecMul(v []float64, A [][]float64, u []float64) {
	for i := 0; i < 3; i++ {
		v[i] = A[i][0]*u[0] + A[i][1]*u[1] + A[i][2]*u[2]
	}
}

// MatTrVecMul computes v := trans(A) · u for a 3x3 matrix
func MatTrVecMul(v []float64, A [][]float64, u []float64) {
	for i := 0; i < 3; i++ {
		v[i] = A[0][i]*u[0] + A[1][i]*u[1] + A[2][i]*u[2]
	}
}

// Copy copies 3x3 matrices: A := B
func Copy(A, B [][]float64) {
	for i := 0; i < 3; i++ {
		copy(A[i], B[i])
	}
}
