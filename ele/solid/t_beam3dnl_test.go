// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/MaSheep/oofem/ele"
	"github.com/MaSheep/oofem/inp"
	"github.com/MaSheep/oofem/mdl/solid"
	"github.com/MaSheep/oofem/rot"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// steel properties in beam.mat
const (
	tstE   = 2.0e+08
	tstG   = 7.6923e+07
	tstA   = 1.0e-02
	tstI   = 8.3333e-06
	tstRho = 7.85
)

// readBeamSim reads the simulation with two beams and one cable
func readBeamSim(tst *testing.T, steady bool) *inp.Simulation {
	sim, err := inp.ReadSim("../../inp/data/beam.sim")
	require.NoError(tst, err)
	sim.Data.Steady = steady
	return sim
}

// newBeam allocates the first beam of beam.sim (from (0,0,0) to (2,0,0); reference vertex @ (1,1,0))
func newBeam(tst *testing.T, extra string, steady bool) (*Beam3dNl, *ele.Solution) {
	sim := readBeamSim(tst, steady)
	reg := sim.Regions[0]
	if extra != "" {
		reg.ElemsData[0].Extra = extra
	}
	e, err := ele.New(reg.Msh.Cells[0], reg, sim)
	require.NoError(tst, err)
	o := e.(*Beam3dNl)
	require.NoError(tst, o.SetEqs([][]int{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}}, nil))
	var dc ele.DynCoefs
	require.NoError(tst, dc.Init(&sim.Solver))
	require.NoError(tst, dc.CalcAlps(0.1))
	return o, ele.NewSolution(12, steady, &dc)
}

// allocBeam calls the allocator of beam3dnl directly with coordinates x
func allocBeam(sim *inp.Simulation, matname, extra string, x [][]float64) (ele.Element, error) {
	cell := &inp.Cell{Id: 7, Tag: -1, Type: "lin2", Verts: []int{0, 1, 2}}
	edat := &inp.ElemData{Tag: -1, Mat: matname, Type: "beam3dnl", Extra: extra}
	return ele.GetAllocator("beam3dnl")(sim, cell, edat, x)
}

// setDisp sets total and incremental displacements
func setDisp(sol *ele.Solution, y []float64) {
	for i, v := range y {
		sol.Y[i] = v
		sol.ΔY[i] = v
	}
	sol.BumpCounter()
}

// checkRotation checks that R is a proper rotation
func checkRotation(tst *testing.T, msg string, R [][]float64) {
	RtR := rot.Alloc()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				RtR[i][j] += R[k][i] * R[k][j]
			}
		}
	}
	chk.Deep2(tst, msg+": RᵀR", 1e-14, RtR, rot.Identity())
	Rm := mat.NewDense(3, 3, []float64{
		R[0][0], R[0][1], R[0][2],
		R[1][0], R[1][1], R[1][2],
		R[2][0], R[2][1], R[2][2],
	})
	chk.Float64(tst, msg+": det(R)", 1e-14, mat.Det(Rm), 1)
}

func Test_beam3dnl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl01. geometry and support utilities")

	o, _ := newBeam(tst, "", true)
	chk.Int(tst, "Nu", o.Nu, 12)
	chk.Float64(tst, "L0", 1e-15, o.L0, 2)
	chk.Deep2(tst, "lcs", 1e-15, o.LocalFrame(), rot.Identity())
	chk.Deep2(tst, "Tc", 1e-15, o.Triad.Tc, rot.Identity())
	chk.Int(tst, "triad counter", o.Triad.Counter, -1)
	chk.Ints(tst, "umap", o.GetUmap(), utl.IntRange(12))

	keys := o.DofMapping()
	chk.Strings(tst, "dofs", keys, []string{"ux", "uy", "uz", "rx", "ry", "rz", "ux", "uy", "uz", "rx", "ry", "rz"})

	T := o.LoadGtoL()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i == j {
				chk.Float64(tst, io.Sf("T%d%d", i, j), 1e-15, T[i][j], 1)
			} else {
				chk.Float64(tst, io.Sf("T%d%d", i, j), 1e-15, T[i][j], 0)
			}
		}
	}

	chk.Ints(tst, "edge dofs", o.EdgeDofMapping(0), utl.IntRange(12))
	require.Panics(tst, func() { o.EdgeDofMapping(1) })

	chk.Array(tst, "x(ξ=-1)", 1e-15, o.GlobalCoords(-1), []float64{0, 0, 0})
	chk.Array(tst, "x(ξ=0)", 1e-15, o.GlobalCoords(0), []float64{1, 0, 0})
	chk.Array(tst, "x(ξ=1)", 1e-15, o.GlobalCoords(1), []float64{2, 0, 0})

	N := o.NmatAt(0.5)
	chk.Int(tst, "rows(N)", len(N), 6)
	chk.Int(tst, "cols(N)", len(N[0]), 12)
	for i := 0; i < 6; i++ {
		chk.Float64(tst, io.Sf("N%d%d", i, i), 1e-15, N[i][i], 0.25)
		chk.Float64(tst, io.Sf("N%d%d", i, i+6), 1e-15, N[i][i+6], 0.75)
	}
	chk.Float64(tst, "weight length", 1e-15, o.IntegrationWeightLength(), 2)

	chk.Strings(tst, "ip keys", o.OutIpKeys(), []string{"N", "Q2", "Q3", "Mt", "M2", "M3", "eps", "gam2", "gam3", "kap1", "kap2", "kap3"})
	chk.Deep2(tst, "ip coords", 1e-15, o.OutIpCoords(), [][]float64{{1, 0, 0}})
}

func Test_beam3dnl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl02. local frame of inclined beam")

	sim := readBeamSim(tst, true)
	x := [][]float64{
		{0, 3, 0},
		{0, 4, 0},
		{0, 0, 5},
	}
	e, err := allocBeam(sim, "steel", "", x)
	require.NoError(tst, err)
	o := e.(*Beam3dNl)
	chk.Float64(tst, "L0", 1e-15, o.L0, 5)
	lcs := o.LocalFrame()
	chk.Array(tst, "ex", 1e-15, lcs[0], []float64{0.6, 0.8, 0})
	chk.Array(tst, "ey", 1e-15, lcs[1], []float64{0, 0, 1})
	chk.Array(tst, "ez", 1e-15, lcs[2], []float64{0.8, -0.6, 0})
	checkRotation(tst, "Tc", o.Triad.Tc)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Float64(tst, io.Sf("Tc%d%d", i, j), 1e-15, o.Triad.Tc[i][j], lcs[j][i])
		}
	}
}

func Test_beam3dnl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl03. allocation errors")

	sim := readBeamSim(tst, true)

	// collinear reference vertex
	_, err := allocBeam(sim, "steel", "", [][]float64{{0, 2, 1}, {0, 0, 0}, {0, 0, 0}})
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "collinear")

	// zero length
	_, err = allocBeam(sim, "steel", "", [][]float64{{1, 1, 0}, {0, 0, 1}, {0, 0, 0}})
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "length")

	// missing reference vertex
	_, err = allocBeam(sim, "steel", "", [][]float64{{0, 2}, {0, 0}, {0, 0}})
	require.Error(tst, err)

	// 2D
	_, err = allocBeam(sim, "steel", "", [][]float64{{0, 2, 1}, {0, 0, 1}})
	require.Error(tst, err)

	// unknown material
	x := [][]float64{{0, 2, 1}, {0, 0, 1}, {0, 0, 0}}
	_, err = allocBeam(sim, "wood", "", x)
	require.Error(tst, err)

	// wrong keycodes
	_, err = allocBeam(sim, "steel", "!mode:nada", x)
	require.Error(tst, err)
	_, err = allocBeam(sim, "steel", "!rmode:nada", x)
	require.Error(tst, err)

	// unsupported material modes
	_, err = allocBeam(sim, "steel", "!mode:3d", x)
	require.Error(tst, err)
	require.True(tst, errors.Is(err, solid.ErrUnsupportedMode))
	var merr *solid.UnsupportedModeError
	require.True(tst, errors.As(err, &merr))
	require.Equal(tst, solid.Mode3d, merr.Mode)

	_, err = allocBeam(sim, "cable", "", x)
	require.True(tst, errors.Is(err, solid.ErrUnsupportedMode))

	// response mode
	e, err := allocBeam(sim, "steel-plast", "!mode:3dbeam !rmode:secant", x)
	require.NoError(tst, err)
	require.Equal(tst, solid.SecantStiffness, e.(*Beam3dNl).Rmode)

	// factory wraps the allocator error
	reg := sim.Regions[0]
	reg.ElemsData[0].Extra = "!mode:pstrain"
	_, err = ele.New(reg.Msh.Cells[0], reg, sim)
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "pstrain")
}

func Test_beam3dnl04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl04. zero motion and axial stretching")

	o, sol := newBeam(tst, "", true)

	// zero motion
	fi := make([]float64, 12)
	require.NoError(tst, o.InternalForces(fi, sol, false))
	chk.Array(tst, "fi(zero)", 1e-15, fi, nil)
	eps := make([]float64, 6)
	o.ComputeStrain(eps, sol)
	chk.Array(tst, "ε(zero)", 1e-15, eps, nil)
	xd := make([]float64, 3)
	o.ChordVector(xd, sol)
	chk.Array(tst, "xd(zero)", 1e-15, xd, []float64{2, 0, 0})

	// stretching
	y := make([]float64, 12)
	y[6] = 0.01
	setDisp(sol, y)
	o.ChordVector(xd, sol)
	chk.Array(tst, "xd", 1e-15, xd, []float64{2.01, 0, 0})
	o.ComputeStrain(eps, sol)
	chk.Array(tst, "ε", 1e-15, eps, []float64{0.005, 0, 0, 0, 0, 0})

	N := tstE * tstA * 0.005
	require.NoError(tst, o.InternalForces(fi, sol, false))
	chk.Array(tst, "fi", 1e-9, fi, []float64{-N, 0, 0, 0, 0, 0, N, 0, 0, 0, 0, 0})

	// residual
	fb := make([]float64, 12)
	require.NoError(tst, o.AddToRhs(fb, sol))
	chk.Array(tst, "fb", 1e-9, fb, []float64{N, 0, 0, 0, 0, 0, -N, 0, 0, 0, 0, 0})

	// converged values are only available after commit
	M := ele.NewIpsMap()
	o.OutIpVals(M, sol)
	chk.Float64(tst, "N(before commit)", 1e-15, M.Get("N", 0), 0)
	require.NoError(tst, o.CommitStep(sol))
	o.OutIpVals(M, sol)
	chk.Float64(tst, "N", 1e-9, M.Get("N", 0), N)
	chk.Float64(tst, "eps", 1e-15, M.Get("eps", 0), 0.005)

	// converged forces
	require.NoError(tst, o.InternalForces(fi, sol, true))
	chk.Array(tst, "fi(updated)", 1e-9, fi, []float64{-N, 0, 0, 0, 0, 0, N, 0, 0, 0, 0, 0})
}

func Test_beam3dnl05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl05. rigid body rotation")

	axis := []float64{0.1, -0.2, 0.3}
	norm := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	xd0 := []float64{2, 0, 0}
	for _, θ := range []float64{1e-6, 0.37, 1.0, 2.0, 3.0} {

		o, sol := newBeam(tst, "", true)
		ψ := make([]float64, 3)
		for i := 0; i < 3; i++ {
			ψ[i] = θ * axis[i] / norm
		}
		R := rot.Alloc()
		rot.Exp(R, ψ)
		Rxd := make([]float64, 3)
		rot.MatVecMul(Rxd, R, xd0)

		y := make([]float64, 12)
		for i := 0; i < 3; i++ {
			y[6+i] = Rxd[i] - xd0[i]
			y[3+i] = ψ[i]
			y[9+i] = ψ[i]
		}
		setDisp(sol, y)

		msg := io.Sf("|ψ|=%g: ", θ)
		eps := make([]float64, 6)
		o.ComputeStrain(eps, sol)
		chk.Array(tst, msg+"ε", 1e-13, eps, nil)
		chk.Deep2(tst, msg+"Tmp", 1e-15, o.Triad.Tmp, R)
		checkRotation(tst, msg+"Tmp", o.Triad.Tmp)

		fi := make([]float64, 12)
		require.NoError(tst, o.InternalForces(fi, sol, false))
		chk.Array(tst, msg+"fi", 1e-6, fi, nil)
	}
}

func Test_beam3dnl06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl06. trial triad and state counter")

	o, sol := newBeam(tst, "", true)

	// first refresh
	y := make([]float64, 12)
	y[5], y[11] = 0.2, 0.4
	setDisp(sol, y)
	eps := make([]float64, 6)
	o.ComputeStrain(eps, sol)
	chk.Int(tst, "counter", o.Triad.Counter, sol.StateCounter)
	Rz := rot.Alloc()
	rot.Exp(Rz, []float64{0, 0, 0.3})
	chk.Deep2(tst, "Tmp", 1e-15, o.Triad.Tmp, Rz)

	// same counter: cached triad is kept
	sol.ΔY[5] = 1.0
	o.ComputeStrain(eps, sol)
	chk.Deep2(tst, "Tmp(cached)", 1e-15, o.Triad.Tmp, Rz)

	// new counter: recomputed from the committed triad
	sol.ΔY[5] = 0.2
	sol.BumpCounter()
	o.ComputeStrain(eps, sol)
	chk.Deep2(tst, "Tmp(no compounding)", 1e-15, o.Triad.Tmp, Rz)
	sol.BumpCounter()
	o.ComputeStrain(eps, sol)
	chk.Deep2(tst, "Tmp(again)", 1e-15, o.Triad.Tmp, Rz)
	checkRotation(tst, "Tmp", o.Triad.Tmp)

	// reset discards the trial triad
	require.NoError(tst, o.ResetStep())
	chk.Deep2(tst, "Tmp(reset)", 1e-15, o.Triad.Tmp, rot.Identity())
	chk.Int(tst, "counter(reset)", o.Triad.Counter, -1)

	// orthonormality after many increments
	for k := 0; k < 20; k++ {
		for i := 0; i < 3; i++ {
			sol.ΔY[3+i] = 0.05 * float64(k+i)
			sol.ΔY[9+i] = -0.03 * float64(k-i)
		}
		sol.BumpCounter()
		o.ComputeStrain(eps, sol)
		require.NoError(tst, o.CommitStep(sol))
	}
	checkRotation(tst, "Tc", o.Triad.Tc)
}

func Test_beam3dnl07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl07. accumulation of curvatures")

	o, sol := newBeam(tst, "", true)
	eps := make([]float64, 6)

	// step 1
	y := make([]float64, 12)
	y[11] = 0.01
	setDisp(sol, y)
	o.ComputeStrain(eps, sol)
	chk.Array(tst, "κ(step1)", 1e-15, eps[3:], []float64{0, 0, 0.005})
	require.NoError(tst, o.CommitStep(sol))
	chk.Array(tst, "κ(committed)", 1e-15, o.State.Eps[3:], []float64{0, 0, 0.005})
	Rz := rot.Alloc()
	rot.Exp(Rz, []float64{0, 0, 0.005})
	chk.Deep2(tst, "Tc", 1e-15, o.Triad.Tc, Rz)

	// step 2
	sol.Y[11] = 0.02
	sol.ΔY[11] = 0.01
	sol.BumpCounter()
	o.ComputeStrain(eps, sol)
	chk.Array(tst, "κ(step2)", 1e-15, eps[3:], []float64{0, 0, 0.01})

	// bending moment
	require.NoError(tst, o.CommitStep(sol))
	chk.Float64(tst, "M3", 1e-12, o.State.Sig[5], tstE*tstI*0.01)
}

func Test_beam3dnl08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl08. consistent tangent @ undeformed state")

	o, sol := newBeam(tst, "", true)
	CheckK(tst, "K", o, sol, nil, nil, 1e-3, 1e-5, chk.Verbose)

	// no stress => no geometric stiffness
	chk.Deep2(tst, "Kg1", 1e-15, o.Kg1, utl.Alloc(12, 12))
	chk.Deep2(tst, "Kg2", 1e-15, o.Kg2, utl.Alloc(12, 12))
	chk.Float64(tst, "K00", 1e-6, o.K[0][0], tstE*tstA/2)
	chk.Float64(tst, "K55", 1e-9, o.K[5][5], tstE*tstI/2+tstG*tstA*(5.0/6.0)/2)
}

func Test_beam3dnl09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl09. consistent tangent @ deformed state")

	o, sol := newBeam(tst, "", true)
	y := make([]float64, 12)
	y[6], y[7], y[8] = 0.01, 0.02, -0.015
	setDisp(sol, y)

	trans := []int{0, 1, 2, 6, 7, 8}
	CheckK(tst, "Ktt", o, sol, trans, trans, 1e-3, 1e-5, chk.Verbose)

	// rotational columns: Kg1 and Kg2 rotate n and m with the full nodal rotation whereas the trial
	// triad follows the mean spin ½(Δθ_A + Δθ_B); thus the numerical tangent is Kmat + ½(Kg1 + Kg2)
	require.NoError(tst, o.CalcK(sol, solid.TangentStiffness))
	Kana := utl.Alloc(12, 12)
	Khalf := utl.Alloc(12, 12)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			Kana[i][j] = o.K[i][j]
			Khalf[i][j] = o.Kmat[i][j] + 0.5*(o.Kg1[i][j]+o.Kg2[i][j])
		}
	}
	fi := make([]float64, 12)
	dev := 0.0
	for _, j := range []int{3, 4, 5, 9, 10, 11} {
		yj := sol.Y[j]
		for i := 0; i < 12; i++ {
			dnum := num.DerivCen5(yj, 1e-5, func(x float64) float64 {
				sol.Y[j], sol.ΔY[j] = x, x
				sol.BumpCounter()
				require.NoError(tst, o.InternalForces(fi, sol, false))
				return fi[i]
			})
			chk.AnaNum(tst, io.Sf("Kr%3d%3d", i, j), 1e-3, Khalf[i][j], dnum, chk.Verbose)
			dev = math.Max(dev, math.Abs(Kana[i][j]-dnum))
		}
		sol.Y[j], sol.ΔY[j] = yj, yj
		sol.BumpCounter()
	}
	if dev < 1e3 {
		tst.Errorf("rotational columns of K should deviate from the numerical tangent. max|K-Knum| = %g\n", dev)
	}
}

func Test_beam3dnl10(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl10. symmetry of tangent matrix")

	o, sol := newBeam(tst, "", true)
	y := make([]float64, 12)
	y[6] = 0.01
	y[10], y[11] = 0.02, 0.01
	setDisp(sol, y)
	require.NoError(tst, o.CalcK(sol, solid.TangentStiffness))

	asym := func(K [][]float64) (res float64) {
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				res = math.Max(res, math.Abs(K[i][j]-K[j][i]))
			}
		}
		return
	}
	chk.Float64(tst, "asym(Kmat)", 1e-7, asym(o.Kmat), 0)
	if asym(o.K) < 1e-3 {
		tst.Errorf("K should be non-symmetric under bending. max|K-Kᵀ| = %g\n", asym(o.K))
	}

	// assembly
	Kb := new(la.Triplet)
	Kb.Init(12, 12, 144)
	require.NoError(tst, o.AddToKb(Kb, sol, true))
}

func Test_beam3dnl11(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl11. lumped mass, gravity and dynamics")

	o, sol := newBeam(tst, "", false)
	require.NotNil(tst, o.M)

	m := tstRho * tstA * 2.0 / 2.0
	Ip := tstRho * 2.0 / 2.0
	diag := []float64{m, m, m, Ip * 2 * tstI, Ip * tstI, Ip * tstI}
	for r := 0; r < 2; r++ {
		for i := 0; i < 6; i++ {
			chk.Float64(tst, io.Sf("M%d", 6*r+i), 1e-15, o.M[6*r+i][6*r+i], diag[i])
		}
	}
	mtot := 0.0
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			if i != j {
				chk.Float64(tst, io.Sf("M%d%d", i, j), 1e-15, o.M[i][j], 0)
			}
		}
	}
	for _, i := range []int{0, 6} {
		mtot += o.M[i][i]
	}
	chk.Float64(tst, "total mass", 1e-15, mtot, tstRho*tstA*2)
	require.Panics(tst, func() { o.LumpedMass(utl.Alloc(6, 6)) })

	// dynamics: a = α1⋅u - ζ*
	sol.Zet[0] = 1.0
	require.NoError(tst, o.InterpStarVars(sol))
	fb := make([]float64, 12)
	require.NoError(tst, o.AddToRhs(fb, sol))
	chk.Float64(tst, "fb0", 1e-15, fb[0], m)

	Kb := new(la.Triplet)
	Kb.Init(12, 12, 144)
	require.NoError(tst, o.AddToKb(Kb, sol, true))

	// gravity
	require.NoError(tst, o.SetEleConds("g", &dbf.Cte{C: 10}, ""))
	sol.Zet[0] = 0
	require.NoError(tst, o.InterpStarVars(sol))
	for i := range fb {
		fb[i] = 0
	}
	require.NoError(tst, o.AddToRhs(fb, sol))
	chk.Array(tst, "fb(gravity)", 1e-14, fb, []float64{0, 0, -10 * m, 0, 0, 0, 0, 0, -10 * m, 0, 0, 0})

	require.Error(tst, o.SetEleConds("qn", &dbf.Cte{C: 1}, ""))
}

func Test_beam3dnl12(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl12. gravity in steady simulation")

	o, sol := newBeam(tst, "", true)
	require.Nil(tst, o.M)
	require.NoError(tst, o.SetEleConds("g", &dbf.Cte{C: 10}, ""))
	require.NotNil(tst, o.M)
	fb := make([]float64, 12)
	require.NoError(tst, o.AddToRhs(fb, sol))
	w := 10 * tstRho * tstA
	chk.Array(tst, "fb", 1e-14, fb, []float64{0, 0, -w, 0, 0, 0, 0, 0, -w, 0, 0, 0})
}

func Test_beam3dnl13(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl13. internal variables and encoding")

	o, sol := newBeam(tst, "", true)

	// initial values
	require.NoError(tst, o.SetIniIvs(sol, map[string][]float64{"N": {5}, "M3": {-2}}))
	chk.Array(tst, "σ0", 1e-15, o.State.Sig, []float64{5, 0, 0, 0, 0, -2})
	require.Error(tst, o.SetIniIvs(sol, map[string][]float64{"sx": {5}}))
	require.Error(tst, o.SetIniIvs(sol, map[string][]float64{"N": {}}))
	σ := make([]float64, 6)
	require.Error(tst, Ivs2beam(σ, 1, map[string][]float64{"Mt": {3}}))
	require.Error(tst, Ivs2beam(σ, -1, map[string][]float64{"Mt": {3}}))
	require.NoError(tst, Ivs2beam(σ, 1, map[string][]float64{"Mt": {3, 4}}))
	chk.Array(tst, "σ(ip=1)", 1e-15, σ, []float64{0, 0, 0, 4, 0, 0})
	require.NoError(tst, o.SetIniIvs(sol, nil))
	chk.Array(tst, "σ0(nil)", 1e-15, o.State.Sig, nil)

	// backup
	require.Error(tst, o.RestoreIvs(true))
	require.NoError(tst, o.BackupIvs(false))
	require.NoError(tst, o.BackupIvs(true))

	// converged step
	y := make([]float64, 12)
	y[6], y[11] = 0.01, 0.02
	setDisp(sol, y)
	require.NoError(tst, o.CommitStep(sol))
	sig := make([]float64, 6)
	copy(sig, o.State.Sig)
	Tc := rot.Alloc()
	rot.Copy(Tc, o.Triad.Tc)

	// encode
	for _, enctype := range []string{"json", "gob"} {
		var buf bytes.Buffer
		require.NoError(tst, o.Encode(utl.NewEncoder(&buf, enctype)))
		p, _ := newBeam(tst, "", true)
		require.NoError(tst, p.Decode(utl.NewDecoder(&buf, enctype)))
		chk.Array(tst, enctype+": σ", 1e-15, p.State.Sig, sig)
		chk.Deep2(tst, enctype+": Tc", 1e-15, p.Triad.Tc, Tc)
		chk.Int(tst, enctype+": counter", p.Triad.Counter, -1)
	}

	// restore
	require.NoError(tst, o.RestoreIvs(false))
	chk.Array(tst, "σ(restored)", 1e-15, o.State.Sig, nil)
	chk.Deep2(tst, "Tc(restored)", 1e-15, o.Triad.Tc, rot.Identity())
	require.NoError(tst, o.RestoreIvs(true))
	chk.Array(tst, "σ(restored aux)", 1e-15, o.State.Sig, nil)
}

func Test_beam3dnl14(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl14. contract violations")

	o, sol := newBeam(tst, "", true)
	require.Panics(tst, func() { o.ChordVector(make([]float64, 2), sol) })
	require.Panics(tst, func() { o.ComputeStrain(make([]float64, 5), sol) })
	require.Panics(tst, func() { o.InternalForces(make([]float64, 11), sol, false) })
	require.Panics(tst, func() { KinematicMatrix(mat.NewDense(6, 6, nil), []float64{1, 0, 0}) })
	require.Panics(tst, func() { o.Triad.Refresh(sol.StateCounter, make([]float64, 6)) })
	require.Panics(tst, func() { o.Sec.GeneralizedStress(o.State, make([]float64, 3)) })
}

func Test_beam3dnl15(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl15. kinematic matrix")

	xd := []float64{2, 1, -1}
	Xm := mat.NewDense(12, 6, nil)
	KinematicMatrix(Xm, xd)

	// fi = X ⋅ {n, m}: equilibrium of forces and moments about node A
	n := []float64{1, -2, 3}
	nm := mat.NewVecDense(6, []float64{n[0], n[1], n[2], 0, 0, 0})
	fi := mat.NewVecDense(12, nil)
	fi.MulVec(Xm, nm)
	sumF := make([]float64, 3)
	sumM := make([]float64, 3)
	mB := []float64{
		xd[1]*fi.AtVec(8) - xd[2]*fi.AtVec(7),
		xd[2]*fi.AtVec(6) - xd[0]*fi.AtVec(8),
		xd[0]*fi.AtVec(7) - xd[1]*fi.AtVec(6),
	}
	for i := 0; i < 3; i++ {
		sumF[i] = fi.AtVec(i) + fi.AtVec(6+i)
		sumM[i] = fi.AtVec(3+i) + fi.AtVec(9+i) + mB[i]
	}
	chk.Array(tst, "ΣF", 1e-15, sumF, nil)
	chk.Array(tst, "ΣM", 1e-14, sumM, nil)
}

func Test_beam3dnl16(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam3dnl16. geometric stiffness and scratchpad")

	K := utl.Alloc(12, 12)
	sn, sm, sx, y := rot.Alloc(), rot.Alloc(), rot.Alloc(), rot.Alloc()

	// force along x only
	GeometricStiffness1(K, sn, sm, []float64{1, 0, 0}, []float64{0, 0, 0})
	chk.Float64(tst, "Kg1[1][5]", 1e-15, K[1][5], -1)
	chk.Float64(tst, "Kg1[2][4]", 1e-15, K[2][4], 1)
	chk.Float64(tst, "Kg1[7][11]", 1e-15, K[7][11], 1)
	chk.Float64(tst, "Kg1[4][4]", 1e-15, K[4][4], 0)

	// Y = ½⋅skew(xd)⋅skew(n) with xd ∥ n
	GeometricStiffness2(K, sn, sx, y, []float64{1, 0, 0}, []float64{2, 0, 0})
	chk.Float64(tst, "Kg2[4][2]", 1e-15, K[4][2], 1)
	chk.Float64(tst, "Kg2[4][8]", 1e-15, K[4][8], -1)
	chk.Float64(tst, "Kg2[4][4]", 1e-15, K[4][4], -1)
	chk.Float64(tst, "Kg2[10][10]", 1e-15, K[10][10], -1)
	chk.Float64(tst, "Kg2[0][2]", 1e-15, K[0][2], 0)

	// no allocations during iterations
	o, sol := newBeam(tst, "", true)
	yd := make([]float64, 12)
	yd[6], yd[10], yd[11] = 0.01, 0.02, 0.01
	setDisp(sol, yd)
	eps := make([]float64, 6)
	allocs := testing.AllocsPerRun(10, func() {
		sol.BumpCounter()
		o.ComputeStrain(eps, sol)
	})
	chk.Float64(tst, "allocs(ComputeStrain)", 1e-15, allocs, 0)
	allocs = testing.AllocsPerRun(10, func() {
		GeometricStiffness1(o.Kg1, o.Sn, o.Sm, o.n, o.m)
		GeometricStiffness2(o.Kg2, o.Sn, o.Sx, o.Y, o.n, o.xd)
	})
	chk.Float64(tst, "allocs(Kg)", 1e-15, allocs, 0)
}
