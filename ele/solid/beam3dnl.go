// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/MaSheep/oofem/ele"
	"github.com/MaSheep/oofem/inp"
	"github.com/MaSheep/oofem/mdl/solid"
	"github.com/MaSheep/oofem/rot"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Beam3dNl represents a geometrically nonlinear space beam (2 nodes) based on a corotational
// formulation. An incrementally updated triad separates the rigid body motion from the
// deformation; thus small strain section models remain valid under large rotations
//
//            y         ,o (2) reference vertex: defines the local x-y plane; it has no DOFs
//            ^       ,'
//            |     ,'
//            |   ,'
//           (0)o=============================o(1) -----> x
//             ,
//           ,'            DOFs per node: ux, uy, uz, rx, ry, rz
//          z
//
//  Generalised strains: {ε, γ2, γ3, κ1, κ2, κ3} (one integration point at the middle)
//  Generalised stresses: {N, Q2, Q3, Mt, M2, M3}
type Beam3dNl struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [3][3]; third column is the reference vertex
	Nu   int         // total number of unknowns == 12
	L0   float64     // initial length

	// section and state
	Sec      *solid.CrossSection // cross-section (material mode + model)
	Rmode    solid.ResponseMode  // response mode used by AddToKb
	State    *solid.BeamState    // state @ integration point
	StateBkp *solid.BeamState    // backup state
	StateAux *solid.BeamState    // auxiliary backup state
	Triad    *Triad              // orientation
	TriadBkp *Triad              // backup orientation
	TriadAux *Triad              // auxiliary backup orientation

	// variables for dynamics
	Gfcn dbf.T // gravity function

	// vectors and matrices
	K    [][]float64 // [12][12] total tangent K = Kmat + Kg1 + Kg2
	Kmat [][]float64 // [12][12] material part of K
	Kg1  [][]float64 // [12][12] first geometric part of K
	Kg2  [][]float64 // [12][12] second geometric part of K
	M    [][]float64 // [12][12] lumped mass matrix
	D    [][]float64 // [6][6] material matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	lcs  [][]float64 // [3][3] local frame; rows are local axes
	ue   []float64   // [12] total nodal displacements
	Δue  []float64   // [12] nodal displacements since last converged step
	ζe   []float64   // [12] local ζ* vector
	fi   []float64   // [12] internal forces
	eps  []float64   // [6] generalised strains
	xd   []float64   // [3] current chord
	nm   []float64   // [6] force and moment in global system
	n    []float64   // [3] force in global system
	m    []float64   // [3] moment in global system
	Δψ   []float64   // [3] relative incremental rotation
	ac   []float64   // [3] half of Δψ
	Smid [][]float64 // [3][3] I + ½⋅skew(½⋅Δψ)
	Tmid [][]float64 // [3][3] midpoint triad
	Sn   [][]float64 // [3][3] skew(n)
	Sm   [][]float64 // [3][3] skew(m)
	Sx   [][]float64 // [3][3] skew(xd)
	Y    [][]float64 // [3][3] ½⋅skew(xd)⋅skew(n)
	Xm   *mat.Dense  // [12][6] kinematic matrix
	T6   *mat.Dense  // [6][6] block-diagonal trial triad
	Xt   *mat.Dense  // [12][6] Xm ⋅ T6
	XtD  *mat.Dense  // [12][6] Xt ⋅ D
	Kd   *mat.Dense  // [12][12] material stiffness
	Dd   *mat.Dense  // [6][6] material matrix
}

// beam3dnlKeys holds the solution variables of beam3dnl nodes
var beam3dnlKeys = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("beam3dnl", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables. the reference vertex has no DOFs
		info.Dofs = make([][]string, 2)
		for m := 0; m < 2; m++ {
			info.Dofs[m] = beam3dnlKeys
		}

		// maps
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz", "rx": "mx", "ry": "my", "rz": "mz"}

		// t2 variables
		info.T2vars = beam3dnlKeys
		return &info
	})

	// element allocator
	ele.SetAllocator("beam3dnl", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (ele.Element, error) {

		// check
		if len(x) != 3 {
			return nil, chk.Err("beam3dnl requires ndim == 3. ndim=%d is invalid", len(x))
		}
		if len(x[0]) < 3 {
			return nil, chk.Err("beam3dnl {tag=%d, id=%d} requires a reference vertex (third vertex of cell)", cell.Tag, cell.Id)
		}

		// basic data
		var o Beam3dNl
		o.Cell = cell
		o.X = x
		o.Nu = 12

		// geometry
		var err error
		o.lcs, o.L0, err = localFrame(x)
		if err != nil {
			return nil, chk.Err("beam3dnl {tag=%d, id=%d}: %v", cell.Tag, cell.Id, err)
		}

		// material mode
		mode := solid.Mode3dBeam
		if s_mode, found := io.Keycode(edat.Extra, "mode"); found {
			mode, err = solid.ParseMode(s_mode)
			if err != nil {
				return nil, err
			}
		}
		o.Rmode = solid.TangentStiffness
		if s_rmode, found := io.Keycode(edat.Extra, "rmode"); found {
			o.Rmode, err = solid.ParseResponseMode(s_rmode)
			if err != nil {
				return nil, err
			}
		}

		// cross-section
		matdata := sim.MatModels.Get(edat.Mat)
		if matdata == nil {
			return nil, chk.Err("cannot find material %q for beam3dnl {tag=%d, id=%d}", edat.Mat, cell.Tag, cell.Id)
		}
		o.Sec, err = solid.NewCrossSection(matdata.Sld, mode)
		if err != nil {
			return nil, err
		}

		// state
		o.State, err = o.Sec.InitIntVars()
		if err != nil {
			return nil, err
		}
		o.StateBkp = o.State.GetCopy()
		o.Triad = NewTriad(o.lcs)
		o.TriadBkp = o.Triad.GetCopy()

		// vectors and matrices
		o.alloc()
		if !sim.Data.Steady {
			o.M = utl.Alloc(o.Nu, o.Nu)
			err = o.LumpedMass(o.M)
			if err != nil {
				return nil, err
			}
		}

		// return new element
		return &o, nil
	})
}

// alloc allocates matrices and scratchpad
func (o *Beam3dNl) alloc() {
	o.K = utl.Alloc(o.Nu, o.Nu)
	o.Kmat = utl.Alloc(o.Nu, o.Nu)
	o.Kg1 = utl.Alloc(o.Nu, o.Nu)
	o.Kg2 = utl.Alloc(o.Nu, o.Nu)
	o.D = utl.Alloc(6, 6)
	o.ue = make([]float64, o.Nu)
	o.Δue = make([]float64, o.Nu)
	o.ζe = make([]float64, o.Nu)
	o.fi = make([]float64, o.Nu)
	o.eps = make([]float64, 6)
	o.xd = make([]float64, 3)
	o.nm = make([]float64, 6)
	o.n = make([]float64, 3)
	o.m = make([]float64, 3)
	o.Δψ = make([]float64, 3)
	o.ac = make([]float64, 3)
	o.Smid = rot.Alloc()
	o.Tmid = rot.Alloc()
	o.Sn = rot.Alloc()
	o.Sm = rot.Alloc()
	o.Sx = rot.Alloc()
	o.Y = rot.Alloc()
	o.Xm = mat.NewDense(o.Nu, 6, nil)
	o.T6 = mat.NewDense(6, 6, nil)
	o.Xt = mat.NewDense(o.Nu, 6, nil)
	o.XtD = mat.NewDense(o.Nu, 6, nil)
	o.Kd = mat.NewDense(o.Nu, o.Nu, nil)
	o.Dd = mat.NewDense(6, 6, nil)
}

// Id returns the cell Id
func (o *Beam3dNl) Id() int { return o.Cell.Id }

// SetEqs set equations [2][6]. Format of eqs == format of info.Dofs
func (o *Beam3dNl) SetEqs(eqs [][]int, mixedform_eqs []int) (err error) {
	o.Umap, err = ele.BuildUmap(eqs, 2, 6)
	return
}

// SetEleConds set element conditions
func (o *Beam3dNl) SetEleConds(key string, f dbf.T, extra string) (err error) {
	if key == "g" {
		if o.M == nil {
			o.M = utl.Alloc(o.Nu, o.Nu)
			err = o.LumpedMass(o.M)
			if err != nil {
				return
			}
		}
		o.Gfcn = f
		return
	}
	return chk.Err("beam3dnl cannot handle element condition named %q", key)
}

// InterpStarVars interpolates star variables to integration points
func (o *Beam3dNl) InterpStarVars(sol *ele.Solution) (err error) {
	for i, I := range o.Umap {
		o.ζe[i] = sol.Zet[I]
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Beam3dNl) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// internal forces
	err = o.InternalForces(o.fi, sol, false)
	if err != nil {
		return
	}

	// dynamics
	if !sol.Steady {
		α1 := sol.DynCfs.GetAlp1()
		for i := 0; i < o.Nu; i++ {
			o.fi[i] += o.M[i][i] * (α1*o.ue[i] - o.ζe[i])
		}
	}

	// gravity (acting along -z)
	if o.Gfcn != nil {
		g := o.Gfcn.F(sol.T, nil)
		o.fi[2] += o.M[2][2] * g
		o.fi[8] += o.M[8][8] * g
	}

	// add to fb
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
//  Note: K is not symmetric in general
func (o *Beam3dNl) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {
	err = o.CalcK(sol, o.Rmode)
	if err != nil {
		return
	}
	if sol.Steady {
		for i, I := range o.Umap {
			for j, J := range o.Umap {
				Kb.Put(I, J, o.K[i][j])
			}
		}
		return
	}
	α1 := sol.DynCfs.GetAlp1()
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.M[i][j]*α1+o.K[i][j])
		}
	}
	return
}

// CommitStep accepts the trial state computed for sol (end of converged step)
func (o *Beam3dNl) CommitStep(sol *ele.Solution) (err error) {
	o.ComputeStrain(o.eps, sol)
	err = o.Sec.GeneralizedStress(o.State, o.eps)
	if err != nil {
		return
	}
	o.State.Commit()
	o.Triad.Commit()
	io.Pfgrey("beam3dnl %d: committed. ε=%v σ=%v\n", o.Id(), o.State.Eps, o.State.Sig)
	return
}

// ResetStep discards the trial state
func (o *Beam3dNl) ResetStep() (err error) {
	o.State.Reset()
	o.Triad.Reset()
	return
}

// SetIniIvs sets initial ivs for given values in sol and ivs map
func (o *Beam3dNl) SetIniIvs(sol *ele.Solution, ivs map[string][]float64) (err error) {
	o.State, err = o.Sec.InitIntVars()
	if err != nil {
		return
	}
	if ivs != nil {
		err = Ivs2beam(o.State.Sig, 0, ivs)
		if err != nil {
			return
		}
		o.State.Reset()
	}
	o.StateBkp = o.State.GetCopy()
	o.Triad.Reset()
	return
}

// BackupIvs create copy of internal variables
func (o *Beam3dNl) BackupIvs(aux bool) (err error) {
	if aux {
		if o.StateAux == nil {
			o.StateAux = o.State.GetCopy()
			o.TriadAux = o.Triad.GetCopy()
			return
		}
		o.StateAux.Set(o.State)
		o.TriadAux.Set(o.Triad)
		return
	}
	o.StateBkp.Set(o.State)
	o.TriadBkp.Set(o.Triad)
	return
}

// RestoreIvs restore internal variables from copies
func (o *Beam3dNl) RestoreIvs(aux bool) (err error) {
	if aux {
		if o.StateAux == nil {
			return chk.Err("beam3dnl %d: auxiliary backup of internal variables is not available", o.Id())
		}
		o.State.Set(o.StateAux)
		o.Triad.Set(o.TriadAux)
		return
	}
	o.State.Set(o.StateBkp)
	o.Triad.Set(o.TriadBkp)
	return
}

// beam3dnlData holds the data saved by Encode
type beam3dnlData struct {
	Tc    [][]float64      // committed triad
	State *solid.BeamState // state @ integration point
}

// Encode encodes internal variables
func (o *Beam3dNl) Encode(enc utl.Encoder) (err error) {
	return enc.Encode(beam3dnlData{o.Triad.Tc, o.State})
}

// Decode decodes internal variables
func (o *Beam3dNl) Decode(dec utl.Decoder) (err error) {
	var dat beam3dnlData
	err = dec.Decode(&dat)
	if err != nil {
		return
	}
	if len(dat.Tc) != 3 || dat.State == nil || len(dat.State.Sig) != solid.NumBeamStrains {
		return chk.Err("beam3dnl %d: decoded data is inconsistent", o.Id())
	}
	o.State.Set(dat.State)
	o.State.Reset()
	for i := 0; i < 3; i++ {
		copy(o.Triad.Tc[i], dat.Tc[i])
	}
	o.Triad.Reset()
	return
}

// OutIpCoords returns the coordinates of integration points
func (o *Beam3dNl) OutIpCoords() (C [][]float64) {
	return [][]float64{o.GlobalCoords(0)}
}

// OutIpKeys returns the integration points' keys
func (o *Beam3dNl) OutIpKeys() []string {
	return append(BeamForceKeys(), BeamStrainKeys()...)
}

// OutIpVals returns the integration points' values corresponding to keys
//  Note: converged values are returned
func (o *Beam3dNl) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	for i, key := range BeamForceKeys() {
		M.Set(key, 0, 1, o.State.Sig[i])
	}
	for i, key := range BeamStrainKeys() {
		M.Set(key, 0, 1, o.State.Eps[i])
	}
}

// GetK returns the last computed tangent matrix
func (o *Beam3dNl) GetK() [][]float64 { return o.K }

// GetUmap returns the assembly map
func (o *Beam3dNl) GetUmap() []int { return o.Umap }
