// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/MaSheep/oofem/ele"
	"github.com/MaSheep/oofem/inp"
	"github.com/MaSheep/oofem/mdl/solid"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ElastRod represents a structural rod element (for axial loads only) with 2 nodes only and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type ElastRod struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu   int         // total number of unknowns == 2 * ndim
	Ndim int         // space dimension

	// parameters and properties
	Sec   *solid.CrossSection // cross-section with material mode 1d
	Mdl   solid.OneD          // material model
	State *solid.OnedState    // state (constant)
	Rho   float64             // density
	L     float64             // length of rod

	// variables for dynamics
	Gfcn dbf.T // gravity function

	// vectors and matrices
	T [][]float64 // [2][nu] transformation matrix: system aligned to rod => element system
	K [][]float64 // [nu][nu] element K matrix
	M [][]float64 // [nu][nu] element M matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad. computed @ each ip
	ua []float64 // [2] local axial displacements
	ue []float64 // [nu] nodal displacements
	ζe []float64 // [nu] local ζ* vector
	fi []float64 // [nu] internal forces
}

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("elastrod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {

		// new info
		var info ele.Info

		// solution variables
		ykeys := []string{"ux", "uy"}
		if sim.Ndim == 3 {
			ykeys = []string{"ux", "uy", "uz"}
		}
		info.Dofs = make([][]string, 2)
		for m := 0; m < 2; m++ {
			info.Dofs[m] = ykeys
		}

		// maps
		info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}

		// t2 variables
		info.T2vars = ykeys
		return &info
	})

	// element allocator
	ele.SetAllocator("elastrod", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (ele.Element, error) {

		// check
		ndim := len(x)
		if ndim != 2 && ndim != 3 {
			return nil, chk.Err("elastrod requires ndim == 2 or 3. ndim=%d is invalid", ndim)
		}

		// basic data
		var o ElastRod
		o.Cell = cell
		o.X = x
		o.Ndim = ndim
		o.Nu = o.Ndim * 2

		// parameters
		matdata := sim.MatModels.Get(edat.Mat)
		if matdata == nil {
			return nil, chk.Err("cannot get materials data for elastic rod element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		var err error
		o.Sec, err = solid.NewCrossSection(matdata.Sld, solid.Mode1d)
		if err != nil {
			return nil, err
		}
		o.Mdl, err = o.Sec.Rod()
		if err != nil {
			return nil, err
		}
		o.Rho, err = o.Sec.Give(solid.CsDensity)
		if err != nil {
			return nil, err
		}
		o.State, err = o.Mdl.InitIntVars1D()
		if err != nil {
			return nil, err
		}

		// vectors and matrices
		o.T = utl.Alloc(2, o.Nu)
		o.K = utl.Alloc(o.Nu, o.Nu)
		o.M = utl.Alloc(o.Nu, o.Nu)
		o.ua = make([]float64, 2)
		o.ue = make([]float64, o.Nu)
		o.ζe = make([]float64, o.Nu)
		o.fi = make([]float64, o.Nu)

		// geometry
		for i := 0; i < o.Ndim; i++ {
			d := o.X[i][1] - o.X[i][0]
			o.L += d * d
		}
		o.L = math.Sqrt(o.L)
		if o.L < 1e-12 {
			return nil, chk.Err("length of elastrod {tag=%d id=%d} must be positive. L=%g is invalid", cell.Tag, cell.Id, o.L)
		}

		// K and M matrices
		o.Recompute(!sim.Data.Steady)

		// return new element
		return &o, nil
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElastRod) Id() int { return o.Cell.Id }

// SetEqs set equations
func (o *ElastRod) SetEqs(eqs [][]int, mixedform_eqs []int) (err error) {
	o.Umap, err = ele.BuildUmap(eqs, 2, o.Ndim)
	return
}

// InterpStarVars interpolates star variables to integration points
func (o *ElastRod) InterpStarVars(sol *ele.Solution) (err error) {
	for i, I := range o.Umap {
		o.ζe[i] = sol.Zet[I]
	}
	return
}

// SetEleConds set element conditions
func (o *ElastRod) SetEleConds(key string, f dbf.T, extra string) (err error) {
	if key == "g" {
		o.Gfcn = f
		return
	}
	return chk.Err("elastrod cannot handle element condition named %q", key)
}

// AddToRhs adds -R to global residual vector fb
func (o *ElastRod) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// node displacements
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}

	// steady/dynamics
	if sol.Steady {
		for i := 0; i < o.Nu; i++ {
			o.fi[i] = 0
			for j := 0; j < o.Nu; j++ {
				o.fi[i] += o.K[i][j] * o.ue[j]
			}
		}
	} else {
		α1 := sol.DynCfs.GetAlp1()
		for i := 0; i < o.Nu; i++ {
			o.fi[i] = 0
			for j := 0; j < o.Nu; j++ {
				o.fi[i] += o.M[i][j]*(α1*o.ue[j]-o.ζe[j]) + o.K[i][j]*o.ue[j]
			}
		}
	}

	// gravity (acting along -y in 2D and -z in 3D)
	if o.Gfcn != nil {
		w := o.Rho * o.Mdl.GetA() * o.L * o.Gfcn.F(sol.T, nil) / 2.0
		o.fi[o.Ndim-1] += w
		o.fi[2*o.Ndim-1] += w
	}

	// add to fb
	for i, I := range o.Umap {
		fb[I] -= o.fi[i]
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *ElastRod) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {
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

// writer ///////////////////////////////////////////////////////////////////////////////////////////

// Encode encodes internal variables
func (o *ElastRod) Encode(enc utl.Encoder) (err error) {
	return nil
}

// Decode decodes internal variables
func (o *ElastRod) Decode(dec utl.Decoder) (err error) {
	return nil
}

// OutIpCoords returns the coordinates of integration points
func (o *ElastRod) OutIpCoords() (C [][]float64) {
	C = utl.Alloc(1, o.Ndim) // centroid only
	for i := 0; i < o.Ndim; i++ {
		C[0][i] = (o.X[i][0] + o.X[i][1]) / 2.0 // centroid
	}
	return
}

// OutIpKeys returns the integration points' keys
func (o *ElastRod) OutIpKeys() []string {
	return []string{"sig"}
}

// OutIpVals returns the integration points' values corresponding to keys
func (o *ElastRod) OutIpVals(M *ele.IpsMap, sol *ele.Solution) {
	M.Set("sig", 0, 1, o.CalcSig(sol))
}

// specific methods /////////////////////////////////////////////////////////////////////////////////

// CalcSig computes the axial stress for given nodal displacements
func (o *ElastRod) CalcSig(sol *ele.Solution) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j, J := range o.Umap {
			o.ua[i] += o.T[i][j] * sol.Y[J]
		}
	}
	εa := (o.ua[1] - o.ua[0]) / o.L // axial strain
	E, _ := o.Mdl.CalcD(o.State, true)
	return E * εa // axial stress
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Recompute re-compute matrices after dimensions or parameters are externally changed
func (o *ElastRod) Recompute(withM bool) {

	// global-to-local transformation matrix: direction cosines
	for i := 0; i < o.Ndim; i++ {
		c := (o.X[i][1] - o.X[i][0]) / o.L
		o.T[0][i] = c
		o.T[1][o.Ndim+i] = c
	}

	// K = α ⋅ trans(T) ⋅ [[1,-1],[-1,1]] ⋅ T
	E, _ := o.Mdl.CalcD(o.State, true)
	α := E * o.Mdl.GetA() / o.L
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.K[i][j] = α * (o.T[0][i] - o.T[1][i]) * (o.T[0][j] - o.T[1][j])
		}
	}

	// M matrix (consistent)
	if withM {
		β := o.Rho * o.Mdl.GetA() * o.L / 6.0
		for i := 0; i < o.Nu; i++ {
			for j := 0; j < o.Nu; j++ {
				o.M[i][j] = 0
			}
		}
		for i := 0; i < o.Ndim; i++ {
			o.M[i][i] = 2.0 * β
			o.M[i][o.Ndim+i] = 1.0 * β
			o.M[o.Ndim+i][i] = 1.0 * β
			o.M[o.Ndim+i][o.Ndim+i] = 2.0 * β
		}
	}
}
