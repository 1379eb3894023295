// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/oofem
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"

	// problem definition and options
	Steady bool `json:"steady"` // steady simulation
}

// SolverData holds FEM solver data
type SolverData struct {

	// dynamics
	DtMin  float64 `json:"dtmin"`  // minimum value of Dt for Newmark / Dyn coefficients
	Theta1 float64 `json:"theta1"` // Newmark's method parameter
	Theta2 float64 `json:"theta2"` // Newmark's method parameter

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0
}

// ElemData holds element data
type ElemData struct {

	// input data
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Type  string `json:"type"`  // type of element. ex: beam3dnl, elastrod
	Nip   int    `json:"nip"`   // number of integration points; 0 => use default
	Extra string `json:"extra"` // extra flags (in keycode format). ex: "!mode:3dbeam"
	Inact bool   `json:"inact"` // whether element starts inactive or not
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region. ex: frame, tower, etc.
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh *Mesh // the mesh
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data    Data       `json:"data"`    // stores global simulation data
	Regions []*Region  `json:"regions"` // stores all regions
	Solver  SolverData `json:"solver"`  // FEM solver data

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	EncType   string // encoder type
	Ndim      int    // space dimension
	MatModels *MatDb // materials and models
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// Free frees resources
func (o *Simulation) Free() {
	if o.MatModels != nil {
		o.MatModels.Free()
	}
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	simfilepath = os.ExpandEnv(simfilepath)
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/oofem/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// check solver data
	err = o.Solver.PostProcess()
	if err != nil {
		return nil, err
	}

	// for all regions
	if len(o.Regions) < 1 {
		return nil, chk.Err("ReadSim: simulation %q must have at least one region", fn)
	}
	for i, reg := range o.Regions {

		// read mesh
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Msh, err = ReadMsh(ddir, reg.Mshfile)
		if err != nil {
			return nil, chk.Err("ReadSim: cannot read mesh file:\n%v", err)
		}

		// get ndim
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			return nil, chk.Err("ReadSim: Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
		}
	}

	// read materials database and initialise models
	o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("loading materials and initialising models failed:\n%v", err)
	}

	// check elements data
	for _, reg := range o.Regions {
		for _, edat := range reg.ElemsData {
			if o.MatModels.Get(edat.Mat) == nil {
				return nil, chk.Err("ReadSim: cannot find material %q of element with tag %d", edat.Mat, edat.Tag)
			}
		}
	}
	io.Pforan("simulation %q: ndim=%d nregions=%d\n", o.Key, o.Ndim, len(o.Regions))
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	for _, edat := range o.ElemsData {
		if edat.Tag == etag {
			return edat
		}
	}
	return nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.DtMin = 1e-8
	o.Theta1 = 0.5
	o.Theta2 = 0.5
	o.Eps = 1e-16
}

// PostProcess checks the just read json data
func (o *SolverData) PostProcess() (err error) {
	if o.Theta1 < 1e-5 || o.Theta1 > 1.0 || o.Theta2 < 1e-5 || o.Theta2 > 1.0 {
		return chk.Err("θ1 and θ2 Newmark parameters must be such that 1e-5 ≤ θ ≤ 1.0. θ1=%g and θ2=%g are incorrect", o.Theta1, o.Theta2)
	}
	return
}
