// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/MaSheep/oofem/mdl/solid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "beam-elast", "oned-elast", etc.
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Sld solid.Model // pointer to actual solid model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// Free frees resources
func (o *MatDb) Free() {
	for _, mat := range o.Materials {
		if mat.Sld != nil {
			mat.Sld.Free()
		}
	}
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(os.ExpandEnv(filepath.Join(dir, fn)))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// alloc/init models
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if names[m.Name] {
			return nil, chk.Err("material name %q is repeated in %q", m.Name, fn)
		}
		names[m.Name] = true
		m.Sld, err = solid.New(m.Model)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		err = m.Sld.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		io.Pfgrey("material %q: model %q initialised\n", m.Name, m.Model)
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
