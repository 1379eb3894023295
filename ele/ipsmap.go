// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// IpsMap holds results @ integration points; key => values at each integration point
//  e.g. {"N": [N@ip0, N@ip1], "M2": [M2@ip0, M2@ip1]}
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets item in map by key and ip-index. The slice is resized with nip in case it's empty
//  Input:
//   idx -- index of integration point
//   nip -- number of integration points (to resize if necessary)
//   val -- value of 'key' @ integration point 'idx'
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	if idx < 0 || idx >= nip {
		chk.Panic("IpsMap: index of integration point %d is out of range [0, %d)", idx, nip)
	}
	if slice, ok := (*o)[key]; ok {
		slice[idx] = val
		return
	}
	slice := make([]float64, nip)
	slice[idx] = val
	(*o)[key] = slice
}

// Get returns item corresponding to 'key' and integration point 'idx'
//  Note: this function returns 0 if 'key' is not found. It also does not check for out-of-bound errors
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}

// Keys returns the sorted keys in map
func (o *IpsMap) Keys() (keys []string) {
	keys = make([]string, 0, len(*o))
	for key := range *o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}
