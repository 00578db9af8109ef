// File: vector/probe.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import "github.com/momentics/simplevector/api"

// Probe returns a debug hook reporting v's size and capacity.
func Probe[T any](v *Vector[T]) func() any {
	return func() any {
		return map[string]int{
			"size":     v.GetSize(),
			"capacity": v.GetCapacity(),
		}
	}
}

// RegisterProbe attaches v's probe to dbg under name.
func RegisterProbe[T any](dbg api.Debug, name string, v *Vector[T]) {
	dbg.RegisterProbe(name, Probe(v))
}
