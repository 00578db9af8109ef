// File: vector/reserve.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

// ReserveProxy selects the reserve-without-populate construction path.
type ReserveProxy struct {
	newCapacity int
}

// Reserve wraps a capacity request for FromReserve.
func Reserve(capacityToReserve int) ReserveProxy {
	return ReserveProxy{newCapacity: capacityToReserve}
}

// GetNewCapacity returns the requested capacity.
func (r ReserveProxy) GetNewCapacity() int {
	return r.newCapacity
}
