// Package conv provides checked integer narrowing for the engine.
//
// Narrowing here always follows a bounds decision made elsewhere (state
// ceilings, group limits), so an out-of-range value is a broken invariant
// and panics rather than returning an error.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking if it does not fit.
func IntToUint32(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
