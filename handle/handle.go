// Package handle provides Ref, the identity of a native FMOD object.
//
// FMOD hands out opaque pointers (FMOD_CHANNEL*, FMOD_STUDIO_VCA*, ...).
// A Ref holds one of them and nothing else, so two Refs are equal exactly
// when they hold the same pointer, whether or not the object behind it is
// still alive.
package handle

import (
	"fmt"

	"github.com/obinnaokechukwu/fmodgo/result"
)

// Ref is an immutable reference to a native object. The zero Ref holds no
// object; New never returns it.
type Ref struct {
	p uintptr
}

// New wraps the native pointer p. A zero pointer is rejected.
func New(p uintptr) (Ref, error) {
	if p == 0 {
		return Ref{}, fmt.Errorf("%w: null native handle", result.ErrInvalidArgument)
	}
	return Ref{p: p}, nil
}

// Pointer returns the wrapped native pointer.
func (r Ref) Pointer() uintptr {
	return r.p
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.p == 0
}

// Equal reports whether r and other wrap the same native pointer.
func (r Ref) Equal(other Ref) bool {
	return r.p == other.p
}

// Hash returns a hash derived from the native pointer; 0 for the zero Ref.
func (r Ref) Hash() uint64 {
	return uint64(r.p)
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return fmt.Sprintf("%#x", r.p)
}
