//go:build !ios && !android && (amd64 || arm64)

// Package checked runs one entry of a bindings function table against a
// native handle and passes the FMOD_RESULT through result.Check.
//
// A nil function means the library that provides it was never loaded; every
// helper reports that as bindings.ErrNotLoaded without calling anything.
package checked

import (
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// Do calls fn(h) and reports whether it succeeded.
func Do(h uintptr, p result.Policy, op string, fn func(uintptr) int32) (bool, error) {
	if fn == nil {
		return false, bindings.ErrNotLoaded
	}
	code := result.Result(fn(h))
	return result.Check(code, op, p)
}

// Update calls fn(h, v), the shape of every FMOD setter.
func Update[T any](h uintptr, p result.Policy, op string, fn func(uintptr, T) int32, v T) error {
	if fn == nil {
		return bindings.ErrNotLoaded
	}
	code := result.Result(fn(h, v))
	_, err := result.Check(code, op, p)
	return err
}

// UpdateBool calls a setter that takes an FMOD_BOOL.
func UpdateBool(h uintptr, p result.Policy, op string, fn func(uintptr, int32) int32, v bool) error {
	return Update(h, p, op, fn, bindings.Bool(v))
}

// Query calls fn(h, &v), the shape of every single-value FMOD getter.
func Query[T any](h uintptr, p result.Policy, op string, fn func(uintptr, *T) int32) (result.Optional[T], error) {
	if fn == nil {
		return result.None[T](), bindings.ErrNotLoaded
	}
	var v T
	code := result.Result(fn(h, &v))
	return result.CheckValue(code, v, op, p)
}

// QueryBool calls a getter that writes an FMOD_BOOL.
func QueryBool(h uintptr, p result.Policy, op string, fn func(uintptr, *int32) int32) (result.Optional[bool], error) {
	v, err := Query(h, p, op, fn)
	return result.Map(v, func(b int32) bool { return b != 0 }), err
}
