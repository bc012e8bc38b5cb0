//go:build !ios && !android && (amd64 || arm64)

package studio

import (
	"fmt"

	"github.com/obinnaokechukwu/fmodgo/handle"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/internal/checked"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// VCA wraps an FMOD_STUDIO_VCA*.
//
// Like lowlevel.Channel, a VCA is a value carrying its own suppression
// toggles, and equality follows the native pointer only.
type VCA struct {
	ref    handle.Ref
	fns    *bindings.VCAFuncs
	policy result.Policy
}

// VCAFromNative wraps p. A zero p is rejected with an error matching
// result.ErrInvalidArgument.
func VCAFromNative(p uintptr) (VCA, error) {
	return newVCA(bindings.VCA(), p)
}

func newVCA(fns *bindings.VCAFuncs, p uintptr) (VCA, error) {
	ref, err := handle.New(p)
	if err != nil {
		return VCA{}, fmt.Errorf("studio: vca: %w", err)
	}
	return VCA{ref: ref, fns: fns}, nil
}

// Native returns the FMOD_STUDIO_VCA*.
func (v VCA) Native() uintptr { return v.ref.Pointer() }

// Equal reports whether v and o wrap the same native VCA.
func (v VCA) Equal(o VCA) bool { return v.ref.Equal(o.ref) }

// Hash is consistent with Equal.
func (v VCA) Hash() uint64 { return v.ref.Hash() }

func (v VCA) String() string { return "VCA(" + v.ref.String() + ")" }

// Suppression toggles, as on lowlevel.Channel.
func (v VCA) SuppressInvalidHandle() bool { return v.policy.SuppressInvalidHandle }
func (v *VCA) SetSuppressInvalidHandle(b bool) { v.policy.SuppressInvalidHandle = b }
func (v VCA) SuppressHandleStolen() bool { return v.policy.SuppressHandleStolen }
func (v *VCA) SetSuppressHandleStolen(b bool) { v.policy.SuppressHandleStolen = b }

// Policy returns both toggles.
func (v VCA) Policy() result.Policy { return v.policy }

// WithPolicy returns a copy of v using p.
func (v VCA) WithPolicy(p result.Policy) VCA {
	v.policy = p
	return v
}

func (v VCA) funcs() *bindings.VCAFuncs {
	if v.fns == nil {
		return bindings.VCA()
	}
	return v.fns
}

// IsValid reports whether the VCA still exists. FMOD answers this directly,
// without a result code, so no policy applies and a missing library reads
// as invalid.
func (v VCA) IsValid() bool {
	fn := v.funcs().IsValid
	if fn == nil {
		return false
	}
	return fn(v.ref.Pointer()) != 0
}

// ID returns the VCA's GUID.
func (v VCA) ID() (result.Optional[GUID], error) {
	id, err := checked.Query(v.ref.Pointer(), v.policy, "FMOD_Studio_VCA_GetID", v.funcs().GetID)
	return result.Map(id, func(g bindings.GUID) GUID { return GUID(g) }), err
}

// Path returns the VCA's path, such as "vca:/Music". It asks FMOD for the
// length first and then for the text; if either call is suppressed the
// result is None.
func (v VCA) Path() (result.Optional[string], error) {
	fn := v.funcs().GetPath
	if fn == nil {
		return result.None[string](), bindings.ErrNotLoaded
	}
	h := v.ref.Pointer()

	var size int32
	code := result.Result(fn(h, nil, 0, &size))
	ok, err := result.Check(code, "FMOD_Studio_VCA_GetPath", v.policy)
	if err != nil || !ok {
		return result.None[string](), err
	}
	if size <= 1 {
		return result.Some(""), nil
	}

	buf := make([]byte, size)
	var retrieved int32
	code = result.Result(fn(h, &buf[0], size, &retrieved))
	ok, err = result.Check(code, "FMOD_Studio_VCA_GetPath", v.policy)
	if err != nil || !ok {
		return result.None[string](), err
	}
	return result.Some(cString(buf, retrieved)), nil
}

// cString returns the text of a NUL-terminated buffer holding n bytes
// including the terminator.
func cString(buf []byte, n int32) string {
	end := min(int(n), len(buf))
	for i := 0; i < end; i++ {
		if buf[i] == 0 {
			return string(buf[:i])
		}
	}
	return string(buf[:end])
}

// Volume returns the volume level set on the VCA.
func (v VCA) Volume() (result.Optional[float32], error) {
	vol, _, err := v.volumes()
	return vol, err
}

// FinalVolume returns the volume after automation and modulation.
func (v VCA) FinalVolume() (result.Optional[float32], error) {
	_, final, err := v.volumes()
	return final, err
}

func (v VCA) volumes() (result.Optional[float32], result.Optional[float32], error) {
	fn := v.funcs().GetVolume
	if fn == nil {
		return result.None[float32](), result.None[float32](), bindings.ErrNotLoaded
	}
	var vol, final float32
	code := result.Result(fn(v.ref.Pointer(), &vol, &final))
	ok, err := result.Check(code, "FMOD_Studio_VCA_GetVolume", v.policy)
	if err != nil || !ok {
		return result.None[float32](), result.None[float32](), err
	}
	return result.Some(vol), result.Some(final), nil
}

// SetVolume sets the VCA volume level. 1 is unity gain.
func (v VCA) SetVolume(volume float32) error {
	return checked.Update(v.ref.Pointer(), v.policy, "FMOD_Studio_VCA_SetVolume", v.funcs().SetVolume, volume)
}
