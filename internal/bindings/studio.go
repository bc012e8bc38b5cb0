//go:build !ios && !android && (amd64 || arm64)

package bindings

// VCAFuncs binds the FMOD_Studio_VCA_* API (fmod_studio.h).
type VCAFuncs struct {
	// IsValid returns an FMOD_BOOL directly, not an FMOD_RESULT.
	IsValid   func(vca uintptr) int32
	GetID     func(vca uintptr, id *GUID) int32
	GetPath   func(vca uintptr, path *byte, size int32, retrieved *int32) int32
	GetVolume func(vca uintptr, volume, finalVolume *float32) int32
	SetVolume func(vca uintptr, volume float32) int32
}

var vcaFuncs VCAFuncs

// VCA returns the process-wide FMOD_Studio_VCA_* table. Its fields are nil
// until Load finds the studio library.
func VCA() *VCAFuncs {
	return &vcaFuncs
}

func (f *VCAFuncs) register(lib uintptr) {
	registerAll(lib, []binding{
		{&f.IsValid, "FMOD_Studio_VCA_IsValid"},
		{&f.GetID, "FMOD_Studio_VCA_GetID"},
		{&f.GetPath, "FMOD_Studio_VCA_GetPath"},
		{&f.GetVolume, "FMOD_Studio_VCA_GetVolume"},
		{&f.SetVolume, "FMOD_Studio_VCA_SetVolume"},
	})
}
