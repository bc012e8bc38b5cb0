// Package studio wraps FMOD Studio VCA handles and the Studio init flags.
//
// The studio library is optional. When it was not found at load time every
// VCA method returns bindings.ErrNotLoaded.
package studio

//go:generate go run ../cmd/fmodenum -type=InitFlags
