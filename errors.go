//go:build !ios && !android && (amd64 || arm64)

package fmodgo

import (
	"github.com/obinnaokechukwu/fmodgo/equiv"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// FMODError is a failed FMOD call.
// It contains the raw FMOD_RESULT, its kind and the native function name.
type FMODError = result.Error

// Common errors
var (
	// ErrNotLoaded indicates the FMOD libraries are not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates no FMOD core library could be opened.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrInvalidArgument indicates a null handle or an enum value with no
	// counterpart.
	ErrInvalidArgument = result.ErrInvalidArgument

	// ErrConfiguration indicates two enumerations declared equivalent are not.
	ErrConfiguration = equiv.ErrConfiguration
)

// IsInvalidHandle returns true if err reports FMOD_ERR_INVALID_HANDLE.
func IsInvalidHandle(err error) bool {
	return result.IsInvalidHandle(err)
}

// IsHandleStolen returns true if err reports FMOD_ERR_CHANNEL_STOLEN.
func IsHandleStolen(err error) bool {
	return result.IsHandleStolen(err)
}

// ErrorCode returns the FMOD_RESULT from an error, or OK if err is not an
// FMOD error.
func ErrorCode(err error) Result {
	return result.Code(err)
}
