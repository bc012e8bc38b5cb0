//go:build !ios && !android && (amd64 || arm64)

// Package fmodgo provides bindings to FMOD Core and FMOD Studio without CGO,
// using purego.
//
// The bindings do not manage systems, banks or events. They take native
// handles obtained elsewhere (lowlevel.ChannelFromNative,
// studio.VCAFromNative) and make calling through them safe: every FMOD_RESULT
// is checked, expected failures such as a stolen channel can be turned into
// absent values per handle, and enumerations are translated through checked
// equivalences instead of raw casts.
//
//	if err := fmodgo.Init(); err != nil {
//		log.Fatal(err)
//	}
//	ch, err := lowlevel.ChannelFromNative(ptr)
//	...
package fmodgo

import (
	"log/slog"
	"os"

	"github.com/obinnaokechukwu/fmodgo/config"
	"github.com/obinnaokechukwu/fmodgo/equiv"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/logging"
	"github.com/obinnaokechukwu/fmodgo/lowlevel"
	"github.com/obinnaokechukwu/fmodgo/result"
	"github.com/obinnaokechukwu/fmodgo/studio"
)

// Init loads the FMOD libraries with the default configuration. It is safe
// to call multiple times; only the first call loads anything.
func Init() error {
	return InitWithConfig(config.Default(), nil)
}

// InitWithConfig checks every declared enum equivalence, loads the FMOD
// libraries described by cfg, and routes FMOD debug output to logger when
// cfg.Debug names any flags. A nil logger writes text to stderr at
// cfg.LogLevel.
func InitWithConfig(cfg config.Config, logger logging.Logger) error {
	if err := equiv.ValidateAll(); err != nil {
		return err
	}
	if logger == nil {
		logger = logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	}

	err := bindings.Load(bindings.Options{
		SearchPaths: cfg.LibraryPaths,
		Logging:     cfg.LoggingLibrary,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if len(cfg.Debug.Flags) == 0 {
		return nil
	}
	flags, err := DebugFlagsFromNames(cfg.Debug.Flags)
	if err != nil {
		return err
	}
	return RouteDebugLog(logger, flags)
}

// IsLoaded returns true if the FMOD core library has been loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// HasStudio returns true if the FMOD Studio library was found as well.
func HasStudio() bool {
	return bindings.HasStudio()
}

// Re-export common types for convenience
type (
	// Channel is a playing FMOD Core voice.
	Channel = lowlevel.Channel

	// VCA is an FMOD Studio voltage-controlled amplifier.
	VCA = studio.VCA

	// Policy selects which expected failures a handle tolerates.
	Policy = result.Policy

	// Result is a raw FMOD_RESULT.
	Result = result.Result
)

// ChannelFromNative wraps an FMOD_CHANNEL*.
func ChannelFromNative(p uintptr) (Channel, error) {
	return lowlevel.ChannelFromNative(p)
}

// VCAFromNative wraps an FMOD_STUDIO_VCA*.
func VCAFromNative(p uintptr) (VCA, error) {
	return studio.VCAFromNative(p)
}
