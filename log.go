//go:build !ios && !android && (amd64 || arm64)

package fmodgo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/fmodgo/equiv"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/logging"
	"github.com/obinnaokechukwu/fmodgo/result"
)

//go:generate go run ./cmd/fmodenum -type=DebugFlags

// DebugFlags selects which FMOD debug messages are produced and how they are
// decorated. Only the logging builds of FMOD (see config.LoggingLibrary)
// produce any.
type DebugFlags uint32

// Debug flag constants matching FMOD's FMOD_DEBUG_* values.
const (
	DebugLevelNone          DebugFlags = 0x00000000 // Disable all messages
	DebugLevelError         DebugFlags = 0x00000001 // Errors only
	DebugLevelWarning       DebugFlags = 0x00000002 // Warnings and errors
	DebugLevelLog           DebugFlags = 0x00000004 // Informational, warnings and errors
	DebugTypeMemory         DebugFlags = 0x00000100 // Memory allocations
	DebugTypeFile           DebugFlags = 0x00000200 // File system access
	DebugTypeCodec          DebugFlags = 0x00000400 // Codec initialization
	DebugTypeTrace          DebugFlags = 0x00000800 // Internal API calls
	DebugDisplayTimestamps  DebugFlags = 0x00010000 // Prefix with a timestamp
	DebugDisplayLineNumbers DebugFlags = 0x00020000 // Prefix with source file and line
	DebugDisplayThread      DebugFlags = 0x00040000 // Prefix with the thread
)

var debugFlags = equiv.Register(equiv.Declare(
	"fmodgo.DebugFlags <-> FMOD_DEBUG_FLAGS",
	DebugFlagsMembers, bindings.DebugFlagsMembers,
	equiv.Flags(),
))

// debugFlagNames follows config.DebugFlagNames.
var debugFlagNames = map[string]DebugFlags{
	"error":       DebugLevelError,
	"warning":     DebugLevelWarning,
	"log":         DebugLevelLog,
	"memory":      DebugTypeMemory,
	"file":        DebugTypeFile,
	"codec":       DebugTypeCodec,
	"trace":       DebugTypeTrace,
	"timestamps":  DebugDisplayTimestamps,
	"linenumbers": DebugDisplayLineNumbers,
	"thread":      DebugDisplayThread,
}

// DebugFlagsFromNames combines flags named as in a config file's
// debug.flags list.
func DebugFlagsFromNames(names []string) (DebugFlags, error) {
	var flags DebugFlags
	for _, n := range names {
		f, ok := debugFlagNames[strings.ToLower(n)]
		if !ok {
			return 0, fmt.Errorf("%w: unknown debug flag %q", result.ErrInvalidArgument, n)
		}
		flags |= f
	}
	return flags, nil
}

// DebugMessage is one message from FMOD's debug output.
type DebugMessage struct {
	Flags    DebugFlags // Level and type bits of the message
	File     string
	Line     int
	Function string
	Message  string
}

// DebugCallback is called for each FMOD debug message.
type DebugCallback func(msg DebugMessage)

var (
	debugCallbackMu sync.Mutex
	debugCallback   DebugCallback
	debugCBHandle   uintptr
)

// SetDebugCallback routes FMOD debug messages selected by flags to cb.
// Pass nil to restore FMOD's default TTY output.
func SetDebugCallback(flags DebugFlags, cb DebugCallback) error {
	return setDebugCallback(bindings.Debug(), flags, cb)
}

func setDebugCallback(f *bindings.DebugFuncs, flags DebugFlags, cb DebugCallback) error {
	if f.Initialize == nil {
		return bindings.ErrNotLoaded
	}
	native, err := debugFlags.Forward(flags)
	if err != nil {
		return err
	}

	debugCallbackMu.Lock()
	defer debugCallbackMu.Unlock()

	if cb == nil {
		debugCallback = nil
		code := result.Result(f.Initialize(native, bindings.FMOD_DEBUG_MODE_TTY, 0, nil))
		return result.NewError(code, "FMOD_Debug_Initialize")
	}

	// Create a purego callback if we haven't yet
	if debugCBHandle == 0 {
		debugCBHandle = purego.NewCallback(debugCallbackTrampoline)
	}

	code := result.Result(f.Initialize(native, bindings.FMOD_DEBUG_MODE_CALLBACK, debugCBHandle, nil))
	if err := result.NewError(code, "FMOD_Debug_Initialize"); err != nil {
		return err
	}
	debugCallback = cb
	return nil
}

// RouteDebugLog forwards FMOD debug messages selected by flags to logger.
// Errors are logged at slog.LevelError, warnings at LevelWarn, log
// messages at LevelInfo and anything else at LevelDebug.
func RouteDebugLog(logger logging.Logger, flags DebugFlags) error {
	if logger == nil {
		logger = logging.New(nil)
	}
	logger = logger.With("component", "fmod")
	return SetDebugCallback(flags, func(msg DebugMessage) {
		logDebugMessage(logger, msg)
	})
}

func logDebugMessage(logger logging.Logger, msg DebugMessage) {
	args := []any{}
	if msg.File != "" {
		args = append(args, "file", msg.File, "line", msg.Line)
	}
	if msg.Function != "" {
		args = append(args, "func", msg.Function)
	}
	logger.Log(context.Background(), debugLevel(msg.Flags), msg.Message, args...)
}

func debugLevel(flags DebugFlags) slog.Level {
	switch {
	case flags&DebugLevelError != 0:
		return slog.LevelError
	case flags&DebugLevelWarning != 0:
		return slog.LevelWarn
	case flags&DebugLevelLog != 0:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// debugCallbackTrampoline is called by FMOD and forwards to the Go callback.
// Signature: FMOD_RESULT (*)(FMOD_DEBUG_FLAGS flags, const char *file,
// int line, const char *func, const char *message)
func debugCallbackTrampoline(flags uint32, file *byte, line int32, fn *byte, message *byte) uintptr {
	dispatchDebug(bindings.DebugFlags(flags), goString(file), int(line), goString(fn), goString(message))
	return uintptr(result.OK)
}

func dispatchDebug(flags bindings.DebugFlags, file string, line int, fn, message string) {
	debugCallbackMu.Lock()
	cb := debugCallback
	debugCallbackMu.Unlock()

	if cb == nil {
		return
	}

	// FMOD may set bits this package does not name; keep the known ones.
	public, err := debugFlags.Backward(flags)
	if err != nil {
		public, _ = debugFlags.Backward(flags & knownDebugBits())
	}
	cb(DebugMessage{
		Flags:    public,
		File:     file,
		Line:     line,
		Function: fn,
		Message:  strings.TrimRight(message, "\r\n"),
	})
}

func knownDebugBits() bindings.DebugFlags {
	var bits bindings.DebugFlags
	for _, m := range bindings.DebugFlagsMembers() {
		bits |= m
	}
	return bits
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	ptr := unsafe.Pointer(p)
	for i := 0; ; i++ {
		if *(*byte)(unsafe.Add(ptr, i)) == 0 {
			return string(unsafe.Slice(p, i))
		}
		if i > 4096 { // Safety limit
			return string(unsafe.Slice(p, i))
		}
	}
}
