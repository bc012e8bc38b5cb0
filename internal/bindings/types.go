//go:build !ios && !android && (amd64 || arm64)

package bindings

//go:generate go run ../../cmd/fmodenum -type=TimeUnit,Mode,ChannelControlType,ChannelControlCallbackType,InitFlags,DebugFlags

// GUID mirrors FMOD_GUID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Bool converts b to an FMOD_BOOL.
func Bool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// TimeUnit mirrors FMOD_TIMEUNIT.
type TimeUnit uint32

const (
	FMOD_TIMEUNIT_MS          TimeUnit = 0x00000001
	FMOD_TIMEUNIT_PCM         TimeUnit = 0x00000002
	FMOD_TIMEUNIT_PCMBYTES    TimeUnit = 0x00000004
	FMOD_TIMEUNIT_RAWBYTES    TimeUnit = 0x00000008
	FMOD_TIMEUNIT_PCMFRACTION TimeUnit = 0x00000010
	FMOD_TIMEUNIT_MODORDER    TimeUnit = 0x00000100
	FMOD_TIMEUNIT_MODROW      TimeUnit = 0x00000200
	FMOD_TIMEUNIT_MODPATTERN  TimeUnit = 0x00000400
)

// Mode mirrors FMOD_MODE.
type Mode uint32

const (
	FMOD_DEFAULT                  Mode = 0x00000000
	FMOD_LOOP_OFF                 Mode = 0x00000001
	FMOD_LOOP_NORMAL              Mode = 0x00000002
	FMOD_LOOP_BIDI                Mode = 0x00000004
	FMOD_2D                       Mode = 0x00000008
	FMOD_3D                       Mode = 0x00000010
	FMOD_CREATESTREAM             Mode = 0x00000080
	FMOD_CREATESAMPLE             Mode = 0x00000100
	FMOD_CREATECOMPRESSEDSAMPLE   Mode = 0x00000200
	FMOD_OPENUSER                 Mode = 0x00000400
	FMOD_OPENMEMORY               Mode = 0x00000800
	FMOD_OPENRAW                  Mode = 0x00001000
	FMOD_OPENONLY                 Mode = 0x00002000
	FMOD_ACCURATETIME             Mode = 0x00004000
	FMOD_MPEGSEARCH               Mode = 0x00008000
	FMOD_NONBLOCKING              Mode = 0x00010000
	FMOD_UNIQUE                   Mode = 0x00020000
	FMOD_3D_HEADRELATIVE          Mode = 0x00040000
	FMOD_3D_WORLDRELATIVE         Mode = 0x00080000
	FMOD_3D_INVERSEROLLOFF        Mode = 0x00100000
	FMOD_3D_LINEARROLLOFF         Mode = 0x00200000
	FMOD_3D_LINEARSQUAREROLLOFF   Mode = 0x00400000
	FMOD_3D_INVERSETAPEREDROLLOFF Mode = 0x00800000
	FMOD_3D_CUSTOMROLLOFF         Mode = 0x04000000
	FMOD_3D_IGNOREGEOMETRY        Mode = 0x40000000
	FMOD_IGNORETAGS               Mode = 0x02000000
	FMOD_LOWMEM                   Mode = 0x08000000
	FMOD_OPENMEMORY_POINT         Mode = 0x10000000
	FMOD_VIRTUAL_PLAYFROMSTART    Mode = 0x80000000
)

// ChannelControlType mirrors FMOD_CHANNELCONTROL_TYPE.
type ChannelControlType int32

const (
	FMOD_CHANNELCONTROL_CHANNEL      ChannelControlType = 0
	FMOD_CHANNELCONTROL_CHANNELGROUP ChannelControlType = 1
)

// ChannelControlCallbackType mirrors FMOD_CHANNELCONTROL_CALLBACK_TYPE.
type ChannelControlCallbackType int32

const (
	FMOD_CHANNELCONTROL_CALLBACK_END          ChannelControlCallbackType = 0
	FMOD_CHANNELCONTROL_CALLBACK_VIRTUALVOICE ChannelControlCallbackType = 1
	FMOD_CHANNELCONTROL_CALLBACK_SYNCPOINT    ChannelControlCallbackType = 2
	FMOD_CHANNELCONTROL_CALLBACK_OCCLUSION    ChannelControlCallbackType = 3
)

// InitFlags mirrors FMOD_STUDIO_INITFLAGS.
type InitFlags uint32

const (
	FMOD_STUDIO_INIT_NORMAL                InitFlags = 0x00000000
	FMOD_STUDIO_INIT_LIVEUPDATE            InitFlags = 0x00000001
	FMOD_STUDIO_INIT_ALLOW_MISSING_PLUGINS InitFlags = 0x00000002
	FMOD_STUDIO_INIT_SYNCHRONOUS_UPDATE    InitFlags = 0x00000004
	FMOD_STUDIO_INIT_DEFERRED_CALLBACKS    InitFlags = 0x00000008
	FMOD_STUDIO_INIT_LOAD_FROM_UPDATE      InitFlags = 0x00000010
	FMOD_STUDIO_INIT_MEMORY_TRACKING       InitFlags = 0x00000020
)

// DebugFlags mirrors FMOD_DEBUG_FLAGS.
type DebugFlags uint32

const (
	FMOD_DEBUG_LEVEL_NONE          DebugFlags = 0x00000000
	FMOD_DEBUG_LEVEL_ERROR         DebugFlags = 0x00000001
	FMOD_DEBUG_LEVEL_WARNING       DebugFlags = 0x00000002
	FMOD_DEBUG_LEVEL_LOG           DebugFlags = 0x00000004
	FMOD_DEBUG_TYPE_MEMORY         DebugFlags = 0x00000100
	FMOD_DEBUG_TYPE_FILE           DebugFlags = 0x00000200
	FMOD_DEBUG_TYPE_CODEC          DebugFlags = 0x00000400
	FMOD_DEBUG_TYPE_TRACE          DebugFlags = 0x00000800
	FMOD_DEBUG_DISPLAY_TIMESTAMPS  DebugFlags = 0x00010000
	FMOD_DEBUG_DISPLAY_LINENUMBERS DebugFlags = 0x00020000
	FMOD_DEBUG_DISPLAY_THREAD      DebugFlags = 0x00040000
)

// DebugMode mirrors FMOD_DEBUG_MODE.
type DebugMode int32

const (
	FMOD_DEBUG_MODE_TTY      DebugMode = 0
	FMOD_DEBUG_MODE_FILE     DebugMode = 1
	FMOD_DEBUG_MODE_CALLBACK DebugMode = 2
)
