//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"github.com/obinnaokechukwu/fmodgo/equiv"
	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
)

var (
	timeUnits = equiv.Register(equiv.Declare(
		"lowlevel.TimeUnit <-> FMOD_TIMEUNIT",
		TimeUnitMembers, bindings.TimeUnitMembers,
	))

	modes = equiv.Register(equiv.Declare(
		"lowlevel.Mode <-> FMOD_MODE",
		ModeMembers, bindings.ModeMembers,
		equiv.Flags(),
	))

	callbackTypes = equiv.Register(equiv.Declare(
		"lowlevel.CallbackType <-> FMOD_CHANNELCONTROL_CALLBACK_TYPE",
		CallbackTypeMembers, bindings.ChannelControlCallbackTypeMembers,
	))
)
