//go:build !ios && !android && (amd64 || arm64)

package lowlevel

import (
	"sync"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/fmodgo/internal/bindings"
	"github.com/obinnaokechukwu/fmodgo/internal/checked"
	"github.com/obinnaokechukwu/fmodgo/internal/handles"
	"github.com/obinnaokechukwu/fmodgo/result"
)

// Callback receives channel notifications. The meaning of data1 and data2
// depends on kind; see CallbackType. It runs on FMOD's thread and must not
// block.
type Callback func(ch Channel, kind CallbackType, data1, data2 uintptr)

type channelCallback struct {
	channel Channel
	fn      Callback
}

var (
	trampolineOnce sync.Once
	trampoline     uintptr
)

// SetCallback installs fn as the callback of c, replacing any previous one.
// A nil fn is the same as RemoveCallback.
//
// The callback is reached through c's native user data, so SetCallback
// overwrites whatever user data c had.
func (c Channel) SetCallback(fn Callback) error {
	if fn == nil {
		return c.RemoveCallback()
	}
	f := c.funcs()
	if f.SetCallback == nil || f.SetUserData == nil || f.GetUserData == nil {
		return bindings.ErrNotLoaded
	}
	if err := c.releaseCallback(f); err != nil {
		return err
	}

	id := handles.Register(&channelCallback{channel: c, fn: fn})
	ok, err := checked.Do(c.h(), c.policy, "FMOD_Channel_SetUserData", func(h uintptr) int32 {
		return f.SetUserData(h, id)
	})
	if err == nil && ok {
		ok, err = checked.Do(c.h(), c.policy, "FMOD_Channel_SetCallback", func(h uintptr) int32 {
			return f.SetCallback(h, callbackTrampoline())
		})
	}
	if err != nil || !ok {
		handles.Unregister(id)
	}
	return err
}

// RemoveCallback uninstalls the callback of c and clears its user data.
func (c Channel) RemoveCallback() error {
	f := c.funcs()
	if f.SetCallback == nil || f.SetUserData == nil || f.GetUserData == nil {
		return bindings.ErrNotLoaded
	}
	if err := checked.Update(c.h(), c.policy, "FMOD_Channel_SetCallback", f.SetCallback, 0); err != nil {
		return err
	}
	if err := c.releaseCallback(f); err != nil {
		return err
	}
	return checked.Update(c.h(), c.policy, "FMOD_Channel_SetUserData", f.SetUserData, 0)
}

// releaseCallback forgets the callback registered through c's user data.
func (c Channel) releaseCallback(f *bindings.ChannelFuncs) error {
	id, err := checked.Query(c.h(), c.policy, "FMOD_Channel_GetUserData", f.GetUserData)
	if err != nil {
		return err
	}
	if v, ok := id.Get(); ok && v != 0 {
		if _, mine := handles.Load[*channelCallback](v); mine {
			handles.Unregister(v)
		}
	}
	return nil
}

func callbackTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampoline = purego.NewCallback(channelControlCallback)
	})
	return trampoline
}

// channelControlCallback is FMOD_CHANNELCONTROL_CALLBACK:
// FMOD_RESULT (*)(FMOD_CHANNELCONTROL *cc, FMOD_CHANNELCONTROL_TYPE type,
// FMOD_CHANNELCONTROL_CALLBACK_TYPE cbtype, void *data1, void *data2)
func channelControlCallback(cc uintptr, ccType int32, cbType int32, data1, data2 uintptr) uintptr {
	code := dispatchCallback(bindings.Channel(), cc,
		bindings.ChannelControlType(ccType), bindings.ChannelControlCallbackType(cbType), data1, data2)
	return uintptr(code)
}

func dispatchCallback(f *bindings.ChannelFuncs, cc uintptr, ccType bindings.ChannelControlType,
	cbType bindings.ChannelControlCallbackType, data1, data2 uintptr) result.Result {
	if ccType != bindings.FMOD_CHANNELCONTROL_CHANNEL || f.GetUserData == nil {
		return result.OK
	}
	var id uintptr
	if result.Result(f.GetUserData(cc, &id)) != result.OK || id == 0 {
		return result.OK
	}
	entry, ok := handles.Load[*channelCallback](id)
	if !ok {
		return result.OK
	}
	kind, err := callbackTypes.Backward(cbType)
	if err != nil {
		return result.ErrInvalidParam
	}
	entry.fn(entry.channel, kind, data1, data2)
	return result.OK
}
