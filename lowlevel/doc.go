// Package lowlevel wraps FMOD Core channel handles.
//
// A Channel is a value holding one FMOD_CHANNEL* and a result.Policy. Every
// method makes exactly one native call (composites make one per constituent)
// and passes the FMOD_RESULT through the policy:
//
//	ch, err := lowlevel.ChannelFromNative(ptr)
//	if err != nil {
//		return err
//	}
//	ch.SetSuppressHandleStolen(true)
//
//	vol, err := ch.Volume()
//	if err != nil {
//		return err // unexpected failure
//	}
//	if v, ok := vol.Get(); ok {
//		fmt.Println("volume", v)
//	}
//
// Enumerations (TimeUnit, Mode, CallbackType) are translated to and from
// their FMOD counterparts through declared equivalences that are checked on
// first use.
package lowlevel

//go:generate go run ../cmd/fmodenum -type=TimeUnit,Mode,CallbackType
