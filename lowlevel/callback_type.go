package lowlevel

// CallbackType identifies why a channel callback fired.
type CallbackType int32

const (
	CallbackEnd          CallbackType = 0 // The channel finished playing
	CallbackVirtualVoice CallbackType = 1 // The channel became virtual or real
	CallbackSyncPoint    CallbackType = 2 // A sync point was reached; data1 is its index
	CallbackOcclusion    CallbackType = 3 // Occlusion is being computed; data1 and data2 point at the factors
)

func (t CallbackType) String() string {
	switch t {
	case CallbackEnd:
		return "end"
	case CallbackVirtualVoice:
		return "virtualvoice"
	case CallbackSyncPoint:
		return "syncpoint"
	case CallbackOcclusion:
		return "occlusion"
	default:
		return "unknown"
	}
}
