package lowlevel

// TimeUnit selects the unit of a position or loop point.
type TimeUnit uint32

const (
	TimeUnitMS          TimeUnit = 0x00000001 // Milliseconds
	TimeUnitPCM         TimeUnit = 0x00000002 // PCM samples
	TimeUnitPCMBytes    TimeUnit = 0x00000004 // Bytes of PCM data
	TimeUnitRawBytes    TimeUnit = 0x00000008 // Bytes of the source file
	TimeUnitPCMFraction TimeUnit = 0x00000010 // Fractional PCM samples
	TimeUnitModOrder    TimeUnit = 0x00000100 // MOD/S3M/XM/IT order
	TimeUnitModRow      TimeUnit = 0x00000200 // MOD/S3M/XM/IT row
	TimeUnitModPattern  TimeUnit = 0x00000400 // MOD/S3M/XM/IT pattern
)

// String returns a short name for u.
func (u TimeUnit) String() string {
	switch u {
	case TimeUnitMS:
		return "ms"
	case TimeUnitPCM:
		return "pcm"
	case TimeUnitPCMBytes:
		return "pcmbytes"
	case TimeUnitRawBytes:
		return "rawbytes"
	case TimeUnitPCMFraction:
		return "pcmfraction"
	case TimeUnitModOrder:
		return "modorder"
	case TimeUnitModRow:
		return "modrow"
	case TimeUnitModPattern:
		return "modpattern"
	default:
		return "unknown"
	}
}
