package lowlevel

import (
	"strconv"
	"strings"
)

// Mode is a set of channel and sound behavior bits.
type Mode uint32

const (
	ModeDefault                 Mode = 0x00000000
	ModeLoopOff                 Mode = 0x00000001
	ModeLoopNormal              Mode = 0x00000002
	ModeLoopBidi                Mode = 0x00000004
	Mode2D                      Mode = 0x00000008
	Mode3D                      Mode = 0x00000010
	ModeCreateStream            Mode = 0x00000080
	ModeCreateSample            Mode = 0x00000100
	ModeCreateCompressedSample  Mode = 0x00000200
	ModeOpenUser                Mode = 0x00000400
	ModeOpenMemory              Mode = 0x00000800
	ModeOpenRaw                 Mode = 0x00001000
	ModeOpenOnly                Mode = 0x00002000
	ModeAccurateTime            Mode = 0x00004000
	ModeMPEGSearch              Mode = 0x00008000
	ModeNonBlocking             Mode = 0x00010000
	ModeUnique                  Mode = 0x00020000
	Mode3DHeadRelative          Mode = 0x00040000
	Mode3DWorldRelative         Mode = 0x00080000
	Mode3DInverseRolloff        Mode = 0x00100000
	Mode3DLinearRolloff         Mode = 0x00200000
	Mode3DLinearSquareRolloff   Mode = 0x00400000
	Mode3DInverseTaperedRolloff Mode = 0x00800000
	Mode3DCustomRolloff         Mode = 0x04000000
	Mode3DIgnoreGeometry        Mode = 0x40000000
	ModeIgnoreTags              Mode = 0x02000000
	ModeLowMem                  Mode = 0x08000000
	ModeOpenMemoryPoint         Mode = 0x10000000
	ModeVirtualPlayFromStart    Mode = 0x80000000
)

var modeNames = map[Mode]string{
	ModeLoopOff:                 "loop_off",
	ModeLoopNormal:              "loop_normal",
	ModeLoopBidi:                "loop_bidi",
	Mode2D:                      "2d",
	Mode3D:                      "3d",
	ModeCreateStream:            "createstream",
	ModeCreateSample:            "createsample",
	ModeCreateCompressedSample:  "createcompressedsample",
	ModeOpenUser:                "openuser",
	ModeOpenMemory:              "openmemory",
	ModeOpenRaw:                 "openraw",
	ModeOpenOnly:                "openonly",
	ModeAccurateTime:            "accuratetime",
	ModeMPEGSearch:              "mpegsearch",
	ModeNonBlocking:             "nonblocking",
	ModeUnique:                  "unique",
	Mode3DHeadRelative:          "3d_headrelative",
	Mode3DWorldRelative:         "3d_worldrelative",
	Mode3DInverseRolloff:        "3d_inverserolloff",
	Mode3DLinearRolloff:         "3d_linearrolloff",
	Mode3DLinearSquareRolloff:   "3d_linearsquarerolloff",
	Mode3DInverseTaperedRolloff: "3d_inversetaperedrolloff",
	Mode3DCustomRolloff:         "3d_customrolloff",
	Mode3DIgnoreGeometry:        "3d_ignoregeometry",
	ModeIgnoreTags:              "ignoretags",
	ModeLowMem:                  "lowmem",
	ModeOpenMemoryPoint:         "openmemory_point",
	ModeVirtualPlayFromStart:    "virtual_playfromstart",
}

// Has reports whether every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

// String lists the set bits of m joined by "|", lowest bit first.
func (m Mode) String() string {
	if m == ModeDefault {
		return "default"
	}
	var parts []string
	for bit := Mode(1); bit != 0; bit <<= 1 {
		if m&bit == 0 {
			continue
		}
		if name, ok := modeNames[bit]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, "0x"+strconv.FormatUint(uint64(bit), 16))
		}
	}
	return strings.Join(parts, "|")
}
