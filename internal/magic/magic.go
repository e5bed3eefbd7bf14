package magic

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Magic is the leading word of a Mach-O file, read in big-endian order.
type Magic uint32

const (
	Magic32 Magic = 0xfeedface
	Magic64 Magic = 0xfeedfacf
	Cigam32 Magic = 0xcefaedfe // Magic32 with its bytes reversed
	Cigam64 Magic = 0xcffaedfe // Magic64 with its bytes reversed
)

// Read returns the first four bytes of b as a Magic. It reports false when b
// is too short to hold one.
func Read(b []byte) (Magic, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return Magic(binary.BigEndian.Uint32(b)), true
}

// IsMachO reports whether b starts with one of the four thin Mach-O magics.
func IsMachO(b []byte) bool {
	m, ok := Read(b)
	return ok && m.Valid()
}

// For returns the forward magic for a word size.
func For(is64 bool) Magic {
	if is64 {
		return Magic64
	}
	return Magic32
}

func (m Magic) Valid() bool {
	switch m {
	case Magic32, Magic64, Cigam32, Cigam64:
		return true
	default:
		return false
	}
}

func (m Magic) Is64() bool {
	return m == Magic64 || m == Cigam64
}

// Swapped reports whether m is one of the byte-reversed forms, i.e. the file
// is little-endian.
func (m Magic) Swapped() bool {
	return m == Cigam32 || m == Cigam64
}

// Reverse returns m with its bytes reversed.
func (m Magic) Reverse() Magic {
	return Magic(bits.ReverseBytes32(uint32(m)))
}

func (m Magic) String() string {
	switch m {
	case Magic32:
		return "MH_MAGIC"
	case Magic64:
		return "MH_MAGIC_64"
	case Cigam32:
		return "MH_CIGAM"
	case Cigam64:
		return "MH_CIGAM_64"
	default:
		return fmt.Sprintf("%#08x", uint32(m))
	}
}
