package macho

import (
	"github.com/openapple/machohdr/internal/magic"
	"github.com/openapple/machohdr/pkg/macho/types"
	"github.com/pkg/errors"
)

// IsMachO reports whether b starts with a thin Mach-O magic in either byte order.
func IsMachO(b []byte) bool {
	return magic.IsMachO(b)
}

// Decode parses the Mach-O header at the start of b.
//
// The magic is read in big-endian order: MH_MAGIC/MH_MAGIC_64 mean the file is
// big-endian, their byte-reversed forms mean it is little-endian. Unknown CPU
// types and subtypes are kept as is; an unknown file type is an error.
func Decode(b []byte) (*Header, error) {
	if len(b) < HeaderSize32 {
		return nil, truncated(HeaderSize32, len(b))
	}

	m, _ := magic.Read(b)
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknownMagic, "%#08x", uint32(m))
	}

	h := &Header{
		Is64:      m.Is64(),
		ByteOrder: BigEndian,
	}
	if m.Swapped() {
		h.ByteOrder = LittleEndian
	}
	if len(b) < int(h.Size()) {
		return nil, truncated(uint64(h.Size()), len(b))
	}

	o := h.ByteOrder.Binary()
	h.CPU = types.CPU(int32(o.Uint32(b[4:])))
	h.SubCPU = types.CPUSubtype(int32(o.Uint32(b[8:])))
	h.Type = types.FileType(o.Uint32(b[12:]))
	h.NCommands = o.Uint32(b[16:])
	h.SizeCommands = o.Uint32(b[20:])
	h.Flags = types.HeaderFlag(o.Uint32(b[24:]))
	if h.Is64 {
		reserved := o.Uint32(b[28:])
		h.Reserved = &reserved
	}

	if !h.Type.Valid() {
		return nil, &InvalidFileTypeError{Value: uint32(h.Type)}
	}

	return h, nil
}
