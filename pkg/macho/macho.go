// Package macho decodes, validates and encodes the fixed-size Mach-O file header.
//
// Mach-O header data structures
// Originally at:
// http://developer.apple.com/mac/library/documentation/DeveloperTools/Conceptual/MachORuntime/Reference/reference.html (since deleted by Apple)
// Archived copy at:
// https://web.archive.org/web/20090819232456/http://developer.apple.com/documentation/DeveloperTools/Conceptual/MachORuntime/index.html
//
// Only the header is handled here. Load commands are left to the caller, who
// gets the region that holds them from Header.LoadCommands.
package macho

import (
	"encoding/binary"

	"github.com/openapple/machohdr/internal/magic"
	"github.com/openapple/machohdr/pkg/macho/types"
	"github.com/pkg/errors"
)

const (
	HeaderSize32 = 7 * 4
	HeaderSize64 = 8 * 4
)

// ByteOrder is the byte order of a Mach-O file's multi-byte fields.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Binary returns the encoding/binary order for o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "BigEndian"
	}
	return "LittleEndian"
}

// A Header is a decoded Mach-O file header. It is built by Decode and treated
// as read-only afterwards.
type Header struct {
	Is64         bool
	ByteOrder    ByteOrder
	CPU          types.CPU
	SubCPU       types.CPUSubtype
	Type         types.FileType
	NCommands    uint32
	SizeCommands uint32
	Flags        types.HeaderFlag
	Reserved     *uint32 // 64-bit headers only
}

// Size returns the encoded size of the header, which is also the offset of
// the first load command.
func (h *Header) Size() uint32 {
	if h.Is64 {
		return HeaderSize64
	}
	return HeaderSize32
}

// Magic returns the magic number written for h's word size.
func (h *Header) Magic() uint32 {
	return uint32(magic.For(h.Is64))
}

// LoadCommands returns the region of b that holds the load commands described
// by h. b must be the buffer h was decoded from. The returned slice aliases b.
func (h *Header) LoadCommands(b []byte) ([]byte, error) {
	start := uint64(h.Size())
	end := start + uint64(h.SizeCommands)
	if end > uint64(len(b)) {
		return nil, truncated(end, len(b))
	}
	return b[start:end:end], nil
}

// Validate checks the structural invariants of h. When n is not negative it is
// taken as the length of the underlying buffer and the load commands must fit in it.
func (h *Header) Validate(n int) error {
	if err := h.checkReserved(); err != nil {
		return err
	}
	if !h.Type.Valid() {
		return &InvalidFileTypeError{Value: uint32(h.Type)}
	}
	if n < 0 {
		return nil
	}
	if end := uint64(h.Size()) + uint64(h.SizeCommands); end > uint64(n) {
		return truncated(end, n)
	}
	return nil
}

func (h *Header) checkReserved() error {
	if h.Is64 != (h.Reserved != nil) {
		if h.Is64 {
			return errors.Wrap(ErrReservedMismatch, "64-bit header without reserved field")
		}
		return errors.Wrap(ErrReservedMismatch, "32-bit header with reserved field")
	}
	return nil
}
