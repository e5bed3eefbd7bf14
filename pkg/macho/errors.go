package macho

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownMagic is returned when the first four bytes are not a Mach-O magic.
	ErrUnknownMagic = errors.New("unknown mach-o magic")
	// ErrTruncated is returned when a buffer is too short for what it must hold.
	ErrTruncated = errors.New("truncated mach-o header")
	// ErrInvalidFileType matches every *InvalidFileTypeError.
	ErrInvalidFileType = errors.New("invalid mach-o file type")
	// ErrReservedMismatch is returned by Encode when Reserved is set on a
	// 32-bit header or missing from a 64-bit one.
	ErrReservedMismatch = errors.New("reserved field does not match header word size")
)

// InvalidFileTypeError reports a filetype field outside the known file types.
type InvalidFileTypeError struct {
	Value uint32
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid mach-o file type %#x", e.Value)
}

func (e *InvalidFileTypeError) Is(target error) bool {
	return target == ErrInvalidFileType
}

func truncated(need uint64, have int) error {
	return errors.Wrapf(ErrTruncated, "need %d bytes, have %d", need, have)
}
