package macho_test

import (
	"fmt"

	"github.com/openapple/machohdr/pkg/macho"
	"github.com/openapple/machohdr/pkg/macho/types"
)

func ExampleDecode() {
	buf := []byte{
		0xce, 0xfa, 0xed, 0xfe, // MH_CIGAM: a little-endian 32-bit file
		0x07, 0x00, 0x00, 0x00, // I386
		0x03, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, // EXECUTE
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x85, 0x00, 0x00, 0x01,
	}

	h, err := macho.Decode(buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.ByteOrder, h.Is64, h.Size())
	fmt.Println(h.CPU, h.SubCPU.String(h.CPU), h.Type)
	fmt.Println(h.Flags)
	// Output:
	// LittleEndian false 28
	// I386 386 EXECUTE
	// NOUNDEFS, DYLDLINK, TWOLEVEL, NO_HEAP_EXECUTION
}

func ExampleHeader_LoadCommands() {
	h := &macho.Header{
		Is64:         true,
		ByteOrder:    macho.LittleEndian,
		CPU:          types.CPUArm64,
		Type:         types.Dylib,
		NCommands:    1,
		SizeCommands: 8,
		Reserved:     new(uint32),
	}
	hdr, _ := h.Encode()
	file := append(hdr, 0x1d, 0, 0, 0, 0x08, 0, 0, 0)

	dec, _ := macho.Decode(file)
	cmds, err := dec.LoadCommands(file)
	fmt.Println(len(cmds), err)

	_, err = dec.LoadCommands(file[:len(file)-1])
	fmt.Println(err)
	// Output:
	// 8 <nil>
	// need 40 bytes, have 39: truncated mach-o header
}
