package macho

import (
	"fmt"
	"strings"

	"github.com/openapple/machohdr/internal/colors"
	"github.com/openapple/machohdr/internal/magic"
)

var colorField = colors.Bold().SprintFunc()
var colorValue = colors.BoldHiBlue().SprintFunc()
var colorFlags = colors.HiMagenta().SprintFunc()
var colorUnknown = colors.Faint().SprintFunc()

func (h *Header) magicString() string {
	if h.Is64 {
		return "64-bit MachO"
	}
	return "32-bit MachO"
}

func (h *Header) lines(field, value, flags, unknown func(a ...any) string) string {
	var sb strings.Builder
	row := func(name, val string) {
		fmt.Fprintf(&sb, "%s = %s\n", field(fmt.Sprintf("%-13s", name)), val)
	}
	row("Magic", value(h.magicString())+" "+unknown("("+magic.For(h.Is64).String()+", "+h.ByteOrder.String()+")"))
	row("Type", value(h.Type.String()))
	row("CPU", value(h.CPU.String())+", "+value(h.SubCPU.String(h.CPU)))
	row("Commands", fmt.Sprintf("%d (Size: %d)", h.NCommands, h.SizeCommands))
	fl := strings.Join(h.Flags.List(), ", ")
	if fl == "" {
		fl = "none"
	}
	fl = flags(fl)
	if u := h.Flags.Unknown(); u != 0 {
		fl += " " + unknown(fmt.Sprintf("(unknown bits %#x)", uint32(u)))
	}
	row("Flags", fl)
	return sb.String()
}

func (h *Header) String() string {
	return h.lines(fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint)
}

// ColorString is String with colored labels and values. Color is dropped when
// stdout is not a terminal or colors.Init turned it off.
func (h *Header) ColorString() string {
	return h.lines(colorField, colorValue, colorFlags, colorUnknown)
}
