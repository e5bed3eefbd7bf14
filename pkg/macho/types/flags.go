package types

import (
	"fmt"
	"strings"
)

// A HeaderFlag is the Mach-O header flags bitmask.
type HeaderFlag uint32

const (
	NoUndefs                   HeaderFlag = 0x1
	IncrLink                   HeaderFlag = 0x2
	DyldLink                   HeaderFlag = 0x4
	BindAtLoad                 HeaderFlag = 0x8
	Prebound                   HeaderFlag = 0x10
	SplitSegs                  HeaderFlag = 0x20
	LazyInit                   HeaderFlag = 0x40
	TwoLevel                   HeaderFlag = 0x80
	ForceFlat                  HeaderFlag = 0x100
	NoMultiDefs                HeaderFlag = 0x200
	NoFixPrebinding            HeaderFlag = 0x400
	Prebindable                HeaderFlag = 0x800
	AllModsBound               HeaderFlag = 0x1000
	SubsectionsViaSymbols      HeaderFlag = 0x2000
	Canonical                  HeaderFlag = 0x4000
	WeakDefines                HeaderFlag = 0x8000
	BindsToWeak                HeaderFlag = 0x10000
	AllowStackExecution        HeaderFlag = 0x20000
	RootSafe                   HeaderFlag = 0x40000
	SetuidSafe                 HeaderFlag = 0x80000
	NoReexportedDylibs         HeaderFlag = 0x100000
	PIE                        HeaderFlag = 0x200000
	DeadStrippableDylib        HeaderFlag = 0x400000
	HasTLVDescriptors          HeaderFlag = 0x800000
	NoHeapExecution            HeaderFlag = 0x1000000
	AppExtensionSafe           HeaderFlag = 0x2000000
	NlistOutofsyncWithDyldinfo HeaderFlag = 0x4000000
	SimSupport                 HeaderFlag = 0x8000000
	DylibInCache               HeaderFlag = 0x80000000
)

// ordered by bit position
var flagStrings = []intName{
	{uint32(NoUndefs), "NOUNDEFS"},
	{uint32(IncrLink), "INCRLINK"},
	{uint32(DyldLink), "DYLDLINK"},
	{uint32(BindAtLoad), "BINDATLOAD"},
	{uint32(Prebound), "PREBOUND"},
	{uint32(SplitSegs), "SPLIT_SEGS"},
	{uint32(LazyInit), "LAZY_INIT"},
	{uint32(TwoLevel), "TWOLEVEL"},
	{uint32(ForceFlat), "FORCE_FLAT"},
	{uint32(NoMultiDefs), "NOMULTIDEFS"},
	{uint32(NoFixPrebinding), "NOFIXPREBINDING"},
	{uint32(Prebindable), "PREBINDABLE"},
	{uint32(AllModsBound), "ALLMODSBOUND"},
	{uint32(SubsectionsViaSymbols), "SUBSECTIONS_VIA_SYMBOLS"},
	{uint32(Canonical), "CANONICAL"},
	{uint32(WeakDefines), "WEAK_DEFINES"},
	{uint32(BindsToWeak), "BINDS_TO_WEAK"},
	{uint32(AllowStackExecution), "ALLOW_STACK_EXECUTION"},
	{uint32(RootSafe), "ROOT_SAFE"},
	{uint32(SetuidSafe), "SETUID_SAFE"},
	{uint32(NoReexportedDylibs), "NO_REEXPORTED_DYLIBS"},
	{uint32(PIE), "PIE"},
	{uint32(DeadStrippableDylib), "DEAD_STRIPPABLE_DYLIB"},
	{uint32(HasTLVDescriptors), "HAS_TLV_DESCRIPTORS"},
	{uint32(NoHeapExecution), "NO_HEAP_EXECUTION"},
	{uint32(AppExtensionSafe), "APP_EXTENSION_SAFE"},
	{uint32(NlistOutofsyncWithDyldinfo), "NLIST_OUTOFSYNC_WITH_DYLDINFO"},
	{uint32(SimSupport), "SIM_SUPPORT"},
	{uint32(DylibInCache), "DYLIB_IN_CACHE"},
}

// knownFlags is the union of every named flag bit.
var knownFlags = func() HeaderFlag {
	var m HeaderFlag
	for _, n := range flagStrings {
		m |= HeaderFlag(n.i)
	}
	return m
}()

// A Flag is a single named bit of a HeaderFlag.
type Flag struct {
	Name string
	Bit  HeaderFlag
}

// DecomposeFlags splits v into its named flags, lowest bit first, and the
// bits that no named flag covers. OR-ing every Flag.Bit with unknown yields v.
func DecomposeFlags(v uint32) (flags []Flag, unknown uint32) {
	for _, n := range flagStrings {
		if v&n.i != 0 {
			flags = append(flags, Flag{Name: n.s, Bit: HeaderFlag(n.i)})
		}
	}
	return flags, v &^ uint32(knownFlags)
}

// FlagName returns the name of a single flag bit.
func FlagName(bit uint32) (string, bool) { return lookupName(bit, flagStrings) }

// FlagValue returns the bit for a flag name, e.g. "PIE".
func FlagValue(name string) (uint32, bool) { return lookupValue(name, flagStrings) }

// Has reports whether every bit of flag is set in f.
func (f HeaderFlag) Has(flag HeaderFlag) bool {
	return flag != 0 && f&flag == flag
}

func (f HeaderFlag) PIE() bool          { return f.Has(PIE) }
func (f HeaderFlag) TwoLevel() bool     { return f.Has(TwoLevel) }
func (f HeaderFlag) DyldLink() bool     { return f.Has(DyldLink) }
func (f HeaderFlag) DylibInCache() bool { return f.Has(DylibInCache) }

// Unknown returns the set bits that have no name.
func (f HeaderFlag) Unknown() HeaderFlag {
	return f &^ knownFlags
}

// List returns the names of the set flags
func (f HeaderFlag) List() []string {
	flags, _ := DecomposeFlags(uint32(f))
	names := make([]string, 0, len(flags))
	for _, flag := range flags {
		names = append(names, flag.Name)
	}
	return names
}

func (f HeaderFlag) String() string {
	if f == 0 {
		return "none"
	}
	names := f.List()
	for u := uint32(f.Unknown()); u != 0; u &= u - 1 {
		names = append(names, fmt.Sprintf("%#x", u&-u))
	}
	return strings.Join(names, ", ")
}
