package types

import "fmt"

// A CPUSubtype is a Mach-O cpu subtype. Its meaning depends on the CPU it is
// paired with, and the high byte carries capability bits.
type CPUSubtype int32

const (
	CPUSubtypeMask  uint32 = 0xff000000 // mask for feature flags
	CPUSubtypeLib64 uint32 = 0x80000000 // 64 bit libraries

	// arm64e binaries reuse the top bit to mark a versioned pointer auth ABI
	CPUSubtypePtrAuthABI uint32 = 0x80000000
)

// Generic subtypes, valid with any cpu type.
const (
	CPUSubtypeMultiple     CPUSubtype = -1
	CPUSubtypeLittleEndian CPUSubtype = 0
	CPUSubtypeBigEndian    CPUSubtype = 1
)

// VAX subtypes
const (
	CPUSubtypeVaxAll  CPUSubtype = 0
	CPUSubtypeVax780  CPUSubtype = 1
	CPUSubtypeVax785  CPUSubtype = 2
	CPUSubtypeVax750  CPUSubtype = 3
	CPUSubtypeVax730  CPUSubtype = 4
	CPUSubtypeUVaxI   CPUSubtype = 5
	CPUSubtypeUVaxII  CPUSubtype = 6
	CPUSubtypeVax8200 CPUSubtype = 7
	CPUSubtypeVax8500 CPUSubtype = 8
	CPUSubtypeVax8600 CPUSubtype = 9
	CPUSubtypeVax8650 CPUSubtype = 10
	CPUSubtypeVax8800 CPUSubtype = 11
	CPUSubtypeUVaxIII CPUSubtype = 12
)

// 680x0 subtypes. MC68030 shares its value with MC680x0All.
const (
	CPUSubtypeMC680x0All  CPUSubtype = 1
	CPUSubtypeMC68030     CPUSubtype = 1
	CPUSubtypeMC68040     CPUSubtype = 2
	CPUSubtypeMC68030Only CPUSubtype = 3
)

// Intel family/model limits.
const (
	IntelFamilyMax = 15
	IntelModelAll  = 0
)

// I386 subtypes, packed as family + (model << 4). See IntelSubtype.
const (
	CPUSubtypeI386All       CPUSubtype = 3 + (0 << 4)
	CPUSubtype386           CPUSubtype = 3 + (0 << 4)
	CPUSubtype486           CPUSubtype = 4 + (0 << 4)
	CPUSubtype486SX         CPUSubtype = 4 + (8 << 4)
	CPUSubtype586           CPUSubtype = 5 + (0 << 4)
	CPUSubtypePent          CPUSubtype = 5 + (0 << 4)
	CPUSubtypePentPro       CPUSubtype = 6 + (1 << 4)
	CPUSubtypePentIIM3      CPUSubtype = 6 + (3 << 4)
	CPUSubtypePentIIM5      CPUSubtype = 6 + (5 << 4)
	CPUSubtypeCeleron       CPUSubtype = 7 + (6 << 4)
	CPUSubtypeCeleronMobile CPUSubtype = 7 + (7 << 4)
	CPUSubtypePentium3      CPUSubtype = 8 + (0 << 4)
	CPUSubtypePentium3M     CPUSubtype = 8 + (1 << 4)
	CPUSubtypePentium3Xeon  CPUSubtype = 8 + (2 << 4)
	CPUSubtypePentiumM      CPUSubtype = 9 + (0 << 4)
	CPUSubtypePentium4      CPUSubtype = 10 + (0 << 4)
	CPUSubtypePentium4M     CPUSubtype = 10 + (1 << 4)
	CPUSubtypeItanium       CPUSubtype = 11 + (0 << 4)
	CPUSubtypeItanium2      CPUSubtype = 11 + (1 << 4)
	CPUSubtypeXeon          CPUSubtype = 12 + (0 << 4)
	CPUSubtypeXeonMP        CPUSubtype = 12 + (1 << 4)
)

// X86 subtypes
const (
	CPUSubtypeX86All   CPUSubtype = 3
	CPUSubtypeX8664All CPUSubtype = 3
	CPUSubtypeX86Arch1 CPUSubtype = 4
	CPUSubtypeX86_64H  CPUSubtype = 8 // Haswell feature subset
)

// MIPS subtypes
const (
	CPUSubtypeMipsAll    CPUSubtype = 0
	CPUSubtypeMipsR2300  CPUSubtype = 1
	CPUSubtypeMipsR2600  CPUSubtype = 2
	CPUSubtypeMipsR2800  CPUSubtype = 3
	CPUSubtypeMipsR2000a CPUSubtype = 4 // pmax
	CPUSubtypeMipsR2000  CPUSubtype = 5
	CPUSubtypeMipsR3000a CPUSubtype = 6 // 3max
	CPUSubtypeMipsR3000  CPUSubtype = 7
)

// MC98000 (PowerPC) subtypes
const (
	CPUSubtypeMC98000All CPUSubtype = 0
	CPUSubtypeMC98601    CPUSubtype = 1
)

// HPPA subtypes
const (
	CPUSubtypeHppaAll    CPUSubtype = 0
	CPUSubtypeHppa7100   CPUSubtype = 0
	CPUSubtypeHppa7100LC CPUSubtype = 1
)

// MC88000 subtypes
const (
	CPUSubtypeMC88000All CPUSubtype = 0
	CPUSubtypeMC88100    CPUSubtype = 1
	CPUSubtypeMC88110    CPUSubtype = 2
)

// SPARC and i860 subtypes
const (
	CPUSubtypeSparcAll CPUSubtype = 0
	CPUSubtypeI860All  CPUSubtype = 0
	CPUSubtypeI860860  CPUSubtype = 1
)

// PowerPC subtypes
const (
	CPUSubtypePowerPCAll   CPUSubtype = 0
	CPUSubtypePowerPC601   CPUSubtype = 1
	CPUSubtypePowerPC602   CPUSubtype = 2
	CPUSubtypePowerPC603   CPUSubtype = 3
	CPUSubtypePowerPC603e  CPUSubtype = 4
	CPUSubtypePowerPC603ev CPUSubtype = 5
	CPUSubtypePowerPC604   CPUSubtype = 6
	CPUSubtypePowerPC604e  CPUSubtype = 7
	CPUSubtypePowerPC620   CPUSubtype = 8
	CPUSubtypePowerPC750   CPUSubtype = 9
	CPUSubtypePowerPC7400  CPUSubtype = 10
	CPUSubtypePowerPC7450  CPUSubtype = 11
	CPUSubtypePowerPC970   CPUSubtype = 100
)

// ARM subtypes
const (
	CPUSubtypeArmAll    CPUSubtype = 0
	CPUSubtypeArmV4T    CPUSubtype = 5
	CPUSubtypeArmV6     CPUSubtype = 6
	CPUSubtypeArmV5Tej  CPUSubtype = 7
	CPUSubtypeArmXscale CPUSubtype = 8
	CPUSubtypeArmV7     CPUSubtype = 9
	CPUSubtypeArmV7F    CPUSubtype = 10
	CPUSubtypeArmV7S    CPUSubtype = 11
	CPUSubtypeArmV7K    CPUSubtype = 12
	CPUSubtypeArmV8     CPUSubtype = 13
	CPUSubtypeArmV6M    CPUSubtype = 14
	CPUSubtypeArmV7M    CPUSubtype = 15
	CPUSubtypeArmV7Em   CPUSubtype = 16
	CPUSubtypeArmV8M    CPUSubtype = 17
)

// ARM64 subtypes
const (
	CPUSubtypeArm64All CPUSubtype = 0
	CPUSubtypeArm64V8  CPUSubtype = 1
	CPUSubtypeArm64E   CPUSubtype = 2
)

// ARM64_32 subtypes
const (
	CPUSubtypeArm6432All CPUSubtype = 0
	CPUSubtypeArm6432V8  CPUSubtype = 1
)

var cpuSubtypeGenericStrings = []signedName{
	{int32(CPUSubtypeMultiple), "MULTIPLE"},
	{int32(CPUSubtypeLittleEndian), "LITTLE_ENDIAN"},
	{int32(CPUSubtypeBigEndian), "BIG_ENDIAN"},
}

var cpuSubtypeVaxStrings = []signedName{
	{int32(CPUSubtypeVaxAll), "VAX_ALL"},
	{int32(CPUSubtypeVax780), "VAX780"},
	{int32(CPUSubtypeVax785), "VAX785"},
	{int32(CPUSubtypeVax750), "VAX750"},
	{int32(CPUSubtypeVax730), "VAX730"},
	{int32(CPUSubtypeUVaxI), "UVAXI"},
	{int32(CPUSubtypeUVaxII), "UVAXII"},
	{int32(CPUSubtypeVax8200), "VAX8200"},
	{int32(CPUSubtypeVax8500), "VAX8500"},
	{int32(CPUSubtypeVax8600), "VAX8600"},
	{int32(CPUSubtypeVax8650), "VAX8650"},
	{int32(CPUSubtypeVax8800), "VAX8800"},
	{int32(CPUSubtypeUVaxIII), "UVAXIII"},
}

var cpuSubtypeMC680x0Strings = []signedName{
	{int32(CPUSubtypeMC680x0All), "MC680x0_ALL"},
	{int32(CPUSubtypeMC68030), "MC68030"},
	{int32(CPUSubtypeMC68040), "MC68040"},
	{int32(CPUSubtypeMC68030Only), "MC68030_ONLY"},
}

var cpuSubtypeI386Strings = []signedName{
	{int32(CPUSubtype386), "386"},
	{int32(CPUSubtypeI386All), "I386_ALL"},
	{int32(CPUSubtype486), "486"},
	{int32(CPUSubtype486SX), "486SX"},
	{int32(CPUSubtype586), "586"},
	{int32(CPUSubtypePent), "PENT"},
	{int32(CPUSubtypePentPro), "PENTPRO"},
	{int32(CPUSubtypePentIIM3), "PENTII_M3"},
	{int32(CPUSubtypePentIIM5), "PENTII_M5"},
	{int32(CPUSubtypeCeleron), "CELERON"},
	{int32(CPUSubtypeCeleronMobile), "CELERON_MOBILE"},
	{int32(CPUSubtypePentium3), "PENTIUM_3"},
	{int32(CPUSubtypePentium3M), "PENTIUM_3_M"},
	{int32(CPUSubtypePentium3Xeon), "PENTIUM_3_XEON"},
	{int32(CPUSubtypePentiumM), "PENTIUM_M"},
	{int32(CPUSubtypePentium4), "PENTIUM_4"},
	{int32(CPUSubtypePentium4M), "PENTIUM_4_M"},
	{int32(CPUSubtypeItanium), "ITANIUM"},
	{int32(CPUSubtypeItanium2), "ITANIUM_2"},
	{int32(CPUSubtypeXeon), "XEON"},
	{int32(CPUSubtypeXeonMP), "XEON_MP"},
	{int32(CPUSubtypeX86All), "X86_ALL"},
}

var cpuSubtypeX8664Strings = []signedName{
	{int32(CPUSubtypeX8664All), "X86_64_ALL"},
	{int32(CPUSubtypeX86Arch1), "X86_ARCH1"},
	{int32(CPUSubtypeX86_64H), "X86_64_H"},
}

var cpuSubtypeMipsStrings = []signedName{
	{int32(CPUSubtypeMipsAll), "MIPS_ALL"},
	{int32(CPUSubtypeMipsR2300), "MIPS_R2300"},
	{int32(CPUSubtypeMipsR2600), "MIPS_R2600"},
	{int32(CPUSubtypeMipsR2800), "MIPS_R2800"},
	{int32(CPUSubtypeMipsR2000a), "MIPS_R2000a"},
	{int32(CPUSubtypeMipsR2000), "MIPS_R2000"},
	{int32(CPUSubtypeMipsR3000a), "MIPS_R3000a"},
	{int32(CPUSubtypeMipsR3000), "MIPS_R3000"},
}

var cpuSubtypeMC98000Strings = []signedName{
	{int32(CPUSubtypeMC98000All), "MC98000_ALL"},
	{int32(CPUSubtypeMC98601), "MC98601"},
}

var cpuSubtypeHppaStrings = []signedName{
	{int32(CPUSubtypeHppaAll), "HPPA_ALL"},
	{int32(CPUSubtypeHppa7100), "HPPA_7100"},
	{int32(CPUSubtypeHppa7100LC), "HPPA_7100LC"},
}

var cpuSubtypeMC88000Strings = []signedName{
	{int32(CPUSubtypeMC88000All), "MC88000_ALL"},
	{int32(CPUSubtypeMC88100), "MC88100"},
	{int32(CPUSubtypeMC88110), "MC88110"},
}

var cpuSubtypeSparcStrings = []signedName{
	{int32(CPUSubtypeSparcAll), "SPARC_ALL"},
}

var cpuSubtypeI860Strings = []signedName{
	{int32(CPUSubtypeI860All), "I860_ALL"},
	{int32(CPUSubtypeI860860), "I860_860"},
}

var cpuSubtypePowerPCStrings = []signedName{
	{int32(CPUSubtypePowerPCAll), "POWERPC_ALL"},
	{int32(CPUSubtypePowerPC601), "POWERPC_601"},
	{int32(CPUSubtypePowerPC602), "POWERPC_602"},
	{int32(CPUSubtypePowerPC603), "POWERPC_603"},
	{int32(CPUSubtypePowerPC603e), "POWERPC_603e"},
	{int32(CPUSubtypePowerPC603ev), "POWERPC_603ev"},
	{int32(CPUSubtypePowerPC604), "POWERPC_604"},
	{int32(CPUSubtypePowerPC604e), "POWERPC_604e"},
	{int32(CPUSubtypePowerPC620), "POWERPC_620"},
	{int32(CPUSubtypePowerPC750), "POWERPC_750"},
	{int32(CPUSubtypePowerPC7400), "POWERPC_7400"},
	{int32(CPUSubtypePowerPC7450), "POWERPC_7450"},
	{int32(CPUSubtypePowerPC970), "POWERPC_970"},
}

var cpuSubtypeArmStrings = []signedName{
	{int32(CPUSubtypeArmAll), "ARM_ALL"},
	{int32(CPUSubtypeArmV4T), "ARM_V4T"},
	{int32(CPUSubtypeArmV6), "ARM_V6"},
	{int32(CPUSubtypeArmV5Tej), "ARM_V5TEJ"},
	{int32(CPUSubtypeArmXscale), "ARM_XSCALE"},
	{int32(CPUSubtypeArmV7), "ARM_V7"},
	{int32(CPUSubtypeArmV7F), "ARM_V7F"},
	{int32(CPUSubtypeArmV7S), "ARM_V7S"},
	{int32(CPUSubtypeArmV7K), "ARM_V7K"},
	{int32(CPUSubtypeArmV8), "ARM_V8"},
	{int32(CPUSubtypeArmV6M), "ARM_V6M"},
	{int32(CPUSubtypeArmV7M), "ARM_V7M"},
	{int32(CPUSubtypeArmV7Em), "ARM_V7EM"},
	{int32(CPUSubtypeArmV8M), "ARM_V8M"},
}

var cpuSubtypeArm64Strings = []signedName{
	{int32(CPUSubtypeArm64All), "ARM64_ALL"},
	{int32(CPUSubtypeArm64V8), "ARM64_V8"},
	{int32(CPUSubtypeArm64E), "ARM64E"},
}

var cpuSubtypeArm6432Strings = []signedName{
	{int32(CPUSubtypeArm6432All), "ARM64_32_ALL"},
	{int32(CPUSubtypeArm6432V8), "ARM64_32_V8"},
}

var cpuSubtypeStrings = map[CPU][]signedName{
	CPUAny:       cpuSubtypeGenericStrings,
	CPUVax:       cpuSubtypeVaxStrings,
	CPUMC680x0:   cpuSubtypeMC680x0Strings,
	CPUI386:      cpuSubtypeI386Strings,
	CPUAmd64:     cpuSubtypeX8664Strings,
	CPUMips:      cpuSubtypeMipsStrings,
	CPUMC98000:   cpuSubtypeMC98000Strings,
	CPUHppa:      cpuSubtypeHppaStrings,
	CPUArm:       cpuSubtypeArmStrings,
	CPUArm64:     cpuSubtypeArm64Strings,
	CPUArm6432:   cpuSubtypeArm6432Strings,
	CPUMC88000:   cpuSubtypeMC88000Strings,
	CPUSparc:     cpuSubtypeSparcStrings,
	CPUI860:      cpuSubtypeI860Strings,
	CPUPowerPC:   cpuSubtypePowerPCStrings,
	CPUPowerPC64: cpuSubtypePowerPCStrings,
}

// CPUSubtypeName returns the name of subtype sub under cpu type cpu. The exact
// value is tried first, then the value with its capability bits cleared.
// MULTIPLE (-1) resolves under every cpu type.
func CPUSubtypeName(cpu, sub int32) (string, bool) {
	names := cpuSubtypeStrings[CPU(cpu)]
	if s, ok := lookupSigned(sub, names); ok {
		return s, true
	}
	if bare := int32(uint32(sub) &^ CPUSubtypeMask); bare != sub {
		if s, ok := lookupSigned(bare, names); ok {
			return s, true
		}
	}
	if CPUSubtype(sub) == CPUSubtypeMultiple {
		return "MULTIPLE", true
	}
	return "", false
}

// CPUSubtypeValue is the reverse of CPUSubtypeName for the given cpu type.
func CPUSubtypeValue(cpu int32, name string) (int32, bool) {
	return lookupSignedValue(name, cpuSubtypeStrings[CPU(cpu)])
}

// IntelSubtype packs an Intel family and model into a subtype.
func IntelSubtype(family, model int32) CPUSubtype {
	return CPUSubtype(family + (model << 4))
}

// IntelFamily returns the family nibble of an Intel subtype.
func (st CPUSubtype) IntelFamily() int32 { return int32(st) & 15 }

// IntelModel returns the model of an Intel subtype.
func (st CPUSubtype) IntelModel() int32 { return int32(st) >> 4 }

// Capabilities returns the feature bits carried in the high byte.
func (st CPUSubtype) Capabilities() uint32 {
	return uint32(st) & CPUSubtypeMask
}

// Lib64 reports whether the 64-bit libraries capability bit is set.
func (st CPUSubtype) Lib64() bool {
	return st != CPUSubtypeMultiple && uint32(st)&CPUSubtypeLib64 != 0
}

// String returns the subtype name under cpu, or its value in hex when the pair is unknown.
func (st CPUSubtype) String(cpu CPU) string {
	if s, ok := CPUSubtypeName(int32(cpu), int32(st)); ok {
		return s
	}
	return fmt.Sprintf("%#x", uint32(st))
}
