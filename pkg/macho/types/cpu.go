package types

// A CPU is a Mach-O cpu type. It is signed; CPUAny is -1.
type CPU int32

const (
	cpuArchMask = 0xff000000 // mask for architecture bits
	cpuArch64   = 0x01000000 // 64 bit ABI
	cpuArch6432 = 0x02000000 // ABI for 64-bit hardware with 32-bit types; LP32
)

const (
	CPUAny       CPU = -1
	CPUVax       CPU = 1
	CPUMC680x0   CPU = 6
	CPUX86       CPU = 7
	CPUI386      CPU = CPUX86
	CPUAmd64     CPU = CPUX86 | cpuArch64
	CPUMips      CPU = 8
	CPUMC98000   CPU = 10
	CPUHppa      CPU = 11
	CPUArm       CPU = 12
	CPUArm64     CPU = CPUArm | cpuArch64
	CPUArm6432   CPU = CPUArm | cpuArch6432
	CPUMC88000   CPU = 13
	CPUSparc     CPU = 14
	CPUI860      CPU = 15
	CPUAlpha     CPU = 16
	CPUPowerPC   CPU = 18
	CPUPowerPC64 CPU = CPUPowerPC | cpuArch64
)

var cpuStrings = []signedName{
	{int32(CPUAny), "ANY"},
	{int32(CPUVax), "VAX"},
	{int32(CPUMC680x0), "MC680x0"},
	{int32(CPUI386), "I386"},
	{int32(CPUAmd64), "X86_64"},
	{int32(CPUMips), "MIPS"},
	{int32(CPUMC98000), "MC98000"},
	{int32(CPUHppa), "HPPA"},
	{int32(CPUArm), "ARM"},
	{int32(CPUArm64), "ARM64"},
	{int32(CPUArm6432), "ARM64_32"},
	{int32(CPUMC88000), "MC88000"},
	{int32(CPUSparc), "SPARC"},
	{int32(CPUI860), "I860"},
	{int32(CPUAlpha), "ALPHA"},
	{int32(CPUPowerPC), "POWERPC"},
	{int32(CPUPowerPC64), "POWERPC64"},
}

// CPUName returns the name of a cpu type, e.g. "I386" for 7.
func CPUName(v int32) (string, bool) { return lookupSigned(v, cpuStrings) }

// CPUValue is the reverse of CPUName. "X86" is accepted as an alias of "I386".
func CPUValue(name string) (int32, bool) {
	if name == "X86" {
		return int32(CPUX86), true
	}
	return lookupSignedValue(name, cpuStrings)
}

// Is64 reports whether the cpu type carries the 64-bit ABI bit.
func (c CPU) Is64() bool {
	return c != CPUAny && c&cpuArch64 != 0
}

// Family returns the cpu type without its ABI bits.
func (c CPU) Family() CPU {
	if c == CPUAny {
		return c
	}
	return CPU(uint32(c) &^ cpuArchMask)
}

func (c CPU) String() string {
	if s, ok := CPUName(int32(c)); ok {
		return s
	}
	return signedString(int32(c))
}
