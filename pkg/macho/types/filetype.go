package types

// A FileType is the Mach-O file type, e.g. an object file, executable, or dynamic library.
type FileType uint32

const (
	Object     FileType = 0x1
	Execute    FileType = 0x2
	FVMLib     FileType = 0x3 /* fixed VM shared library */
	Core       FileType = 0x4
	Preload    FileType = 0x5 /* preloaded executable file */
	Dylib      FileType = 0x6 /* dynamically bound shared library */
	Dylinker   FileType = 0x7 /* dynamic link editor */
	Bundle     FileType = 0x8
	DylibStub  FileType = 0x9 /* shared library stub for static linking only */
	Dsym       FileType = 0xa /* companion file with only debug sections */
	KextBundle FileType = 0xb /* x86_64 kexts */
	FileSet    FileType = 0xc /* kernel cache fileset */
)

var fileTypeStrings = []intName{
	{uint32(Object), "OBJECT"},
	{uint32(Execute), "EXECUTE"},
	{uint32(FVMLib), "FVMLIB"},
	{uint32(Core), "CORE"},
	{uint32(Preload), "PRELOAD"},
	{uint32(Dylib), "DYLIB"},
	{uint32(Dylinker), "DYLINKER"},
	{uint32(Bundle), "BUNDLE"},
	{uint32(DylibStub), "DYLIB_STUB"},
	{uint32(Dsym), "DSYM"},
	{uint32(KextBundle), "KEXT_BUNDLE"},
	{uint32(FileSet), "FILESET"},
}

// FileTypeName returns the name of a file type value.
func FileTypeName(v uint32) (string, bool) { return lookupName(v, fileTypeStrings) }

// FileTypeValue is the reverse of FileTypeName.
func FileTypeValue(name string) (uint32, bool) { return lookupValue(name, fileTypeStrings) }

// Valid reports whether t is one of the defined file types.
func (t FileType) Valid() bool {
	_, ok := lookupName(uint32(t), fileTypeStrings)
	return ok
}

func (t FileType) String() string   { return stringName(uint32(t), fileTypeStrings, false) }
func (t FileType) GoString() string { return stringName(uint32(t), fileTypeStrings, true) }
