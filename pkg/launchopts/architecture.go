package launchopts

// Architecture is a target CPU architecture as named by launch documents.
type Architecture int

// Architectures known to the debugger toolchain. ArchUnknown is the zero value.
const (
	ArchUnknown Architecture = iota
	ArchX86
	ArchARM
	ArchX64
	ArchMIPS
	ArchARM64
)

// architectureNames is the attribute-value table shared with the rest of the
// debugger toolchain. Only the listed spellings are accepted.
var architectureNames = map[string]Architecture{
	"x86":   ArchX86,
	"X86":   ArchX86,
	"arm":   ArchARM,
	"ARM":   ArchARM,
	"x64":   ArchX64,
	"X64":   ArchX64,
	"amd64": ArchX64,
	"AMD64": ArchX64,
	"mips":  ArchMIPS,
	"MIPS":  ArchMIPS,
	"arm64": ArchARM64,
	"ARM64": ArchARM64,
}

func (a Architecture) String() string {
	switch a {
	case ArchX86:
		return "X86"
	case ArchARM:
		return "ARM"
	case ArchX64:
		return "X64"
	case ArchMIPS:
		return "MIPS"
	case ArchARM64:
		return "ARM64"
	default:
		return "Unknown"
	}
}

// Supported reports whether the Android launcher can debug this architecture.
// The toolchain recognizes more than this launcher supports.
func (a Architecture) Supported() bool {
	switch a {
	case ArchX86, ArchARM:
		return true
	default:
		return false
	}
}

// MarshalText renders the architecture with its canonical name.
func (a Architecture) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ConvertArchitecture maps a TargetArchitecture attribute value to an Architecture.
func ConvertArchitecture(name string) (Architecture, error) {
	return defaultCatalog.convertArchitecture(name)
}

func (c *catalog) convertArchitecture(name string) (Architecture, error) {
	if arch, ok := architectureNames[name]; ok {
		return arch, nil
	}
	return ArchUnknown, invalidAttribute(c, AttrTargetArchitecture)
}
