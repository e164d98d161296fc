package launchopts

// Mode is either a LaunchMode or an AttachMode. The variant decides which
// attributes a document must carry.
type Mode interface {
	// RequiredAttributes lists the attributes that must be non-empty in this mode.
	RequiredAttributes() []string
	IsAttach() bool

	isMode()
}

// LaunchMode starts the package's activity under the debugger.
type LaunchMode struct {
	Activity string
}

// AttachMode connects to an already running process of the package.
type AttachMode struct{}

var baseRequired = []string{AttrPackage, AttrDeviceID, AttrIntermediateDirectory}

func (LaunchMode) RequiredAttributes() []string {
	return append(append([]string(nil), baseRequired...), AttrLaunchActivity)
}

func (LaunchMode) IsAttach() bool { return false }

func (LaunchMode) isMode() {}

func (AttachMode) RequiredAttributes() []string {
	return append([]string(nil), baseRequired...)
}

func (AttachMode) IsAttach() bool { return true }

func (AttachMode) isMode() {}

// ModeFor picks the mode variant described by raw.
func ModeFor(raw RawAttributes) Mode {
	if raw.Attach {
		return AttachMode{}
	}
	return LaunchMode{Activity: raw.LaunchActivity}
}

// stringAttribute returns the raw value of a plain string attribute by document name.
func (raw RawAttributes) stringAttribute(name string) string {
	switch name {
	case AttrPackage:
		return raw.Package
	case AttrLaunchActivity:
		return raw.LaunchActivity
	case AttrTargetArchitecture:
		return raw.TargetArchitecture
	case AttrIntermediateDirectory:
		return raw.IntermediateDirectory
	case AttrAdditionalSOLibSearchPath:
		return raw.AdditionalSOLibSearchPath
	case AttrDeviceID:
		return raw.DeviceID
	case AttrLogcatServiceID:
		return raw.LogcatServiceID
	default:
		return ""
	}
}
