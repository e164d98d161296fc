package launchopts

// Attribute names as they appear in launch documents.
const (
	AttrPackage                   = "Package"
	AttrAttach                    = "Attach"
	AttrLaunchActivity            = "LaunchActivity"
	AttrSDKRoot                   = "SDKRoot"
	AttrNDKRoot                   = "NDKRoot"
	AttrTargetArchitecture        = "TargetArchitecture"
	AttrIntermediateDirectory     = "IntermediateDirectory"
	AttrAdditionalSOLibSearchPath = "AdditionalSOLibSearchPath"
	AttrDeviceID                  = "DeviceId"
	AttrLogcatServiceID           = "LogcatServiceId"
)

// RawAttributes is the untrusted attribute bag deserialized from a launch
// document. Every field is optional here; required-ness is decided by Validate.
// The optional directories are pointers so an empty value can be told apart
// from an absent one.
type RawAttributes struct {
	Package                   string  `xml:"Package,attr" json:"Package,omitempty" toml:"Package,omitempty" yaml:"Package,omitempty"`
	Attach                    bool    `xml:"Attach,attr" json:"Attach,omitempty" toml:"Attach,omitempty" yaml:"Attach,omitempty"`
	LaunchActivity            string  `xml:"LaunchActivity,attr" json:"LaunchActivity,omitempty" toml:"LaunchActivity,omitempty" yaml:"LaunchActivity,omitempty"`
	SDKRoot                   *string `xml:"SDKRoot,attr" json:"SDKRoot,omitempty" toml:"SDKRoot,omitempty" yaml:"SDKRoot,omitempty"`
	NDKRoot                   *string `xml:"NDKRoot,attr" json:"NDKRoot,omitempty" toml:"NDKRoot,omitempty" yaml:"NDKRoot,omitempty"`
	TargetArchitecture        string  `xml:"TargetArchitecture,attr" json:"TargetArchitecture,omitempty" toml:"TargetArchitecture,omitempty" yaml:"TargetArchitecture,omitempty"`
	IntermediateDirectory     string  `xml:"IntermediateDirectory,attr" json:"IntermediateDirectory,omitempty" toml:"IntermediateDirectory,omitempty" yaml:"IntermediateDirectory,omitempty"`
	AdditionalSOLibSearchPath string  `xml:"AdditionalSOLibSearchPath,attr" json:"AdditionalSOLibSearchPath,omitempty" toml:"AdditionalSOLibSearchPath,omitempty" yaml:"AdditionalSOLibSearchPath,omitempty"`
	DeviceID                  string  `xml:"DeviceId,attr" json:"DeviceId,omitempty" toml:"DeviceId,omitempty" yaml:"DeviceId,omitempty"`
	LogcatServiceID           string  `xml:"LogcatServiceId,attr" json:"LogcatServiceId,omitempty" toml:"LogcatServiceId,omitempty" yaml:"LogcatServiceId,omitempty"`
}

// StringAttr returns a pointer to s, for filling optional attributes.
func StringAttr(s string) *string {
	return &s
}
