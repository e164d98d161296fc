package launchopts

import (
	"github.com/google/uuid"
)

// Options is a validated Android launch request. It is never modified after
// Validate returns it and may be shared between goroutines.
type Options struct {
	pkg                       string
	mode                      Mode
	sdkRoot                   string
	ndkRoot                   string
	targetArchitecture        Architecture
	intermediateDirectory     string
	additionalSOLibSearchPath string
	deviceID                  string
	logcatServiceID           uuid.UUID
}

// Package is the application package to spawn or attach to.
func (o *Options) Package() string { return o.pkg }

// Mode is the launch or attach variant of the request.
func (o *Options) Mode() Mode { return o.mode }

// IsAttach is true when attaching to a running process instead of launching.
func (o *Options) IsAttach() bool { return o.mode.IsAttach() }

// LaunchActivity is the activity to start. Empty in attach mode.
func (o *Options) LaunchActivity() string {
	if m, ok := o.mode.(LaunchMode); ok {
		return m.Activity
	}
	return ""
}

// SDKRoot is the root of the Android SDK, or "" when not given.
func (o *Options) SDKRoot() string { return o.sdkRoot }

// NDKRoot is the root of the Android NDK, or "" when not given.
func (o *Options) NDKRoot() string { return o.ndkRoot }

// TargetArchitecture is the architecture of the debugged process, X86 or ARM.
func (o *Options) TargetArchitecture() Architecture { return o.targetArchitecture }

// IntermediateDirectory is where files pulled from the device are stored.
func (o *Options) IntermediateDirectory() string { return o.intermediateDirectory }

// AdditionalSOLibSearchPath is passed through unvalidated.
func (o *Options) AdditionalSOLibSearchPath() string { return o.additionalSOLibSearchPath }

// DeviceID is the adb serial of the target device or emulator.
func (o *Options) DeviceID() string { return o.deviceID }

// LogcatServiceID identifies the logcat service of the launching project
// system, or uuid.Nil when none was given.
func (o *Options) LogcatServiceID() uuid.UUID { return o.logcatServiceID }

// Snapshot is a plain copy of Options for serialization.
type Snapshot struct {
	Package                   string       `json:"package"`
	IsAttach                  bool         `json:"isAttach"`
	LaunchActivity            string       `json:"launchActivity,omitempty"`
	SDKRoot                   string       `json:"sdkRoot,omitempty"`
	NDKRoot                   string       `json:"ndkRoot,omitempty"`
	TargetArchitecture        Architecture `json:"targetArchitecture"`
	IntermediateDirectory     string       `json:"intermediateDirectory"`
	AdditionalSOLibSearchPath string       `json:"additionalSoLibSearchPath,omitempty"`
	DeviceID                  string       `json:"deviceId"`
	LogcatServiceID           uuid.UUID    `json:"logcatServiceId"`
}

// Snapshot copies the options out. Changing the copy does not affect o.
func (o *Options) Snapshot() Snapshot {
	return Snapshot{
		Package:                   o.pkg,
		IsAttach:                  o.IsAttach(),
		LaunchActivity:            o.LaunchActivity(),
		SDKRoot:                   o.sdkRoot,
		NDKRoot:                   o.ndkRoot,
		TargetArchitecture:        o.targetArchitecture,
		IntermediateDirectory:     o.intermediateDirectory,
		AdditionalSOLibSearchPath: o.additionalSOLibSearchPath,
		DeviceID:                  o.deviceID,
		LogcatServiceID:           o.logcatServiceID,
	}
}
