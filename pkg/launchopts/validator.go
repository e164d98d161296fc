// Package launchopts turns the attributes of an Android debug launch document
// into validated launch options.
//
// Validation is a single synchronous pass. The first failing rule stops it and
// its *ValidationError is returned; no partially filled Options ever escapes.
// The only side effects are directory existence checks on the local filesystem.
package launchopts

import (
	"golang.org/x/text/language"
)

// Validator validates launch attributes. The zero value is not usable; use
// NewValidator. A Validator holds no mutable state and is safe for concurrent use.
type Validator struct {
	probe   DirectoryProbe
	catalog *catalog
}

// Option configures a Validator.
type Option func(*Validator)

// WithProbe replaces the host filesystem probe.
func WithProbe(probe DirectoryProbe) Option {
	return func(v *Validator) {
		v.probe = probe
	}
}

// WithLanguage selects the language of error messages.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.catalog = newCatalog(tag)
	}
}

// NewValidator returns a Validator that checks directories on the host and
// reports errors in English unless opts say otherwise.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		probe:   HostProbe{},
		catalog: defaultCatalog,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate checks raw against the host filesystem with English messages.
func Validate(raw RawAttributes) (*Options, error) {
	return defaultValidator.Validate(raw)
}

// Validate checks raw and builds Options from it. On failure the error is
// always a *ValidationError.
func (v *Validator) Validate(raw RawAttributes) (*Options, error) {
	mode := ModeFor(raw)

	for _, name := range mode.RequiredAttributes() {
		if err := v.catalog.checkAttribute(name, raw.stringAttribute(name), "required"); err != nil {
			return nil, err
		}
	}

	sdkRoot, err := v.optionalDirectory(raw.SDKRoot, AttrSDKRoot)
	if err != nil {
		return nil, err
	}
	ndkRoot, err := v.optionalDirectory(raw.NDKRoot, AttrNDKRoot)
	if err != nil {
		return nil, err
	}
	intermediateDir, err := v.requiredDirectory(raw.IntermediateDirectory, AttrIntermediateDirectory)
	if err != nil {
		return nil, err
	}

	arch, err := v.catalog.convertArchitecture(raw.TargetArchitecture)
	if err != nil {
		return nil, err
	}

	logcatServiceID, err := v.catalog.logcatServiceID(raw.LogcatServiceID)
	if err != nil {
		return nil, err
	}

	opts := &Options{
		pkg:                       raw.Package,
		mode:                      mode,
		sdkRoot:                   sdkRoot,
		ndkRoot:                   ndkRoot,
		targetArchitecture:        arch,
		intermediateDirectory:     intermediateDir,
		additionalSOLibSearchPath: raw.AdditionalSOLibSearchPath,
		deviceID:                  raw.DeviceID,
		logcatServiceID:           logcatServiceID,
	}

	// Structurally valid but unsupported configurations are reported last.
	if !arch.Supported() {
		return nil, unsupportedArchitecture(v.catalog, arch)
	}

	return opts, nil
}

// optionalDirectory leaves an absent attribute unset. A present attribute,
// even an empty one, must name a valid directory.
func (v *Validator) optionalDirectory(value *string, attribute string) (string, error) {
	if value == nil {
		return "", nil
	}
	if !validDirectory(v.probe, *value) {
		return "", invalidDirectory(v.catalog, attribute, *value)
	}
	return *value, nil
}

func (v *Validator) requiredDirectory(value, attribute string) (string, error) {
	if err := v.catalog.checkAttribute(attribute, value, "required"); err != nil {
		return "", err
	}
	if !validDirectory(v.probe, value) {
		return "", invalidDirectory(v.catalog, attribute, value)
	}
	return value, nil
}
