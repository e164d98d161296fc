package launchopts

import (
	"errors"
)

var (
	// Kind sentinels, reachable through errors.Is on any *ValidationError.
	ErrMissingAttribute        = errors.New("missing attribute")
	ErrInvalidDirectory        = errors.New("invalid directory")
	ErrInvalidAttribute        = errors.New("invalid attribute")
	ErrUnsupportedArchitecture = errors.New("unsupported target architecture")
)

// Kind classifies a validation failure.
type Kind int

const (
	KindMissingAttribute Kind = iota + 1
	KindInvalidDirectory
	KindInvalidAttribute
	KindUnsupportedArchitecture
)

func (k Kind) String() string {
	switch k {
	case KindMissingAttribute:
		return "MissingAttribute"
	case KindInvalidDirectory:
		return "InvalidDirectory"
	case KindInvalidAttribute:
		return "InvalidAttribute"
	case KindUnsupportedArchitecture:
		return "UnsupportedArchitecture"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingAttribute:
		return ErrMissingAttribute
	case KindInvalidDirectory:
		return ErrInvalidDirectory
	case KindInvalidAttribute:
		return ErrInvalidAttribute
	case KindUnsupportedArchitecture:
		return ErrUnsupportedArchitecture
	default:
		return nil
	}
}

// FailureCode is the telemetry bucket a launch failure is reported under.
// The validator only tags errors with it; nothing is transmitted from here.
type FailureCode string

const (
	// FailureCodeNoReport marks user configuration mistakes that are not worth reporting.
	FailureCodeNoReport FailureCode = "NoReport"
)

// ValidationError is the single error returned when launch attributes are rejected.
type ValidationError struct {
	Kind Kind

	// Attribute is the document attribute name. Empty for UnsupportedArchitecture.
	Attribute string

	// Value is the offending value for InvalidDirectory and UnsupportedArchitecture.
	Value string

	Code FailureCode

	msg string
}

func (e *ValidationError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return defaultCatalog.format(e)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

func missingAttribute(c *catalog, name string) *ValidationError {
	return c.newError(KindMissingAttribute, name, "")
}

func invalidDirectory(c *catalog, name, value string) *ValidationError {
	return c.newError(KindInvalidDirectory, name, value)
}

func invalidAttribute(c *catalog, name string) *ValidationError {
	return c.newError(KindInvalidAttribute, name, "")
}

func unsupportedArchitecture(c *catalog, arch Architecture) *ValidationError {
	return c.newError(KindUnsupportedArchitecture, "", arch.String())
}

// IsMissingAttribute reports whether err is a missing required attribute.
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}

// IsInvalidDirectory reports whether err is a rejected directory attribute.
func IsInvalidDirectory(err error) bool {
	return errors.Is(err, ErrInvalidDirectory)
}

// IsInvalidAttribute reports whether err is a value that failed to convert.
func IsInvalidAttribute(err error) bool {
	return errors.Is(err, ErrInvalidAttribute)
}

// IsUnsupportedArchitecture reports whether err is a recognized architecture this launcher can't debug.
func IsUnsupportedArchitecture(err error) bool {
	return errors.Is(err, ErrUnsupportedArchitecture)
}

// AsValidationError extracts the *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
