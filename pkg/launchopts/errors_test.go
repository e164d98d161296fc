package launchopts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "missing",
			err:  missingAttribute(defaultCatalog, AttrPackage),
			want: "Required attribute 'Package' is missing or empty.",
		},
		{
			name: "directory",
			err:  invalidDirectory(defaultCatalog, AttrIntermediateDirectory, "relative/path"),
			want: "The value of attribute 'IntermediateDirectory' is not a valid directory: 'relative/path'.",
		},
		{
			name: "attribute",
			err:  invalidAttribute(defaultCatalog, AttrLogcatServiceID),
			want: "Invalid value for attribute 'LogcatServiceId'.",
		},
		{
			name: "architecture",
			err:  unsupportedArchitecture(defaultCatalog, ArchARM64),
			want: "Target architecture 'ARM64' is not supported by the Android debug launcher. Supported architectures are x86 and arm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationError_HandBuiltFormatsOnDemand(t *testing.T) {
	err := &ValidationError{Kind: KindMissingAttribute, Attribute: AttrDeviceID}
	assert.Equal(t, "Required attribute 'DeviceId' is missing or empty.", err.Error())
}

func TestValidationError_Classification(t *testing.T) {
	wrapped := fmt.Errorf("launch failed: %w", invalidDirectory(defaultCatalog, AttrSDKRoot, "/nope"))

	assert.True(t, errors.Is(wrapped, ErrInvalidDirectory))
	assert.True(t, IsInvalidDirectory(wrapped))
	assert.False(t, IsMissingAttribute(wrapped))
	assert.False(t, IsInvalidAttribute(wrapped))
	assert.False(t, IsUnsupportedArchitecture(wrapped))

	verr, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, AttrSDKRoot, verr.Attribute)
	assert.Equal(t, "/nope", verr.Value)

	_, ok = AsValidationError(errors.New("plain"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "MissingAttribute", KindMissingAttribute.String())
	assert.Equal(t, "InvalidDirectory", KindInvalidDirectory.String())
	assert.Equal(t, "InvalidAttribute", KindInvalidAttribute.String())
	assert.Equal(t, "UnsupportedArchitecture", KindUnsupportedArchitecture.String())
	assert.Equal(t, "Unknown", Kind(0).String())
}

func TestWithLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{name: "english", tag: language.English, want: "Required attribute 'Package' is missing or empty."},
		{name: "german", tag: language.German, want: "Das erforderliche Attribut 'Package' fehlt oder ist leer."},
		{name: "german region", tag: language.MustParse("de-AT"), want: "Das erforderliche Attribut 'Package' fehlt oder ist leer."},
		{name: "untranslated falls back to english", tag: language.French, want: "Required attribute 'Package' is missing or empty."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(WithLanguage(tt.tag))

			_, err := v.Validate(RawAttributes{})
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestWithLanguage_GermanDirectoryMessage(t *testing.T) {
	v := NewValidator(WithLanguage(language.German))
	raw := validRaw(t)
	raw.IntermediateDirectory = "relativ/pfad"

	_, err := v.Validate(raw)
	require.Error(t, err)
	assert.Equal(t, "Der Wert des Attributs 'IntermediateDirectory' ist kein gültiges Verzeichnis: 'relativ/pfad'.", err.Error())
	assert.True(t, IsInvalidDirectory(err))
}

func TestLanguages(t *testing.T) {
	assert.Contains(t, Languages(), language.English)
	assert.Contains(t, Languages(), language.German)
}
