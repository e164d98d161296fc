// Package launchdoc reads Android launch documents into raw launch attributes.
//
// A document is one AndroidLaunchOptions element in XML, or the same
// attributes as a flat object in JSON, TOML or YAML. Decoding never validates
// values; that is launchopts.Validate's job.
package launchdoc

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/flavor/go/androidlaunch/pkg/launchopts"
)

const (
	// ElementName is the XML element carrying the launch attributes.
	ElementName = "AndroidLaunchOptions"

	// Namespace is the debugger options schema namespace. Documents may omit it.
	Namespace = "http://schemas.microsoft.com/vstudio/MDDDebuggerOptions/2014"

	// MaxDocumentSize bounds how much of a document is read.
	MaxDocumentSize = 1 << 20
)

// Loader errors. Decoder errors from the format libraries are returned as is.
var (
	ErrUnknownFormat       = errors.New("unknown launch document format")
	ErrUnexpectedElement   = errors.New("unexpected root element")
	ErrDocumentTooLarge    = errors.New("launch document too large")
	ErrUnexpectedNamespace = errors.New("unexpected XML namespace")
)

// Format is a launch document encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat parses a format name such as "xml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Load reads the launch document at path. The format comes from the extension.
func Load(path string, logger hclog.Logger) (launchopts.RawAttributes, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return launchopts.RawAttributes{}, err
	}
	return LoadFormat(path, format, logger)
}

// LoadFormat reads the launch document at path in the given format.
func LoadFormat(path string, format Format, logger hclog.Logger) (launchopts.RawAttributes, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	f, err := os.Open(path)
	if err != nil {
		return launchopts.RawAttributes{}, fmt.Errorf("failed to open launch document: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Debug("Failed to close launch document", "path", path, "error", err)
		}
	}()

	logger.Debug("Reading launch document", "path", path, "format", format)
	raw, err := Decode(f, format)
	if err != nil {
		return launchopts.RawAttributes{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Trace("Decoded launch attributes", "package", raw.Package, "attach", raw.Attach, "device", raw.DeviceID)
	return raw, nil
}

// Decode reads one launch document of the given format from r.
func Decode(r io.Reader, format Format) (launchopts.RawAttributes, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return launchopts.RawAttributes{}, fmt.Errorf("failed to read launch document: %w", err)
	}
	if len(data) > MaxDocumentSize {
		return launchopts.RawAttributes{}, ErrDocumentTooLarge
	}

	var raw launchopts.RawAttributes
	switch format {
	case FormatXML:
		err = decodeXML(data, &raw)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&raw)
	case FormatTOML:
		err = decodeTOML(data, &raw)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return launchopts.RawAttributes{}, err
	}
	return raw, nil
}

type xmlDocument struct {
	XMLName xml.Name
	launchopts.RawAttributes
}

func decodeXML(data []byte, raw *launchopts.RawAttributes) error {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.XMLName.Local != ElementName {
		return fmt.Errorf("%w: <%s>, want <%s>", ErrUnexpectedElement, doc.XMLName.Local, ElementName)
	}
	if doc.XMLName.Space != "" && doc.XMLName.Space != Namespace {
		return fmt.Errorf("%w: %q", ErrUnexpectedNamespace, doc.XMLName.Space)
	}
	*raw = doc.RawAttributes
	return nil
}

func decodeTOML(data []byte, raw *launchopts.RawAttributes) error {
	md, err := toml.Decode(string(data), raw)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown attribute %q", undecoded[0].String())
	}
	return nil
}
