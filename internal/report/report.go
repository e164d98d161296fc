// Package report renders validation outcomes for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/provide-io/flavor/go/androidlaunch/pkg/launchopts"
)

// Format selects how results are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format Format
	ok     *color.Color
	fail   *color.Color
	label  *color.Color
}

// NewPrinter returns a Printer writing to w. Colors are only used for text
// output and can be turned off with noColor.
func NewPrinter(w io.Writer, format Format, noColor bool) *Printer {
	p := &Printer{
		w:      w,
		format: format,
		ok:     color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		label:  color.New(color.Faint),
	}
	if noColor {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.label.DisableColor()
	}
	return p
}

type jsonResult struct {
	Valid   bool                 `json:"valid"`
	Source  string               `json:"source,omitempty"`
	Options *launchopts.Snapshot `json:"options,omitempty"`
	Error   *jsonError           `json:"error,omitempty"`
}

type jsonError struct {
	Kind      string `json:"kind"`
	Attribute string `json:"attribute,omitempty"`
	Value     string `json:"value,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
}

// Options prints validated options read from source.
func (p *Printer) Options(source string, opts *launchopts.Options) error {
	snap := opts.Snapshot()
	if p.format == FormatJSON {
		return p.writeJSON(jsonResult{Valid: true, Source: source, Options: &snap})
	}

	if _, err := p.ok.Fprintf(p.w, "✓ %s: launch options valid\n", source); err != nil {
		return err
	}

	mode := "launch " + snap.LaunchActivity
	if snap.IsAttach {
		mode = "attach"
	}
	logcat := "none"
	if snap.LogcatServiceID != uuid.Nil {
		logcat = snap.LogcatServiceID.String()
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	rows := []struct{ name, value string }{
		{"Package", snap.Package},
		{"Mode", mode},
		{"Device", snap.DeviceID},
		{"Architecture", snap.TargetArchitecture.String()},
		{"Intermediate directory", snap.IntermediateDirectory},
		{"SDK root", orNone(snap.SDKRoot)},
		{"NDK root", orNone(snap.NDKRoot)},
		{"SO lib search path", orNone(snap.AdditionalSOLibSearchPath)},
		{"Logcat service", logcat},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", p.label.Sprint(row.name+":"), row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Error prints why source was rejected. Errors that are not validation
// errors are printed with kind "Error".
func (p *Printer) Error(source string, err error) error {
	je := &jsonError{Kind: "Error", Message: err.Error()}
	if verr, ok := launchopts.AsValidationError(err); ok {
		je.Kind = verr.Kind.String()
		je.Attribute = verr.Attribute
		je.Value = verr.Value
		je.Code = string(verr.Code)
	}

	if p.format == FormatJSON {
		return p.writeJSON(jsonResult{Valid: false, Source: source, Error: je})
	}

	if _, err := p.fail.Fprintf(p.w, "✗ %s: %s\n", source, je.Message); err != nil {
		return err
	}
	if je.Kind == "Error" {
		return nil
	}
	_, werr := fmt.Fprintf(p.w, "  %s %s\n", p.label.Sprint("kind:"), je.Kind)
	return werr
}

func (p *Printer) writeJSON(v jsonResult) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
