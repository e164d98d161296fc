package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/provide-io/flavor/go/androidlaunch/internal/report"
	"github.com/provide-io/flavor/go/androidlaunch/pkg/launchdoc"
	"github.com/provide-io/flavor/go/androidlaunch/pkg/launchopts"
	"github.com/provide-io/flavor/go/androidlaunch/pkg/logging"
)

type flags struct {
	output      string
	format      string
	logLevel    string
	lang        string
	noColor     bool
	versionFlag bool
	deviceID    string
	attach      bool
}

// exitError carries the process exit code out of cobra.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "android-launch-validate <launch-document>...",
		Short: "Validate Android debug launch documents",
		Long: `Validate Android debug launch documents.

Each document is read (XML, JSON, TOML or YAML, chosen by extension or --format),
checked, and the resulting launch options are printed. The first invalid
document determines the exit code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.versionFlag {
				fmt.Fprintf(stdout, "android-launch-validate %s\n", version)
				fmt.Fprintf(stdout, "Built: %s\n", buildTimestamp())
				return nil
			}
			if len(args) == 0 {
				return &exitError{code: report.ExitInvalidArgs, err: errors.New("at least one launch document is required")}
			}
			return validateDocuments(cmd, f, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&f.output, "output", "o", string(report.FormatText), "Output format (text, json)")
	cmd.Flags().StringVar(&f.format, "format", "", "Document format (xml, json, toml, yaml); defaults to the file extension")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&f.lang, "lang", "en", "Language of validation messages as a BCP 47 tag (en, de)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&f.versionFlag, "version", "V", false, "Show version information")
	cmd.Flags().StringVar(&f.deviceID, "device-id", "", "Override the DeviceId attribute of every document")
	cmd.Flags().BoolVar(&f.attach, "attach", false, "Override the Attach attribute of every document")

	return cmd
}

func validateDocuments(cmd *cobra.Command, f *flags, paths []string, stdout, stderr io.Writer) error {
	if f.logLevel != "" && !logging.ValidLevel(f.logLevel) {
		return &exitError{code: report.ExitInvalidArgs, err: fmt.Errorf("unknown log level %q", f.logLevel)}
	}
	outFormat, err := report.ParseFormat(f.output)
	if err != nil {
		return &exitError{code: report.ExitInvalidArgs, err: err}
	}
	var docFormat launchdoc.Format
	if f.format != "" {
		if docFormat, err = launchdoc.ParseFormat(f.format); err != nil {
			return &exitError{code: report.ExitInvalidArgs, err: err}
		}
	}
	tag, err := language.Parse(f.lang)
	if err != nil {
		return &exitError{code: report.ExitInvalidArgs, err: fmt.Errorf("invalid --lang: %w", err)}
	}

	logger := logging.NewLogger("android-launch-validate", f.logLevel, stderr)
	validator := launchopts.NewValidator(launchopts.WithLanguage(tag))
	printer := report.NewPrinter(stdout, outFormat, f.noColor)

	var firstErr error
	for _, path := range paths {
		err := validateDocument(cmd, f, docFormat, path, validator, printer, logger)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return &exitError{code: report.ExitCode(firstErr), err: firstErr, reported: true}
	}
	return nil
}

func validateDocument(
	cmd *cobra.Command,
	f *flags,
	format launchdoc.Format,
	path string,
	validator *launchopts.Validator,
	printer *report.Printer,
	logger hclog.Logger,
) error {
	docLogger := logger.With("document", path)

	raw, err := loadDocument(path, format, docLogger)
	if err != nil {
		docLogger.Error("Failed to read launch document", "error", err)
		return reportFailure(printer, path, err)
	}

	if f.deviceID != "" {
		raw.DeviceID = f.deviceID
	}
	if cmd.Flags().Changed("attach") {
		raw.Attach = f.attach
	}

	opts, err := validator.Validate(raw)
	if err != nil {
		docLogger.Warn("Launch options rejected", "error", err)
		return reportFailure(printer, path, err)
	}

	docLogger.Info("Launch options valid", "package", opts.Package(), "attach", opts.IsAttach(),
		"architecture", opts.TargetArchitecture())
	if err := printer.Options(path, opts); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}
	return nil
}

func loadDocument(path string, format launchdoc.Format, logger hclog.Logger) (launchopts.RawAttributes, error) {
	if format == "" {
		return launchdoc.Load(path, logger)
	}
	return launchdoc.LoadFormat(path, format, logger)
}

func reportFailure(printer *report.Printer, path string, err error) error {
	if perr := printer.Error(path, err); perr != nil {
		return fmt.Errorf("failed to print result: %w", perr)
	}
	return err
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return report.ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if !exitErr.reported {
			fmt.Fprintln(stderr, "Error:", exitErr.err)
		}
		return exitErr.code
	}

	// Flag parsing and other cobra failures.
	fmt.Fprintln(stderr, "Error:", err)
	return report.ExitInvalidArgs
}
