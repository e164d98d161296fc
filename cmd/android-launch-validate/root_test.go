package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/flavor/go/androidlaunch/internal/report"
	"github.com/provide-io/flavor/go/androidlaunch/pkg/logging"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func launchDocument(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	return writeDocument(t, "launch.xml", `<AndroidLaunchOptions Package="com.example.app"
  LaunchActivity="MainActivity" TargetArchitecture="arm" DeviceId="emulator-5554"
  IntermediateDirectory="`+dir+`" `+extra+`/>`)
}

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(logging.EnvJSONLog, "")
	t.Setenv(logging.EnvLogLevel, "error")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ValidDocument(t *testing.T) {
	path := launchDocument(t, "")

	code, stdout, _ := runCommand(t, "--no-color", path)
	assert.Equal(t, report.ExitOK, code)
	assert.Contains(t, stdout, "launch options valid")
	assert.Contains(t, stdout, "com.example.app")
}

func TestRun_JSONOutput(t *testing.T) {
	path := launchDocument(t, `Attach="true"`)

	code, stdout, _ := runCommand(t, "-o", "json", path)
	require.Equal(t, report.ExitOK, code)

	var got struct {
		Valid   bool `json:"valid"`
		Options struct {
			IsAttach           bool   `json:"isAttach"`
			TargetArchitecture string `json:"targetArchitecture"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.True(t, got.Valid)
	assert.True(t, got.Options.IsAttach)
	assert.Equal(t, "ARM", got.Options.TargetArchitecture)
}

func TestRun_InvalidDocument(t *testing.T) {
	path := writeDocument(t, "launch.xml", `<AndroidLaunchOptions Package="com.example.app"
  LaunchActivity="MainActivity" TargetArchitecture="arm" DeviceId="emulator-5554"
  IntermediateDirectory="relative/path"/>`)

	code, stdout, _ := runCommand(t, "--no-color", path)
	assert.Equal(t, report.ExitValidationError, code)
	assert.Contains(t, stdout, "not a valid directory: 'relative/path'")
	assert.Contains(t, stdout, "kind: InvalidDirectory")
}

func TestRun_Overrides(t *testing.T) {
	path := writeDocument(t, "launch.json", `{"Package":"com.example.app","TargetArchitecture":"x86",
  "IntermediateDirectory":`+jsonString(t.TempDir())+`}`)

	code, _, _ := runCommand(t, "--no-color", path)
	assert.Equal(t, report.ExitValidationError, code)

	code, stdout, _ := runCommand(t, "--no-color", "--device-id", "emulator-5556", "--attach", path)
	assert.Equal(t, report.ExitOK, code)
	assert.Contains(t, stdout, "emulator-5556")
	assert.Contains(t, stdout, "attach")
}

func TestRun_ExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, "launch.conf", "Package: com.example.app\nAttach: true\nTargetArchitecture: x86\n"+
		"DeviceId: emulator-5554\nIntermediateDirectory: "+jsonString(dir)+"\n")

	code, _, _ := runCommand(t, "--format", "yaml", path)
	assert.Equal(t, report.ExitOK, code)

	code, _, _ = runCommand(t, path)
	assert.Equal(t, report.ExitDocumentError, code)
}

func TestRun_GermanMessages(t *testing.T) {
	path := launchDocument(t, `LogcatServiceId="not-a-guid"`)

	code, stdout, _ := runCommand(t, "--no-color", "--lang", "de", path)
	assert.Equal(t, report.ExitValidationError, code)
	assert.Contains(t, stdout, "Ungültiger Wert für das Attribut 'LogcatServiceId'.")
}

func TestRun_MissingFile(t *testing.T) {
	code, _, _ := runCommand(t, "--no-color", filepath.Join(t.TempDir(), "absent.xml"))
	assert.Equal(t, report.ExitIOError, code)
}

func TestRun_FirstFailureWins(t *testing.T) {
	good := launchDocument(t, "")
	bad := launchDocument(t, `LogcatServiceId="not-a-guid"`)

	code, stdout, _ := runCommand(t, "--no-color", bad, good)
	assert.Equal(t, report.ExitValidationError, code)
	assert.Contains(t, stdout, "Invalid value for attribute 'LogcatServiceId'.")
	assert.Contains(t, stdout, "launch options valid")
}

func TestRun_InvalidArgs(t *testing.T) {
	path := launchDocument(t, "")

	tests := []struct {
		name string
		args []string
	}{
		{"no documents", nil},
		{"bad output", []string{"-o", "xml", path}},
		{"bad format", []string{"--format", "ini", path}},
		{"bad log level", []string{"--log-level", "loud", path}},
		{"bad language", []string{"--lang", "!!", path}},
		{"unknown flag", []string{"--bogus", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCommand(t, tt.args...)
			assert.Equal(t, report.ExitInvalidArgs, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCommand(t, "--version")
	assert.Equal(t, report.ExitOK, code)
	assert.Contains(t, stdout, "android-launch-validate "+version)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
