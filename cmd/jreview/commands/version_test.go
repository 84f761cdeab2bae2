package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

// TestVersionCommand tests the version command output
func TestVersionCommand(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origBuildDate := BuildDate

	Version = "1.2.3"
	Commit = "abc123def"
	BuildDate = "2025-06-01T10:00:00Z"

	defer func() {
		Version = origVersion
		Commit = origCommit
		BuildDate = origBuildDate
	}()

	tests := []struct {
		name     string
		short    bool
		json     bool
		contains []string
	}{
		{
			name: "default output",
			contains: []string{
				"jreview 1.2.3",
				"commit:     abc123def",
				"built:      2025-06-01T10:00:00Z",
				runtime.Version(),
			},
		},
		{
			name:     "short flag",
			short:    true,
			contains: []string{"1.2.3"},
		},
		{
			name: "json flag",
			json: true,
			contains: []string{
				`"version": "1.2.3"`,
				`"commit": "abc123def"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versionShort = tt.short
			versionJSON = tt.json

			buf := new(bytes.Buffer)
			versionCmd.SetOut(buf)
			defer versionCmd.SetOut(nil)

			if err := runVersion(versionCmd, nil); err != nil {
				t.Fatalf("runVersion() error = %v", err)
			}

			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}
