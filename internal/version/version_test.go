package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2026-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2026-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2026-01-01")
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s, want %s/%s", info.OS, info.Arch, runtime.GOOS, runtime.GOARCH)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2026-01-01")

	if s := info.String(); s != "contrib 1.0.0 (commit: abc123, built: 2026-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2026-01-01")
	s := info.FullString()

	for _, want := range []string{"contrib 1.0.0", "Commit:   abc123", "Built:    2026-01-01", "OS/Arch:"} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q:\n%s", want, s)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2026-01-01")

	out, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON() output is not valid JSON: %v", err)
	}
	if decoded["version"] != "1.0.0" {
		t.Errorf("version = %q, want %q", decoded["version"], "1.0.0")
	}
	if decoded["go_version"] == "" {
		t.Error("go_version should not be empty")
	}
}
