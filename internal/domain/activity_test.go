package domain

import (
	"reflect"
	"testing"
)

func TestParseActivityCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code         string
		wantFaculty  string
		wantMnemonic string
		wantAttrs    []string
		wantOK       bool
	}{
		{"EDGE~BUS~VOL~COM", "BUS", "VOL", []string{"COM"}, true},
		{"EDGE~UNI~MENT~COM~TW~PS", "UNI", "MENT", []string{"COM", "TW", "PS"}, true},
		{"EDGE~HLS~LAB", "", "", nil, false},
		{"EDGE~~VOL~COM", "", "", nil, false},
		{"EDGE~BUS~VOL~", "", "", nil, false},
		{"BUS~VOL~COM", "", "", nil, false},
		{"", "", "", nil, false},
	}

	for _, tt := range tests {
		faculty, mnemonic, attrs, ok := ParseActivityCode(tt.code)
		if ok != tt.wantOK {
			t.Errorf("ParseActivityCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			continue
		}
		if faculty != tt.wantFaculty || mnemonic != tt.wantMnemonic || !reflect.DeepEqual(attrs, tt.wantAttrs) {
			t.Errorf("ParseActivityCode(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.code, faculty, mnemonic, attrs, tt.wantFaculty, tt.wantMnemonic, tt.wantAttrs)
		}
	}
}

func TestActivityCode_RoundTrip(t *testing.T) {
	t.Parallel()

	codes := []string{
		"EDGE~BUS~VOL~COM",
		"EDGE~TDE~ROBO~PS~TW",
		"EDGE~UNI~MENT~COM~TW~PS~SA",
	}
	for _, code := range codes {
		faculty, mnemonic, attrs, ok := ParseActivityCode(code)
		if !ok {
			t.Fatalf("code %q should parse", code)
		}
		if got := ComposeActivityCode(faculty, mnemonic, attrs); got != code {
			t.Errorf("round trip of %q produced %q", code, got)
		}
	}
}

func TestIsPlacementUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		username string
		want     bool
	}{
		{"p1234567", true},
		{"p1", true},
		{"p", false},
		{"p12a4", false},
		{"q1234", false},
		{"P1234", false},
		{"1234", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPlacementUsername(tt.username); got != tt.want {
			t.Errorf("IsPlacementUsername(%q) = %v, want %v", tt.username, got, tt.want)
		}
	}
}
