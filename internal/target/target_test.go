package target

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/obslog/internal/errors"
)

func TestResolvePeriodicShorthands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"daily", "/periodic/daily/"},
		{"weekly", "/periodic/weekly/"},
		{"monthly", "/periodic/monthly/"},
		{"quarterly", "/periodic/quarterly/"},
		{"yearly", "/periodic/yearly/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveShorthandIsCaseSensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Daily", "/vault/Daily"},
		{"WEEKLY", "/vault/WEEKLY"},
		{"daily ", "/vault/daily%20"},
		{"daily/", "/vault/daily/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec := Parse(tt.input)
			if spec.Kind != KindPath {
				t.Errorf("Parse(%q).Kind = %v, want KindPath", tt.input, spec.Kind)
			}
			if got := Resolve(tt.input); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePeriodic(t *testing.T) {
	spec := Parse("quarterly")
	if spec.Kind != KindPeriodic {
		t.Fatalf("Expected KindPeriodic, got %v", spec.Kind)
	}
	if spec.Period != Quarterly {
		t.Errorf("Expected period %q, got %q", Quarterly, spec.Period)
	}
}

func TestEncodePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "inbox", "/vault/inbox"},
		{"nested", "a/b", "/vault/a/b"},
		{"spaces and hash", "my notes/Idea #1", "/vault/my%20notes/Idea%20%231"},
		{"extension kept", "journal/log.md", "/vault/journal/log.md"},
		{"reserved characters", "q&a=1+2@x:y", "/vault/q%26a%3D1%2B2%40x%3Ay"},
		{"unicode", "café", "/vault/caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodePath(tt.input); got != tt.want {
				t.Errorf("EncodePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"my notes/Idea #1",
		"projects/2024 Q1/plan (draft).md",
		"日記/今日",
		"100% done",
		"a+b",
		"what?/why!",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			decoded, err := Decode(Resolve(input))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded != "/vault/"+input {
				t.Errorf("Round trip of %q gave %q", input, decoded)
			}
		})
	}
}

func TestEncodeSegmentEscapesSlash(t *testing.T) {
	encoded := EncodeSegment("a/b")
	if strings.Contains(encoded, "/") {
		t.Fatalf("EncodeSegment(%q) = %q, should not contain a raw slash", "a/b", encoded)
	}
	if encoded != "a%2Fb" {
		t.Errorf("EncodeSegment(%q) = %q, want %q", "a/b", encoded, "a%2Fb")
	}

	// Separators given by the user stay separators.
	path := EncodePath("a/b")
	if path != "/vault/a/b" {
		t.Errorf("EncodePath(%q) = %q, want %q", "a/b", path, "/vault/a/b")
	}
	if got := strings.Count(path, "/"); got != 3 {
		t.Errorf("Expected 3 slashes in %q, got %d", path, got)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != "a/b" {
		t.Errorf("Decode(%q) = %q, want %q", encoded, decoded, "a/b")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"default target", DefaultTarget, "/periodic/daily/", false},
		{"space", "/vault/my%20notes", "/vault/my notes", false},
		{"plus is literal", "/vault/a+b", "/vault/a+b", false},
		{"lowercase hex", "/vault/a%2fb", "/vault/a/b", false},
		{"truncated escape kept", "/vault/bad%2", "/vault/bad%2", false},
		{"lone percent kept", "/vault/100%", "/vault/100%", false},
		{"non hex escape kept", "/vault/%zz", "/vault/%zz", false},
		{"unicode", "/vault/caf%C3%A9", "/vault/café", false},
		{"invalid utf8", "/vault/%FF%FE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q) expected error, got %q", tt.input, got)
				}
				if !errors.Is(err, kerrors.ErrInvalidEncoding) {
					t.Errorf("Expected ErrInvalidEncoding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if w := Check("notes/today"); len(w) != 0 {
		t.Errorf("Expected no warnings, got %v", w)
	}
	if w := Check("daily"); len(w) != 0 {
		t.Errorf("Expected no warnings for shorthand, got %v", w)
	}
	if w := Check("/notes/"); len(w) != 2 {
		t.Errorf("Expected 2 warnings, got %v", w)
	}
	if w := Check("notes/"); len(w) != 1 {
		t.Errorf("Expected 1 warning, got %v", w)
	}
}
