package target

import (
	"fmt"
	"strings"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/obslog/internal/errors"
)

// Kind distinguishes periodic shorthands from free-form vault paths.
type Kind int

const (
	KindPath Kind = iota
	KindPeriodic
)

// Period is one of the periodic note classes served by the periodic route.
type Period string

const (
	Daily     Period = "daily"
	Weekly    Period = "weekly"
	Monthly   Period = "monthly"
	Quarterly Period = "quarterly"
	Yearly    Period = "yearly"
)

// Periods lists every recognised shorthand.
var Periods = []Period{Daily, Weekly, Monthly, Quarterly, Yearly}

// DefaultTarget is used when no target has ever been set.
const DefaultTarget = "/periodic/daily/"

const vaultRoot = "/vault/"

// Spec is a parsed target specification.
type Spec struct {
	Kind   Kind
	Period Period // Set when Kind is KindPeriodic.
	Path   string // Raw user input when Kind is KindPath.
}

// Parse classifies raw as a periodic shorthand or a vault path.
// Shorthands match exactly; "Daily" is a path.
func Parse(raw string) Spec {
	for _, p := range Periods {
		if raw == string(p) {
			return Spec{Kind: KindPeriodic, Period: p}
		}
	}
	return Spec{Kind: KindPath, Path: raw}
}

// Encode returns the canonical API path for the spec.
func (s Spec) Encode() string {
	switch s.Kind {
	case KindPeriodic:
		return "/periodic/" + string(s.Period) + "/"
	default:
		return EncodePath(s.Path)
	}
}

// Resolve turns a user supplied target into the path stored in settings.
func Resolve(raw string) string {
	return Parse(raw).Encode()
}

// EncodePath percent-encodes each slash separated segment of raw on its own
// and prefixes the result with the vault root.
func EncodePath(raw string) string {
	segments := strings.Split(raw, "/")
	for i, seg := range segments {
		segments[i] = EncodeSegment(seg)
	}
	return vaultRoot + strings.Join(segments, "/")
}

// EncodeSegment escapes every byte except ASCII letters, digits and -_.~
// A slash inside the segment becomes %2F.
func EncodeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

// Decode reverses percent-encoding for display. '+' is left alone, and a '%'
// that does not start a two digit hex escape is kept as is. The result must
// be valid UTF-8.
func Decode(encoded string) (string, error) {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' && i+2 < len(encoded) && isHex(encoded[i+1]) && isHex(encoded[i+2]) {
			b.WriteByte(unhex(encoded[i+1])<<4 | unhex(encoded[i+2]))
			i += 2
			continue
		}
		b.WriteByte(c)
	}

	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("decoding %q: result is not valid UTF-8: %w", encoded, kerrors.ErrInvalidEncoding)
	}
	return decoded, nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// Check reports problems with a user supplied path target. The target is
// still usable; callers only surface the warnings.
func Check(raw string) []string {
	if Parse(raw).Kind != KindPath {
		return nil
	}
	var warnings []string
	if strings.HasPrefix(raw, "/") {
		warnings = append(warnings, "target begins with a slash; paths are relative to the vault root")
	}
	if strings.HasSuffix(raw, "/") {
		warnings = append(warnings, "target ends with a slash; it will address a folder, not a note")
	}
	return warnings
}
