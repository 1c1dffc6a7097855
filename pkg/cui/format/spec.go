package format

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Alignment rune

const (
	AlignLeft   Alignment = '<'
	AlignRight  Alignment = '>'
	AlignCenter Alignment = '^'
)

// DefaultAlignment is used when a spec names no alignment. It matches how
// general purpose text formatting aligns strings.
const DefaultAlignment = AlignLeft

// Marker is the type character every cui format spec ends with
const Marker rune = 'v'

var specPattern = regexp.MustCompile(`(?s)^(?:(.)?([<>^]))?(\d*)v$`)

// Spec is a parsed cui format spec: [[fill]align][width]v
//
// A zero Fill means a space and a zero Align means DefaultAlignment.
type Spec struct {
	Fill  rune
	Align Alignment
	Width int
}

// ParseSpec matches spec against the shared grammar. The second return value
// is false for the empty spec and for anything that does not follow the
// grammar, in which case the caller should hand the raw spec to general
// purpose formatting instead.
func ParseSpec(spec string) (Spec, bool) {
	m := specPattern.FindStringSubmatch(spec)
	if m == nil {
		return Spec{}, false
	}

	s := Spec{}

	if m[1] != "" {
		s.Fill, _ = utf8.DecodeRuneInString(m[1])
	}

	if m[2] != "" {
		s.Align = Alignment(m[2][0])
	}

	if m[3] != "" {
		width, err := strconv.Atoi(m[3])
		if err != nil {
			return Spec{}, false
		}
		s.Width = width
	}

	return s, true
}

// String returns the spec in its textual form so that ParseSpec(s.String()) == s
// for every spec that has an explicit alignment.
func (s Spec) String() string {
	var b strings.Builder

	if s.Fill != 0 || s.Align != 0 {
		if s.Fill != 0 {
			b.WriteRune(s.Fill)
		}
		b.WriteRune(rune(s.alignment()))
	}

	if s.Width > 0 {
		b.WriteString(strconv.Itoa(s.Width))
	}

	b.WriteRune(Marker)

	return b.String()
}

func (s Spec) alignment() Alignment {
	if s.Align == 0 {
		return DefaultAlignment
	}
	return s.Align
}

func (s Spec) fill() string {
	if s.Fill == 0 {
		return " "
	}
	return string(s.Fill)
}

// Pad aligns text within s.Width characters using the fill character of s.
// Text that is already as wide as the spec is returned unchanged.
func Pad(text string, s Spec) string {
	length := utf8.RuneCountInString(text)
	if s.Width <= length {
		return text
	}

	padding := s.Width - length
	left, right := 0, 0

	switch s.alignment() {
	case AlignRight:
		left = padding
	case AlignCenter:
		left = padding / 2
		right = padding - left
	default:
		right = padding
	}

	fill := s.fill()
	return strings.Repeat(fill, left) + text + strings.Repeat(fill, right)
}
