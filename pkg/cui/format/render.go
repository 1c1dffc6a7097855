package format

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/types"
)

// Render turns v into text according to spec.
//
// Values implementing types.Renderer render themselves. Primitive values and
// values that already know how to print themselves (fmt.Formatter, fmt.Stringer)
// pad their default text for a cui spec and fall back to general purpose
// formatting for any other spec. Anything else fails with
// ErrUnimplementedCapability.
func Render(v any, spec string) (string, error) {
	if r, ok := v.(types.Renderer); ok {
		return r.Render(spec)
	}

	if hasGeneralFormatting(v) {
		return renderGeneral(v, spec)
	}

	return "", cuierrors.NewUnimplementedCapabilityError(
		fmt.Sprintf("%T can not be rendered, cui data types must implement their own rendering", v),
	)
}

// RenderText implements the common dispatch for text based values: the raw
// text for an empty spec, padded text for a cui spec and general purpose
// string formatting for everything else.
func RenderText(text, spec string) (string, error) {
	return renderGeneral(text, spec)
}

func renderGeneral(v any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprint(v), nil
	}

	if s, ok := ParseSpec(spec); ok {
		return Pad(fmt.Sprint(v), s), nil
	}

	return Delegate(v, spec)
}

// Delegate formats v with the fmt directive "%"+spec. A directive that fmt
// can not apply to v fails with ErrInvalidInput instead of returning fmt's
// %!verb(...) error text.
func Delegate(v any, spec string) (string, error) {
	if spec == "" {
		return fmt.Sprint(v), nil
	}

	text := fmt.Sprintf("%"+spec, v)
	if strings.Contains(text, "%!") && !strings.Contains(fmt.Sprint(v), "%!") {
		return "", cuierrors.NewInvalidInputError(
			fmt.Sprintf("format spec %q can not be applied to a value of type %T", spec, v),
		)
	}

	return text, nil
}

func hasGeneralFormatting(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case fmt.Formatter, fmt.Stringer:
		return true
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}

	return false
}

// FromState rebuilds a cui spec from the flags and width of a %v directive.
// Following fmt conventions a width without the '-' flag right aligns and
// the '0' flag pads with zeros.
func FromState(f fmt.State) Spec {
	s := Spec{}

	width, hasWidth := f.Width()
	if !hasWidth {
		return s
	}

	s.Width = width

	if f.Flag('-') {
		s.Align = AlignLeft
	} else {
		s.Align = AlignRight
		if f.Flag('0') {
			s.Fill = '0'
		}
	}

	return s
}

// Format is the fmt.Formatter implementation shared by the cui value types.
//
// A bare %v prints the default text like %s and %q do. %v with a width
// renders through the cui grammar (%20v, %-20v, %020v), while
// all other verbs, including %#v and %+v, are applied to underlying. A render
// error panics, which fmt reports inline as %!v(PANIC=Format method: ...).
func Format(f fmt.State, verb rune, r types.Renderer, underlying any) {
	switch {
	case verb == 'v' && !f.Flag('#') && !f.Flag('+'):
		spec := ""
		if s := FromState(f); s != (Spec{}) {
			spec = s.String()
		}
		io.WriteString(f, mustRender(r, spec))
	case verb == 's' || verb == 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), mustRender(r, ""))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), underlying)
	}
}

func mustRender(r types.Renderer, spec string) string {
	text, err := r.Render(spec)
	if err != nil {
		panic(err)
	}
	return text
}
