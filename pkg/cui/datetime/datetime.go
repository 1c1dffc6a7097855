package datetime

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/format"
	"github.com/diwise/cui/pkg/cui/types"
)

// TextLayout is the NHS standard date time format, e.g. 01-Jan-1970 01:20
const TextLayout string = "02-Jan-2006 15:04"

var textPattern = regexp.MustCompile(`^\d{2}-[A-Za-z]{3}-\d{4} \d{2}:\d{2}$`)

// Timestamp embeds a time.Time and renders itself using the cui format grammar.
// Its Format method implements fmt.Formatter and so hides time.Time.Format,
// use Layout to format with a Go time layout. Use New to create one from any
// of the supported shapes.
type Timestamp struct {
	time.Time
}

var _ types.Formattable = Timestamp{}

// New creates a Timestamp from initial, which can be
//
//   - nil, for the current time
//   - a number of seconds since 1970-01-01 00:00 UTC
//   - a string in the NHS standard format (e.g. 01-Jan-1970 01:20)
//   - a time.Time, a Timestamp or anything with a Time() time.Time method
//   - a function without arguments, called once to produce any of the above,
//     so that it can be used as a default
//
// Anything else fails with ErrInvalidInput, including bool values which are
// deliberately not treated as 0 or 1 seconds. Text that does not follow the
// NHS format fails with ErrFormatMismatch.
func New(initial any) (Timestamp, error) {
	kind, v := classify(initial)

	if kind == kindProducer {
		produced, err := produce(v)
		if err != nil {
			return Timestamp{}, err
		}

		kind, v = classify(produced)
		if kind == kindProducer {
			kind = kindUnsupported
		}
	}

	var t time.Time
	var err error

	switch kind {
	case kindAbsent:
		t = time.Now()
	case kindNumeric:
		t, err = fromEpoch(v)
	case kindText:
		t, err = fromText(v.String())
	case kindTimestamp:
		t = timeOf(v)
	default:
		err = cuierrors.NewInvalidInputError(fmt.Sprintf(
			"invalid value of type %T for initial argument - must be a numeric, string, calendar timestamp, producer function or nil", initial,
		))
	}

	if err != nil {
		return Timestamp{}, err
	}

	return Timestamp{Time: t}, nil
}

// MustNew is like New but panics if initial can not be turned into a Timestamp
func MustNew(initial any) Timestamp {
	ts, err := New(initial)
	if err != nil {
		panic(err)
	}
	return ts
}

func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

func fromEpoch(v reflect.Value) (time.Time, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Unix(v.Int(), 0).UTC(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		seconds := v.Uint()
		if seconds > math.MaxInt64 {
			return time.Time{}, cuierrors.NewInvalidInputError(fmt.Sprintf("timestamp %d is out of range", seconds))
		}
		return time.Unix(int64(seconds), 0).UTC(), nil
	}

	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return time.Time{}, cuierrors.NewInvalidInputError(fmt.Sprintf("timestamp %v is out of range", f))
	}

	// sub second precision is kept to the microsecond, ties go to even
	seconds := math.Floor(f)
	micros := math.RoundToEven((f - seconds) * 1e6)
	if micros >= 1e6 {
		seconds++
		micros -= 1e6
	}

	return time.Unix(int64(seconds), int64(micros)*int64(time.Microsecond)).UTC(), nil
}

func fromText(text string) (time.Time, error) {
	if !textPattern.MatchString(text) {
		return time.Time{}, cuierrors.NewFormatMismatchError(
			fmt.Sprintf("%q does not match the format DD-Mon-YYYY HH:MM", text),
		)
	}

	t, err := time.Parse(TextLayout, text)
	if err != nil {
		return time.Time{}, cuierrors.NewFormatMismatchError(
			fmt.Sprintf("%q is not a valid DD-Mon-YYYY HH:MM timestamp: %s", text, err.Error()),
		)
	}

	return t, nil
}

// Render implements types.Renderer.
//
// An empty spec gives the ISO 8601 form. A cui spec such as "*^21v" pads the
// NHS standard form (01-Jan-1970 01:20). Any other spec is used verbatim as a
// time layout, see time.Time.Format.
func (ts Timestamp) Render(spec string) (string, error) {
	if spec == "" {
		return ts.String(), nil
	}

	if s, ok := format.ParseSpec(spec); ok {
		return format.Pad(ts.Time.Format(TextLayout), s), nil
	}

	return ts.Layout(spec), nil
}

// Layout formats the timestamp with a Go time layout, see time.Time.Format
func (ts Timestamp) Layout(layout string) string {
	return ts.Time.Format(layout)
}

// Format implements fmt.Formatter. %v uses the cui grammar (%20v, %-20v),
// %s and %q print the ISO 8601 form and other verbs apply to the time.Time.
func (ts Timestamp) Format(f fmt.State, verb rune) {
	format.Format(f, verb, ts, ts.Time)
}

func (ts Timestamp) String() string {
	return ts.Time.Format(time.RFC3339Nano)
}
