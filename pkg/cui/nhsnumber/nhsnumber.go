package nhsnumber

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	cuierrors "github.com/diwise/cui/pkg/cui/errors"
	"github.com/diwise/cui/pkg/cui/format"
	"github.com/diwise/cui/pkg/cui/types"
)

// NHSNumber is a health record identifier. It is kept exactly as given,
// separators included.
//
// TODO: add validation once the rules for valid numbers are specified.
type NHSNumber string

var _ types.Formattable = NHSNumber("")

// New accepts the number as text, with or without separators, or as an integer
func New(number any) (NHSNumber, error) {
	v := reflect.ValueOf(number)

	switch v.Kind() {
	case reflect.String:
		return NHSNumber(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NHSNumber(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NHSNumber(strconv.FormatUint(v.Uint(), 10)), nil
	}

	return "", cuierrors.NewInvalidInputError(
		fmt.Sprintf("invalid value of type %T for an nhs number - must be a string or an integer", number),
	)
}

func (n NHSNumber) Render(spec string) (string, error) {
	return format.RenderText(string(n), spec)
}

func (n NHSNumber) Format(f fmt.State, verb rune) {
	format.Format(f, verb, n, string(n))
}

func (n NHSNumber) String() string {
	return string(n)
}

func (n NHSNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}
