package datetime

import (
	"reflect"
	"time"
)

// inputKind is the shape of the value handed to New. Classification happens
// once, in the order the constants are checked by classify.
type inputKind int

const (
	kindUnsupported inputKind = iota
	kindProducer
	kindAbsent
	kindNumeric
	kindText
	kindTimestamp
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	timestampType = reflect.TypeFor[Timestamp]()
	errorType     = reflect.TypeFor[error]()
)

// timer is implemented by foreign types that can hand out a time.Time
type timer interface {
	Time() time.Time
}

func classify(input any) (inputKind, reflect.Value) {
	v := reflect.ValueOf(input)

	// look through non-nil pointers and interfaces unless the pointer itself
	// is a timestamp (i.e. has a pointer receiver Time method)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() && !isTimestamp(v) {
		v = v.Elem()
	}

	switch {
	case isProducer(v):
		return kindProducer, v
	case isAbsent(v):
		return kindAbsent, v
	case isNumeric(v):
		return kindNumeric, v
	case isText(v):
		return kindText, v
	case isTimestamp(v):
		return kindTimestamp, v
	}

	return kindUnsupported, v
}

func isProducer(v reflect.Value) bool {
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return false
	}

	t := v.Type()
	callableWithoutArgs := t.NumIn() == 0 || (t.NumIn() == 1 && t.IsVariadic())

	return callableWithoutArgs && t.NumOut() > 0
}

func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isText(v reflect.Value) bool {
	return v.Kind() == reflect.String
}

func isTimestamp(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}

	if v.Type() == timestampType {
		return true
	}

	if v.Kind() == reflect.Struct && v.Type().ConvertibleTo(timeType) {
		return true
	}

	if v.CanInterface() {
		_, ok := v.Interface().(timer)
		return ok
	}

	return false
}

func timeOf(v reflect.Value) time.Time {
	if v.Type() == timestampType {
		return v.Interface().(Timestamp).Time
	}

	if t, ok := v.Interface().(timer); ok {
		return t.Time()
	}

	return v.Convert(timeType).Interface().(time.Time)
}

// produce calls a producer once. A trailing non-nil error result is returned
// as is, otherwise the first result becomes the new input.
func produce(v reflect.Value) (any, error) {
	out := v.Call(nil)

	if len(out) > 1 {
		last := out[len(out)-1]
		if last.Type().Implements(errorType) && !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}

	return out[0].Interface(), nil
}
