package internal

import "reflect"

var ErrorType = reflect.TypeFor[error]()

// IsNil reports if the value is nil or a nil pointer, map,
// slice, func, channel or interface.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
