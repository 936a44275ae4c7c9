package rop

import (
	"reflect"
	"strings"
)

// IsNil reports whether i is nil or a typed nil of a nillable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsBlank reports whether s is empty or holds only white space.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
