// Package render combines a printf-style message template with its arguments.
//
// Unlike fmt.Sprintf, which embeds "%!" markers for bad directives and keeps
// going, Render checks every directive against its argument first and
// reports incompatible pairs as a *FormatError.
package render

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// FormatError reports a template that cannot be combined with its arguments.
type FormatError struct {
	Template string
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("render %q: %s", e.Template, e.Reason)
}

// Render substitutes args into template in order. With no args the template
// is returned untouched, directives included.
func Render(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}
	if reason := check(template, args); reason != "" {
		return "", &FormatError{Template: template, Reason: reason}
	}
	return fmt.Sprintf(template, args...), nil
}

// check walks the directives of template and returns a non-empty reason when
// the arguments do not line up with them.
func check(template string, args []any) string {
	next := 0
	take := func() (any, bool) {
		if next >= len(args) {
			return nil, false
		}
		a := args[next]
		next++
		return a, true
	}
	star := func() string {
		a, ok := take()
		if !ok {
			return "missing argument for *"
		}
		if a == nil || !isInt(a) {
			return fmt.Sprintf("* needs an integer, got %T", a)
		}
		return ""
	}

	end := len(template)
	for i := 0; i < end; i++ {
		if template[i] != '%' {
			continue
		}
		i++
		if i >= end {
			return "trailing %"
		}
		if template[i] == '%' {
			continue
		}
		for i < end && strings.IndexByte("+-# 0", template[i]) >= 0 {
			i++
		}
		if i < end && template[i] == '*' {
			if r := star(); r != "" {
				return r
			}
			i++
		} else {
			for i < end && isDigit(template[i]) {
				i++
			}
		}
		if i < end && template[i] == '.' {
			i++
			if i < end && template[i] == '*' {
				if r := star(); r != "" {
					return r
				}
				i++
			} else {
				for i < end && isDigit(template[i]) {
					i++
				}
			}
		}
		if i >= end {
			return "directive without verb"
		}
		if template[i] == '[' {
			return "explicit argument indexes are not supported"
		}
		verb, size := utf8.DecodeRuneInString(template[i:])
		i += size - 1
		if verb == '%' {
			continue
		}

		a, ok := take()
		if !ok {
			return fmt.Sprintf("missing argument for %%%c", verb)
		}
		if !accepts(verb, a) {
			return fmt.Sprintf("%%%c cannot format %T", verb, a)
		}
	}
	if next < len(args) {
		return fmt.Sprintf("%d unused argument(s)", len(args)-next)
	}
	return ""
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// accepts reports whether fmt would format a with verb without an error marker.
func accepts(verb rune, a any) bool {
	if verb == 'v' || verb == 'T' {
		return true
	}
	if a == nil {
		return false
	}
	if _, ok := a.(fmt.Formatter); ok {
		return true
	}
	_, isErr := a.(error)
	_, isStringer := a.(fmt.Stringer)
	textual := isErr || isStringer || isString(a) || isBytes(a)

	switch verb {
	case 's':
		return textual
	case 'q':
		return textual || isInt(a)
	case 'x', 'X':
		return textual || isInt(a) || isFloat(a)
	case 'd', 'o', 'O', 'c', 'U':
		return isInt(a)
	case 'b':
		return isInt(a) || isFloat(a)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return isFloat(a)
	case 't':
		return kindOf(a) == reflect.Bool
	case 'p':
		switch kindOf(a) {
		case reflect.Pointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
			return true
		}
	}
	return false
}

// kindOf is reflect.Invalid for a nil interface.
func kindOf(a any) reflect.Kind {
	if a == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(a).Kind()
}

func isInt(a any) bool {
	switch kindOf(a) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(a any) bool {
	switch kindOf(a) {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isString(a any) bool {
	return kindOf(a) == reflect.String
}

func isBytes(a any) bool {
	k := kindOf(a)
	return (k == reflect.Slice || k == reflect.Array) && reflect.TypeOf(a).Elem().Kind() == reflect.Uint8
}
