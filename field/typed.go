package field

import (
	"context"
	"reflect"

	valedictory "github.com/timheap/valedictory"
)

// TypedField accepts values whose dynamic type matches one of a configurable
// set, unchanged. The type set is per-instance mutable configuration, so
// clones must carry their own copy.
type TypedField struct {
	base
	typeName string
	types    []reflect.Type
}

// Typed returns a field accepting exactly the given types. typeName is used
// in the "type" error message.
func Typed(typeName string, types ...reflect.Type) *TypedField {
	return &TypedField{base: newBase(), typeName: typeName, types: types}
}

// Optional marks the field as not required.
func (f *TypedField) Optional() *TypedField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *TypedField) Default(v any) *TypedField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *TypedField) Messages(m map[string]string) *TypedField { f.setMessages(m); return f }

// SetTypes replaces the accepted types on this instance.
func (f *TypedField) SetTypes(types ...reflect.Type) { f.types = types }

// Types returns the currently accepted types.
func (f *TypedField) Types() []reflect.Type { return f.types }

func (f *TypedField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	vt := reflect.TypeOf(v)
	for _, t := range f.types {
		if vt == t {
			return v, nil
		}
	}
	return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": f.typeName})
}

func (f *TypedField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	c.types = append([]reflect.Type(nil), f.types...)
	return &c
}
