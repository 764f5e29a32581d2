package field

import (
	"context"

	valedictory "github.com/timheap/valedictory"
)

// BoolField accepts exactly bool input. Strings like "true" and numbers like
// 0/1 are rejected with kind "type".
type BoolField struct {
	base
}

// Bool returns a boolean field.
func Bool() *BoolField { return &BoolField{base: newBase()} }

// Optional marks the field as not required.
func (f *BoolField) Optional() *BoolField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *BoolField) Default(v bool) *BoolField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *BoolField) Messages(m map[string]string) *BoolField { f.setMessages(m); return f }

func (f *BoolField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	b, ok := v.(bool)
	if !ok {
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "boolean"})
	}
	return b, nil
}

func (f *BoolField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}
