package field

import (
	"context"

	valedictory "github.com/timheap/valedictory"
)

// AnyField accepts any present value unchanged. It carries only the shared
// required/default semantics and is the building block other leaves extend.
type AnyField struct {
	base
}

// Any returns a pass-through field.
func Any() *AnyField { return &AnyField{base: newBase()} }

// Optional marks the field as not required.
func (f *AnyField) Optional() *AnyField { f.setOptional(); return f }

// Default sets the value used when input is absent. The field must be
// Optional first.
func (f *AnyField) Default(v any) *AnyField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *AnyField) Messages(m map[string]string) *AnyField { f.setMessages(m); return f }

func (f *AnyField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	return v, nil
}

func (f *AnyField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}
