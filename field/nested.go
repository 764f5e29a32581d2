package field

import (
	"context"

	valedictory "github.com/timheap/valedictory"
)

// NestedField embeds a whole validator as a field. Cleaning delegates to the
// embedded validator; any error tree it produces propagates upward unchanged
// in shape, so the outer validator attaches it under this field's name and
// multi-level nesting yields a path exactly as deep as the structure.
type NestedField struct {
	base
	validator *valedictory.Validator
}

// Nested returns a field delegating to a new instance of the given schema.
func Nested(schema *valedictory.Schema) *NestedField {
	return &NestedField{base: newBase(), validator: schema.New()}
}

// NestedValidator returns a field delegating to an existing validator
// instance. The field takes ownership of the instance.
func NestedValidator(v *valedictory.Validator) *NestedField {
	return &NestedField{base: newBase(), validator: v}
}

// Optional marks the field as not required.
func (f *NestedField) Optional() *NestedField { f.setOptional(); return f }

// Messages overrides error messages by kind for this field instance.
func (f *NestedField) Messages(m map[string]string) *NestedField { f.setMessages(m); return f }

// Validator returns this instance's embedded validator, for per-instance
// reconfiguration of its fields.
func (f *NestedField) Validator() *valedictory.Validator { return f.validator }

func (f *NestedField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "object"})
	}
	return f.validator.Clean(ctx, m)
}

func (f *NestedField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	c.validator = f.validator.Clone()
	return &c
}
