package field

import (
	"context"
	"strconv"
	"unicode/utf8"

	valedictory "github.com/timheap/valedictory"
)

// StringField validates string input with optional length bounds. The empty
// string counts as missing content: a required field rejects it with kind
// "required", an optional one accepts it unchanged.
type StringField struct {
	base
	minLen int
	maxLen int
}

// String returns a string field with no length bounds.
func String() *StringField {
	return &StringField{base: newBase(), minLen: -1, maxLen: -1}
}

// Optional marks the field as not required.
func (f *StringField) Optional() *StringField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *StringField) Default(v string) *StringField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *StringField) Messages(m map[string]string) *StringField { f.setMessages(m); return f }

// MinLength sets the inclusive minimum length in runes.
func (f *StringField) MinLength(n int) *StringField { f.minLen = n; return f }

// MaxLength sets the inclusive maximum length in runes.
func (f *StringField) MaxLength(n int) *StringField { f.maxLen = n; return f }

func (f *StringField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	s, ok := v.(string)
	if !ok {
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "string"})
	}
	if s == "" {
		if f.required {
			return nil, f.fail(valedictory.CodeRequired, nil)
		}
		return s, nil
	}
	n := utf8.RuneCountInString(s)
	if f.minLen >= 0 && n < f.minLen {
		return nil, f.fail(valedictory.CodeMinLength, map[string]string{"min": strconv.Itoa(f.minLen)})
	}
	if f.maxLen >= 0 && n > f.maxLen {
		return nil, f.fail(valedictory.CodeMaxLength, map[string]string{"max": strconv.Itoa(f.maxLen)})
	}
	return s, nil
}

func (f *StringField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}
