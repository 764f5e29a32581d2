package field

import (
	"context"
	"regexp"
	"strconv"
	"unicode/utf8"

	valedictory "github.com/timheap/valedictory"
)

var (
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// DigitField accepts strings made up entirely of ASCII digits, preserving
// leading zeros (identifiers, postcodes, PINs).
type DigitField struct {
	base
}

// Digits returns a digit-string field.
func Digits() *DigitField { return &DigitField{base: newBase()} }

// Optional marks the field as not required.
func (f *DigitField) Optional() *DigitField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *DigitField) Default(v string) *DigitField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *DigitField) Messages(m map[string]string) *DigitField { f.setMessages(m); return f }

func (f *DigitField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	if !digitsPattern.MatchString(s) {
		return nil, f.fail(valedictory.CodeInvalid, nil)
	}
	return s, nil
}

func (f *DigitField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}

// EmailField performs a syntactic email check (local part, @, dotted domain)
// with an optional maximum length. Address validation is not perfect; the
// goal is catching obviously malformed input, not RFC 5321 conformance.
type EmailField struct {
	base
	maxLen int
}

// Email returns an email-address field.
func Email() *EmailField { return &EmailField{base: newBase(), maxLen: -1} }

// Optional marks the field as not required.
func (f *EmailField) Optional() *EmailField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *EmailField) Default(v string) *EmailField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *EmailField) Messages(m map[string]string) *EmailField { f.setMessages(m); return f }

// MaxLength sets the inclusive maximum length in runes.
func (f *EmailField) MaxLength(n int) *EmailField { f.maxLen = n; return f }

func (f *EmailField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	if f.maxLen >= 0 && utf8.RuneCountInString(s) > f.maxLen {
		return nil, f.fail(valedictory.CodeMaxLength, map[string]string{"max": strconv.Itoa(f.maxLen)})
	}
	if !emailPattern.MatchString(s) {
		return nil, f.fail(valedictory.CodeInvalid, nil)
	}
	return s, nil
}

func (f *EmailField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}
