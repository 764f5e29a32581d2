package field

import (
	"context"
	"strings"

	valedictory "github.com/timheap/valedictory"
)

// CreditCardField validates card numbers: spaces and hyphens are stripped,
// the remainder must be digits, and the Luhn checksum must hold. Normalizes
// to the stripped digit string. A failing checksum reports kind
// "invalid_checksum" so callers can distinguish typos from malformed input.
type CreditCardField struct {
	base
}

// CreditCard returns a card-number field.
func CreditCard() *CreditCardField { return &CreditCardField{base: newBase()} }

// Optional marks the field as not required.
func (f *CreditCardField) Optional() *CreditCardField { f.setOptional(); return f }

// Messages overrides error messages by kind for this field instance.
func (f *CreditCardField) Messages(m map[string]string) *CreditCardField { f.setMessages(m); return f }

func (f *CreditCardField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
	if !digitsPattern.MatchString(stripped) {
		return nil, f.fail(valedictory.CodeInvalid, nil)
	}
	if !luhnValid(stripped) {
		return nil, f.fail(valedictory.CodeInvalidChecksum, nil)
	}
	return stripped, nil
}

func (f *CreditCardField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}

// luhnValid checks the Luhn checksum over a digit string.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
