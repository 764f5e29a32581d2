package field

import (
	"context"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	valedictory "github.com/timheap/valedictory"
)

// Numeric fields are strict about type: booleans are never accepted by any of
// them, and integers and floats are not interchangeable. JSON input decoded
// via CleanJSON arrives as json.Number, whose literal text keeps "1" and
// "1.0" distinguishable; native Go numerics are matched by their exact kind.

// IntField validates integer input with optional inclusive bounds and
// normalizes to int64.
type IntField struct {
	base
	min *int64
	max *int64
}

// Int returns an integer field.
func Int() *IntField { return &IntField{base: newBase()} }

// Optional marks the field as not required.
func (f *IntField) Optional() *IntField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *IntField) Default(v int64) *IntField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *IntField) Messages(m map[string]string) *IntField { f.setMessages(m); return f }

// Min sets the inclusive minimum.
func (f *IntField) Min(n int64) *IntField { f.min = &n; return f }

// Max sets the inclusive maximum.
func (f *IntField) Max(n int64) *IntField { f.max = &n; return f }

func (f *IntField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	var i int64
	switch n := v.(type) {
	case bool:
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "integer"})
	case int:
		i = int64(n)
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case uint:
		i = int64(n)
	case uint8:
		i = int64(n)
	case uint16:
		i = int64(n)
	case uint32:
		i = int64(n)
	case uint64:
		if n > math.MaxInt64 {
			return nil, f.fail(valedictory.CodeInvalid, map[string]string{"got": strconv.FormatUint(n, 10)})
		}
		i = int64(n)
	case json.Number:
		if !numberIsIntegral(n) {
			return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "integer"})
		}
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return nil, f.fail(valedictory.CodeInvalid, map[string]string{"got": string(n)})
		}
		i = parsed
	default:
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "integer"})
	}
	if f.min != nil && i < *f.min {
		return nil, f.fail(valedictory.CodeTooSmall, map[string]string{"min": strconv.FormatInt(*f.min, 10)})
	}
	if f.max != nil && i > *f.max {
		return nil, f.fail(valedictory.CodeTooBig, map[string]string{"max": strconv.FormatInt(*f.max, 10)})
	}
	return i, nil
}

func (f *IntField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	if f.min != nil {
		n := *f.min
		c.min = &n
	}
	if f.max != nil {
		n := *f.max
		c.max = &n
	}
	return &c
}

// FloatField validates floating-point input with optional inclusive bounds
// and normalizes to float64. Integer input (including integral json.Number
// literals) is rejected with kind "type".
type FloatField struct {
	base
	min *float64
	max *float64
}

// Float returns a float field.
func Float() *FloatField { return &FloatField{base: newBase()} }

// Optional marks the field as not required.
func (f *FloatField) Optional() *FloatField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *FloatField) Default(v float64) *FloatField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *FloatField) Messages(m map[string]string) *FloatField { f.setMessages(m); return f }

// Min sets the inclusive minimum.
func (f *FloatField) Min(n float64) *FloatField { f.min = &n; return f }

// Max sets the inclusive maximum.
func (f *FloatField) Max(n float64) *FloatField { f.max = &n; return f }

func (f *FloatField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	var fl float64
	switch n := v.(type) {
	case float32:
		fl = float64(n)
	case float64:
		fl = n
	case json.Number:
		if numberIsIntegral(n) {
			return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "float"})
		}
		parsed, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return nil, f.fail(valedictory.CodeInvalid, map[string]string{"got": string(n)})
		}
		fl = parsed
	default:
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "float"})
	}
	if f.min != nil && fl < *f.min {
		return nil, f.fail(valedictory.CodeTooSmall, map[string]string{"min": strconv.FormatFloat(*f.min, 'g', -1, 64)})
	}
	if f.max != nil && fl > *f.max {
		return nil, f.fail(valedictory.CodeTooBig, map[string]string{"max": strconv.FormatFloat(*f.max, 'g', -1, 64)})
	}
	return fl, nil
}

func (f *FloatField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	if f.min != nil {
		n := *f.min
		c.min = &n
	}
	if f.max != nil {
		n := *f.max
		c.max = &n
	}
	return &c
}

// NumberField accepts any numeric input, integer or float, and normalizes
// integers to int64, floats to float64 and json.Number unchanged. Booleans
// and numeric strings are rejected.
type NumberField struct {
	base
}

// Number returns a field accepting any number.
func Number() *NumberField { return &NumberField{base: newBase()} }

// Optional marks the field as not required.
func (f *NumberField) Optional() *NumberField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *NumberField) Default(v any) *NumberField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *NumberField) Messages(m map[string]string) *NumberField { f.setMessages(m); return f }

func (f *NumberField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	switch n := v.(type) {
	case bool:
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "number"})
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		return n, nil
	default:
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "number"})
	}
}

func (f *NumberField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}

// numberIsIntegral reports whether the literal has no fraction or exponent.
func numberIsIntegral(n json.Number) bool {
	return !strings.ContainsAny(string(n), ".eE")
}
