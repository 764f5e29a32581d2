package field

import (
	"context"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
	valedictory "github.com/timheap/valedictory"
)

// ChoiceField accepts only values from a fixed set. Comparison is
// numeric-aware so a json.Number from decoded input matches an int or float
// choice with the same value.
type ChoiceField struct {
	base
	choices []any
}

// Choice returns a field restricted to the given values.
func Choice(choices ...any) *ChoiceField {
	return &ChoiceField{base: newBase(), choices: choices}
}

// Optional marks the field as not required.
func (f *ChoiceField) Optional() *ChoiceField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *ChoiceField) Default(v any) *ChoiceField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *ChoiceField) Messages(m map[string]string) *ChoiceField { f.setMessages(m); return f }

// SetChoices replaces the accepted values on this instance.
func (f *ChoiceField) SetChoices(choices ...any) { f.choices = choices }

func (f *ChoiceField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	for _, c := range f.choices {
		if valueEqual(v, c) {
			return c, nil
		}
	}
	return nil, f.fail(valedictory.CodeInvalid, nil)
}

func (f *ChoiceField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	c.choices = append([]any(nil), f.choices...)
	return &c
}

// ChoiceMapField accepts only keys of a fixed mapping and normalizes each
// accepted key to its mapped value.
type ChoiceMapField struct {
	base
	choices map[any]any
}

// ChoiceMap returns a field restricted to the mapping's keys.
func ChoiceMap(choices map[any]any) *ChoiceMapField {
	return &ChoiceMapField{base: newBase(), choices: choices}
}

// Optional marks the field as not required.
func (f *ChoiceMapField) Optional() *ChoiceMapField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *ChoiceMapField) Default(v any) *ChoiceMapField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *ChoiceMapField) Messages(m map[string]string) *ChoiceMapField { f.setMessages(m); return f }

func (f *ChoiceMapField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	if v != nil && reflect.TypeOf(v).Comparable() {
		if mapped, ok := f.choices[v]; ok {
			return mapped, nil
		}
	}
	// numeric-aware fallback for decoded json.Number keys
	for k, mapped := range f.choices {
		if valueEqual(v, k) {
			return mapped, nil
		}
	}
	return nil, f.fail(valedictory.CodeInvalid, nil)
}

func (f *ChoiceMapField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	c.choices = make(map[any]any, len(f.choices))
	for k, v := range f.choices {
		c.choices[k] = v
	}
	return &c
}

// valueEqual compares an input value to a declared choice. Exact values
// compare with DeepEqual; numbers compare by value across int/float/
// json.Number so decoded input matches native choices. Booleans only match
// booleans.
func valueEqual(v, choice any) bool {
	if reflect.DeepEqual(v, choice) {
		return true
	}
	vf, vok := numericValue(v)
	cf, cok := numericValue(choice)
	return vok && cok && vf == cf
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		return 0, false
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
