package field

import (
	"context"
	"time"

	valedictory "github.com/timheap/valedictory"
)

// ISO 8601 layouts accepted by the date/datetime fields. Partial dates
// ("2018-02", "2018") resolve to the first day of the period.
var (
	dateLayouts = []string{
		"2006-01-02",
		"20060102",
		"2006-01",
		"2006",
	}
	dateTimeZonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		"20060102T150405Z0700",
		"20060102T150405Z07:00",
	}
	dateTimeNaiveLayouts = []string{
		"2006-01-02T15:04:05",
		"20060102T150405",
	}
)

// DateField parses ISO 8601 date strings to a time.Time at midnight UTC.
type DateField struct {
	base
}

// Date returns a calendar-date field.
func Date() *DateField { return &DateField{base: newBase()} }

// Optional marks the field as not required.
func (f *DateField) Optional() *DateField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *DateField) Default(v time.Time) *DateField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *DateField) Messages(m map[string]string) *DateField { f.setMessages(m); return f }

func (f *DateField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, f.fail(valedictory.CodeInvalid, nil)
}

func (f *DateField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}

// DateTimeField parses ISO 8601 date-time strings to a time.Time. Timezone
// offsets are required unless TimezoneOptional is chained.
type DateTimeField struct {
	base
	tzRequired bool
}

// DateTime returns a date-time field requiring a timezone offset.
func DateTime() *DateTimeField { return &DateTimeField{base: newBase(), tzRequired: true} }

// Optional marks the field as not required.
func (f *DateTimeField) Optional() *DateTimeField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *DateTimeField) Default(v time.Time) *DateTimeField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *DateTimeField) Messages(m map[string]string) *DateTimeField { f.setMessages(m); return f }

// TimezoneOptional accepts naive timestamps (no offset) as well.
func (f *DateTimeField) TimezoneOptional() *DateTimeField { f.tzRequired = false; return f }

func (f *DateTimeField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	for _, layout := range dateTimeZonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range dateTimeNaiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if f.tzRequired {
				return nil, f.fail(valedictory.CodeInvalid, map[string]string{"reason": "timezone required"})
			}
			return t, nil
		}
	}
	return nil, f.fail(valedictory.CodeInvalid, nil)
}

func (f *DateTimeField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}

// YearMonth is the normalized value produced by YearMonthField.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthField parses "YYYY-MM" strings to a YearMonth.
type YearMonthField struct {
	base
}

// YearMonthOf returns a year-month field.
func YearMonthOf() *YearMonthField { return &YearMonthField{base: newBase()} }

// Optional marks the field as not required.
func (f *YearMonthField) Optional() *YearMonthField { f.setOptional(); return f }

// Default sets the value used when input is absent.
func (f *YearMonthField) Default(v YearMonth) *YearMonthField { f.setDefault(v); return f }

// Messages overrides error messages by kind for this field instance.
func (f *YearMonthField) Messages(m map[string]string) *YearMonthField { f.setMessages(m); return f }

func (f *YearMonthField) Clean(ctx context.Context, v any, present bool) (any, error) {
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
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return nil, f.fail(valedictory.CodeInvalid, nil)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (f *YearMonthField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	return &c
}
