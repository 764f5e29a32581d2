package field

import (
	"context"
	"errors"
	"reflect"

	valedictory "github.com/timheap/valedictory"
)

// ListField validates each element of an ordered sequence against one inner
// field. Elements are processed exhaustively: a failing element is recorded
// in the error tree under its index and the remaining elements still run.
// On success the normalized sequence has the same length and order as the
// input.
type ListField struct {
	base
	inner valedictory.Field
}

// List returns a sequence field over the given element field.
func List(inner valedictory.Field) *ListField {
	return &ListField{base: newBase(), inner: inner}
}

// Optional marks the field as not required.
func (f *ListField) Optional() *ListField { f.setOptional(); return f }

// Messages overrides error messages by kind for this field instance.
func (f *ListField) Messages(m map[string]string) *ListField { f.setMessages(m); return f }

// Inner returns this instance's element field, for per-instance
// reconfiguration.
func (f *ListField) Inner() valedictory.Field { return f.inner }

func (f *ListField) Clean(ctx context.Context, v any, present bool) (any, error) {
	if err := f.ready(); err != nil {
		return nil, err
	}
	if !present {
		return f.missing()
	}
	elems, ok := sequenceOf(v)
	if !ok {
		return nil, f.fail(valedictory.CodeInvalidType, map[string]string{"expected": "list"})
	}

	tree := valedictory.NewErrorTree()
	out := make([]any, len(elems))
	for i, el := range elems {
		cleaned, err := f.inner.Clean(ctx, el, true)
		if err != nil {
			if ce, ok := valedictory.AsConfigError(err); ok {
				return nil, ce
			}
			if errors.Is(err, valedictory.ErrNoData) {
				continue
			}
			tree.Attach(valedictory.IndexKey(i), err)
			continue
		}
		out[i] = cleaned
	}
	if !tree.Empty() {
		return nil, tree
	}
	return out, nil
}

func (f *ListField) Clone() valedictory.Field {
	c := *f
	c.base = f.cloneBase()
	c.inner = f.inner.Clone()
	return &c
}

// sequenceOf widens slice or array input to []any. Strings and byte slices
// are not sequences here.
func sequenceOf(v any) ([]any, bool) {
	if elems, ok := v.([]any); ok {
		return elems, true
	}
	switch v.(type) {
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
