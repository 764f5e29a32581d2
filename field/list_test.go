package field_test

import (
	"reflect"
	"testing"

	valedictory "github.com/timheap/valedictory"
	"github.com/timheap/valedictory/field"
)

func TestList_Simple(t *testing.T) {
	f := field.List(field.String())
	v, err := f.Clean(ctx, []any{"a", "b", "c"}, true)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !reflect.DeepEqual(v, []any{"a", "b", "c"}) {
		t.Fatalf("got %v", v)
	}
}

func TestList_ErrorsKeyedByIndex(t *testing.T) {
	f := field.List(field.Int())
	_, err := f.Clean(ctx, []any{1, "nope", 3, "strings"}, true)
	tree, ok := valedictory.AsTree(err)
	if !ok {
		t.Fatalf("expected ErrorTree, got %v", err)
	}

	want := []valedictory.Key{valedictory.IndexKey(1), valedictory.IndexKey(3)}
	if !reflect.DeepEqual(tree.Keys(), want) {
		t.Fatalf("want keys %v, got %v", want, tree.Keys())
	}
	for _, k := range want {
		leaves := tree.Leaves(k)
		if len(leaves) != 1 || leaves[0].Kind != valedictory.CodeInvalidType {
			t.Fatalf("key %v: got %v", k, leaves)
		}
	}
}

func TestList_NotASequence(t *testing.T) {
	f := field.List(field.String())
	for _, bad := range []any{"abc", 10, map[string]any{}, nil, []byte("ab")} {
		if kind := kindOf(t, mustFail(t, f, bad)); kind != valedictory.CodeInvalidType {
			t.Fatalf("want type for %v, got %s", bad, kind)
		}
	}
}

func TestList_TypedSlices(t *testing.T) {
	f := field.List(field.String())
	v, err := f.Clean(ctx, []string{"x", "y"}, true)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !reflect.DeepEqual(v, []any{"x", "y"}) {
		t.Fatalf("got %v", v)
	}
}

func TestList_AbsentValue(t *testing.T) {
	required := field.List(field.Int())
	if kind := kindOf(t, mustFail(t, required, nil)); kind != valedictory.CodeInvalidType {
		t.Fatalf("nil present value is not a list: %s", kind)
	}
	_, err := required.Clean(ctx, nil, false)
	if kind := kindOf(t, err); kind != valedictory.CodeRequired {
		t.Fatalf("want required, got %s", kind)
	}
}

func TestList_CloneIsolatesInner(t *testing.T) {
	orig := field.List(field.Typed("string", reflect.TypeOf("")))
	copied := orig.Clone().(*field.ListField)
	copied.Inner().(*field.TypedField).SetTypes(reflect.TypeOf(0))

	if _, err := orig.Clean(ctx, []any{"ok"}, true); err != nil {
		t.Fatalf("original inner changed after mutating the copy: %v", err)
	}
	if _, err := copied.Clean(ctx, []any{"ok"}, true); err == nil {
		t.Fatalf("copy should reject strings after SetTypes")
	}
}
