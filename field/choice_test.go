package field_test

import (
	"testing"

	json "github.com/goccy/go-json"
	valedictory "github.com/timheap/valedictory"
	"github.com/timheap/valedictory/field"
)

func TestChoice_Simple(t *testing.T) {
	f := field.Choice("red", "green", "blue")
	if v, err := f.Clean(ctx, "green", true); err != nil || v != "green" {
		t.Fatalf("got %v err=%v", v, err)
	}
	if kind := kindOf(t, mustFail(t, f, "purple")); kind != valedictory.CodeInvalid {
		t.Fatalf("want invalid, got %s", kind)
	}
}

func TestChoice_DecodedNumbersMatch(t *testing.T) {
	f := field.Choice(1, 2, 3)
	// decoded JSON carries json.Number, not int
	v, err := f.Clean(ctx, json.Number("2"), true)
	if err != nil || v != 2 {
		t.Fatalf("want declared choice 2, got %v err=%v", v, err)
	}
	if kind := kindOf(t, mustFail(t, f, json.Number("4"))); kind != valedictory.CodeInvalid {
		t.Fatalf("want invalid, got %s", kind)
	}
}

func TestChoice_BoolsNeverMatchNumbers(t *testing.T) {
	f := field.Choice(0, 1)
	if kind := kindOf(t, mustFail(t, f, true)); kind != valedictory.CodeInvalid {
		t.Fatalf("want invalid, got %s", kind)
	}
}

func TestChoiceMap_Simple(t *testing.T) {
	f := field.ChoiceMap(map[any]any{"card": "CARD", "cash": "CASH"})
	v, err := f.Clean(ctx, "card", true)
	if err != nil || v != "CARD" {
		t.Fatalf("got %v err=%v", v, err)
	}
	if kind := kindOf(t, mustFail(t, f, "cheque")); kind != valedictory.CodeInvalid {
		t.Fatalf("want invalid, got %s", kind)
	}
}

func TestChoiceMap_NumericKeys(t *testing.T) {
	f := field.ChoiceMap(map[any]any{1: "one", 2: "two"})
	v, err := f.Clean(ctx, json.Number("1"), true)
	if err != nil || v != "one" {
		t.Fatalf("got %v err=%v", v, err)
	}
}

func TestChoice_CloneIsolated(t *testing.T) {
	orig := field.Choice("a", "b")
	copied := orig.Clone().(*field.ChoiceField)
	copied.SetChoices("x")

	if _, err := orig.Clean(ctx, "a", true); err != nil {
		t.Fatalf("original choices changed after mutating the copy: %v", err)
	}
	if _, err := copied.Clean(ctx, "a", true); err == nil {
		t.Fatalf("copy should only accept its new choices")
	}
}
