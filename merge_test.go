package valedictory_test

import (
	"reflect"
	"testing"

	valedictory "github.com/timheap/valedictory"
	"github.com/timheap/valedictory/field"
)

func TestSchema_NoInheritance(t *testing.T) {
	s := valedictory.New("My").
		Field("int", field.Int()).
		Field("string", field.String()).
		MustBuild()

	if got := s.Fields(); !reflect.DeepEqual(got, []string{"int", "string"}) {
		t.Fatalf("unexpected field order: %v", got)
	}
}

func TestSchema_SingleInheritance(t *testing.T) {
	parent := valedictory.New("Parent").
		Field("int", field.Int()).
		MustBuild()
	child := valedictory.New("Child").
		Extend(parent).
		Field("string", field.String()).
		MustBuild()

	if got := child.Fields(); !reflect.DeepEqual(got, []string{"string", "int"}) {
		t.Fatalf("child declarations should precede inherited ones: %v", got)
	}
}

func TestSchema_MultipleInheritanceOverride(t *testing.T) {
	p1 := valedictory.New("P1").
		Field("int", field.Int()).
		Field("override", field.Bool()).
		MustBuild()
	p2 := valedictory.New("P2").
		Field("string", field.String()).
		Field("override", field.Date()).
		MustBuild()
	child := valedictory.New("Child").
		Extend(p1, p2).
		Field("email", field.Email()).
		MustBuild()

	names := child.Fields()
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate field name %q in %v", n, names)
		}
		seen[n] = true
	}
	for _, want := range []string{"email", "int", "override", "string"} {
		if !seen[want] {
			t.Fatalf("missing field %q in %v", want, names)
		}
	}

	// The first parent's declaration wins the conflicting name.
	v := child.New()
	if _, ok := v.Field("override").(*field.BoolField); !ok {
		t.Fatalf("override should come from P1 (BoolField), got %T", v.Field("override"))
	}
}

func TestSchema_DiamondLinearization(t *testing.T) {
	root := valedictory.New("Root").
		Field("id", field.Int()).
		Field("kind", field.String()).
		MustBuild()
	left := valedictory.New("Left").
		Extend(root).
		Field("kind", field.Bool()).
		MustBuild()
	right := valedictory.New("Right").
		Extend(root).
		Field("kind", field.Date()).
		Field("extra", field.String()).
		MustBuild()
	child := valedictory.New("Child").
		Extend(left, right).
		MustBuild()

	// C3 order is Child, Left, Right, Root: kind resolves to Left's BoolField.
	v := child.New()
	if _, ok := v.Field("kind").(*field.BoolField); !ok {
		t.Fatalf("kind should come from Left (BoolField), got %T", v.Field("kind"))
	}
	for _, want := range []string{"id", "kind", "extra"} {
		if v.Field(want) == nil {
			t.Fatalf("missing inherited field %q", want)
		}
	}
}

func TestSchema_InconsistentHierarchyFails(t *testing.T) {
	a := valedictory.New("A").MustBuild()
	b := valedictory.New("B").Extend(a).MustBuild()

	// Listing a base before its subclass leaves no valid linearization.
	_, err := valedictory.New("Bad").Extend(a, b).Build()
	if err == nil {
		t.Fatalf("expected a configuration error")
	}
	if _, ok := valedictory.AsConfigError(err); !ok {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestSchema_UnbuiltParentFails(t *testing.T) {
	_, err := valedictory.New("Bad").Extend(nil).Build()
	if err == nil {
		t.Fatalf("expected a configuration error for nil parent")
	}
}

func TestSchema_TemplateIsolatedFromBuilderFields(t *testing.T) {
	shared := field.Typed("string", reflect.TypeOf(""))
	s := valedictory.New("S").Field("val", shared).MustBuild()

	// Mutating the field given to the builder must not affect the template.
	shared.SetTypes(reflect.TypeOf(0))

	v := s.New()
	tf, ok := v.Field("val").(*field.TypedField)
	if !ok {
		t.Fatalf("expected TypedField, got %T", v.Field("val"))
	}
	if len(tf.Types()) != 1 || tf.Types()[0] != reflect.TypeOf("") {
		t.Fatalf("template aliased the builder's field instance: %v", tf.Types())
	}
}
