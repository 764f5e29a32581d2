package field_test

import (
	"errors"
	"testing"

	valedictory "github.com/timheap/valedictory"
	"github.com/timheap/valedictory/field"
)

func kindOf(t *testing.T, err error) string {
	t.Helper()
	fe, ok := valedictory.AsFieldError(err)
	if !ok {
		t.Fatalf("expected a leaf field error, got %T: %v", err, err)
	}
	return fe.Kind
}

func TestString_Simple(t *testing.T) {
	f := field.String()
	if v, err := f.Clean(ctx, "hello", true); err != nil || v != "hello" {
		t.Fatalf("want hello, got %v err=%v", v, err)
	}
	// the empty string carries no content for a required field
	if kind := kindOf(t, mustFail(t, f, "")); kind != valedictory.CodeRequired {
		t.Fatalf("want required for empty string, got %s", kind)
	}
}

func TestString_MinLength(t *testing.T) {
	f := field.String().MinLength(3)
	if _, err := f.Clean(ctx, "hello", true); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if kind := kindOf(t, mustFail(t, f, "no")); kind != valedictory.CodeMinLength {
		t.Fatalf("want min_length, got %s", kind)
	}
}

func TestString_MaxLength(t *testing.T) {
	f := field.String().MaxLength(3)
	if _, err := f.Clean(ctx, "hi", true); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if kind := kindOf(t, mustFail(t, f, "hello")); kind != valedictory.CodeMaxLength {
		t.Fatalf("want max_length, got %s", kind)
	}
}

func TestString_NotRequired(t *testing.T) {
	f := field.String().Optional()
	if v, err := f.Clean(ctx, "", true); err != nil || v != "" {
		t.Fatalf("optional empty string should pass, got %v err=%v", v, err)
	}
	if _, err := f.Clean(ctx, nil, false); !errors.Is(err, valedictory.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestString_InvalidType(t *testing.T) {
	if kind := kindOf(t, mustFail(t, field.String(), 10)); kind != valedictory.CodeInvalidType {
		t.Fatalf("want type, got %s", kind)
	}
}

func TestDigits(t *testing.T) {
	f := field.Digits()
	for _, ok := range []string{"1234567890", "000", "01020"} {
		v, err := f.Clean(ctx, ok, true)
		if err != nil || v != ok {
			t.Fatalf("clean %q: got %v err=%v", ok, v, err)
		}
	}
	for _, bad := range []string{"hello", "123abc", "abc123", ""} {
		if _, err := f.Clean(ctx, bad, true); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestEmail(t *testing.T) {
	f := field.Email()
	for _, ok := range []string{"test@example.com", "t@e.c"} {
		if v, err := f.Clean(ctx, ok, true); err != nil || v != ok {
			t.Fatalf("clean %q: got %v err=%v", ok, v, err)
		}
	}
	for _, bad := range []string{"t@e", "@te.com", "test@", "te.com", "test"} {
		if kind := kindOf(t, mustFail(t, f, bad)); kind != valedictory.CodeInvalid {
			t.Fatalf("want invalid for %q, got %s", bad, kind)
		}
	}
	if kind := kindOf(t, mustFail(t, f, 10)); kind != valedictory.CodeInvalidType {
		t.Fatalf("want type for non-string, got %s", kind)
	}
}

func TestEmail_MaxLength(t *testing.T) {
	f := field.Email().MaxLength(10)
	if _, err := f.Clean(ctx, "t@e.c", true); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if kind := kindOf(t, mustFail(t, f, "test@example.com")); kind != valedictory.CodeMaxLength {
		t.Fatalf("want max_length, got %s", kind)
	}
}

func mustFail(t *testing.T, f valedictory.Field, v any) error {
	t.Helper()
	out, err := f.Clean(ctx, v, true)
	if err == nil {
		t.Fatalf("expected failure for %v, got %v", v, out)
	}
	return err
}
