// Package field provides the concrete Field implementations composed by
// valedictory schemas: scalar leaves (String, Int, Bool, ...), format leaves
// (Email, Date, CreditCard, ...) and the composite List and Nested fields.
//
// Fields are configured by chaining: field.String().Optional().MaxLength(80).
// Every field is required by default; Default may only follow Optional.
package field

import (
	valedictory "github.com/timheap/valedictory"
	"github.com/timheap/valedictory/i18n"
)

// base carries the configuration shared by every field: required/default
// semantics, the per-instance error-message overrides, and any configuration
// error recorded during chaining.
type base struct {
	required   bool
	def        any
	hasDefault bool
	messages   map[string]string
	cfgErr     error
}

func newBase() base { return base{required: true} }

func (b *base) setOptional() { b.required = false }

func (b *base) setDefault(v any) {
	if b.required {
		// required and defaulted are mutually exclusive
		b.cfgErr = valedictory.Configf("default set on a required field; chain Optional() first")
		return
	}
	b.def = v
	b.hasDefault = true
}

func (b *base) setMessages(m map[string]string) {
	if b.messages == nil {
		b.messages = make(map[string]string, len(m))
	}
	for k, v := range m {
		b.messages[k] = v
	}
}

// ConfigCheck surfaces chaining mistakes at schema Build() time.
func (b *base) ConfigCheck() error { return b.cfgErr }

// ready is checked at the top of every Clean so a misconfigured field used
// outside a schema still fails with the ConfigError, not a validation error.
func (b *base) ready() error { return b.cfgErr }

// missing resolves absent input: default value, required failure, or the
// no-data signal that makes the container omit the key.
func (b *base) missing() (any, error) {
	if b.hasDefault {
		return b.def, nil
	}
	if b.required {
		return nil, b.fail(valedictory.CodeRequired, nil)
	}
	return nil, valedictory.ErrNoData
}

// fail builds a leaf error, resolving the message from this instance's
// overrides first and the translator otherwise.
func (b *base) fail(kind string, params map[string]string) *valedictory.Error {
	msg, ok := b.messages[kind]
	if ok {
		msg = i18n.Expand(msg, params)
	} else {
		msg = i18n.T(kind, params)
	}
	return &valedictory.Error{Kind: kind, Message: msg, Params: params}
}

// cloneBase deep-copies the mutable parts; the message map is recreated so a
// clone's overrides never alias the original's.
func (b *base) cloneBase() base {
	out := *b
	if b.messages != nil {
		out.messages = make(map[string]string, len(b.messages))
		for k, v := range b.messages {
			out.messages[k] = v
		}
	}
	return out
}
