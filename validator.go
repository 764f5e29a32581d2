package valedictory

import (
	"context"
	"errors"
	"sort"

	"github.com/timheap/valedictory/i18n"
)

// Schema is the immutable template for one object shape: a named, ordered
// field mapping merged from its own declarations and every ancestor's, plus
// the unknown-field policy. Build it once with a Builder and share it freely;
// per-validation state lives on Validator instances created by New.
type Schema struct {
	name         string
	declared     *FieldSet
	parents      []*Schema
	allowUnknown bool
	messages     map[string]string

	lin    []*Schema
	fields *FieldSet
}

// Name returns the schema's declared name.
func (s *Schema) Name() string { return s.name }

// Fields returns the names of the merged field set in resolution order.
func (s *Schema) Fields() []string { return s.fields.Names() }

// New constructs an independent Validator instance. The schema's merged field
// set is deep-copied into the instance, so callers may reconfigure individual
// fields (via Field/SetField) without affecting the schema or any sibling
// instance. This copy-then-mutate pattern is part of the public contract.
func (s *Schema) New() *Validator {
	msgs := make(map[string]string, len(s.messages))
	for k, v := range s.messages {
		msgs[k] = v
	}
	return &Validator{
		schema:       s,
		fields:       s.fields.Clone(),
		allowUnknown: s.allowUnknown,
		messages:     msgs,
	}
}

// Builder assembles a Schema. Field declarations and parent schemas are
// collected here; Build resolves the linearization and merged field set.
type Builder struct {
	name         string
	declared     *FieldSet
	parents      []*Schema
	allowUnknown bool
	messages     map[string]string
}

// New starts a schema builder.
func New(name string) *Builder {
	return &Builder{name: name, declared: NewFieldSet()}
}

// Field declares a named field. Redeclaring a name replaces the field but
// keeps its position.
func (b *Builder) Field(name string, f Field) *Builder {
	b.declared.Set(name, f)
	return b
}

// Extend appends parent schemas to inherit field declarations from. Order
// matters: earlier parents take precedence over later ones for conflicting
// names.
func (b *Builder) Extend(parents ...*Schema) *Builder {
	b.parents = append(b.parents, parents...)
	return b
}

// AllowUnknownFields makes the schema silently drop input keys that are not
// declared instead of reporting them.
func (b *Builder) AllowUnknownFields() *Builder {
	b.allowUnknown = true
	return b
}

// Messages overrides validator-level error messages (currently the "unknown"
// message) for this schema.
func (b *Builder) Messages(m map[string]string) *Builder {
	if b.messages == nil {
		b.messages = make(map[string]string, len(m))
	}
	for k, v := range m {
		b.messages[k] = v
	}
	return b
}

// Build resolves the inheritance chain into the merged field set and returns
// the finished Schema. Misconfigured fields and inconsistent hierarchies
// surface here as a ConfigError.
func (b *Builder) Build() (*Schema, error) {
	s := &Schema{
		name:         b.name,
		declared:     b.declared.Clone(),
		parents:      append([]*Schema(nil), b.parents...),
		allowUnknown: b.allowUnknown,
		messages:     b.messages,
	}
	for _, p := range s.parents {
		if p == nil || p.fields == nil {
			return nil, Configf("schema %q: parent schema is nil or not built", s.name)
		}
	}
	lin, err := linearize(s)
	if err != nil {
		return nil, err
	}
	s.lin = lin
	s.fields = mergeFields(lin)

	var cfgErr error
	s.fields.Range(func(name string, f Field) bool {
		if cc, ok := f.(ConfigChecker); ok {
			if err := cc.ConfigCheck(); err != nil {
				cfgErr = Configf("schema %q, field %q: %v", s.name, name, err)
				return false
			}
		}
		return true
	})
	if cfgErr != nil {
		return nil, cfgErr
	}
	return s, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Validator runs whole-object validation for one schema. Each instance owns
// its field-set copy exclusively; instances are not designed for concurrent
// mutation, but any number may run Clean concurrently against the shared
// Schema.
type Validator struct {
	schema       *Schema
	fields       *FieldSet
	allowUnknown bool
	messages     map[string]string
}

// Schema returns the schema this instance was created from (nil for clones of
// hand-assembled validators).
func (v *Validator) Schema() *Schema { return v.schema }

// Clean validates the input mapping and returns the normalized output.
//
// Keys are partitioned into known and unknown. Unknown keys are either
// reported with kind "unknown" or silently dropped, per the schema's policy.
// Every declared field is then processed in field-set order: successes land
// in the output, optional-absent fields are omitted entirely, and failures
// are folded into a single ErrorTree under the field's name. Validation is
// exhaustive; the only early exit is a ConfigError, which is returned as-is.
// On any validation failure the returned mapping is nil, never partial.
func (v *Validator) Clean(ctx context.Context, data map[string]any) (map[string]any, error) {
	unknown, known := PartitionMap(data, func(k string, _ any) bool {
		return v.fields.Has(k)
	})

	tree := NewErrorTree()
	if !v.allowUnknown {
		names := make([]string, 0, len(unknown))
		for k := range unknown {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			tree.Add(FieldKey(k), v.unknownError())
		}
	}

	out := make(map[string]any, v.fields.Len())
	var cfgErr error
	v.fields.Range(func(name string, f Field) bool {
		val, present := known[name]
		cleaned, err := f.Clean(ctx, val, present)
		switch {
		case err == nil:
			out[name] = cleaned
		case errors.Is(err, ErrNoData):
			// optional field with no default and no input: omit the key
		default:
			if ce, ok := AsConfigError(err); ok {
				cfgErr = ce
				return false
			}
			tree.Attach(FieldKey(name), err)
		}
		return true
	})
	if cfgErr != nil {
		return nil, cfgErr
	}
	if !tree.Empty() {
		return nil, tree
	}
	return out, nil
}

func (v *Validator) unknownError() *Error {
	msg, ok := v.messages[CodeUnknown]
	if !ok {
		msg = i18n.T(CodeUnknown, nil)
	}
	return &Error{Kind: CodeUnknown, Message: msg}
}

// Field returns this instance's copy of a declared field, for per-instance
// reconfiguration (for example, binding a computed parameter after
// construction). Returns nil for undeclared names.
func (v *Validator) Field(name string) Field {
	f, _ := v.fields.Get(name)
	return f
}

// SetField replaces this instance's copy of a declared field. Undeclared
// names are appended, affecting only this instance.
func (v *Validator) SetField(name string, f Field) {
	v.fields.Set(name, f)
}

// Fields returns the instance's field names in field-set order.
func (v *Validator) Fields() []string { return v.fields.Names() }

// AllowUnknownFields overrides the schema's unknown-field policy for this
// instance only.
func (v *Validator) AllowUnknownFields(allow bool) { v.allowUnknown = allow }

// Clone returns an independent copy of this instance, including a deep copy
// of its field set.
func (v *Validator) Clone() *Validator {
	msgs := make(map[string]string, len(v.messages))
	for k, val := range v.messages {
		msgs[k] = val
	}
	return &Validator{
		schema:       v.schema,
		fields:       v.fields.Clone(),
		allowUnknown: v.allowUnknown,
		messages:     msgs,
	}
}
