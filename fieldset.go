package valedictory

// FieldSet is an ordered, string-keyed mapping from field name to Field.
// A Schema holds one as its immutable merged template; every Validator
// instance owns an independent deep copy of it.
type FieldSet struct {
	names  []string
	fields map[string]Field
}

// NewFieldSet returns an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{fields: map[string]Field{}}
}

// Set registers a field. A new name is appended to the order; an existing
// name keeps its position and has its field replaced.
func (fs *FieldSet) Set(name string, f Field) {
	if _, ok := fs.fields[name]; !ok {
		fs.names = append(fs.names, name)
	}
	fs.fields[name] = f
}

// Get returns the field for name.
func (fs *FieldSet) Get(name string) (Field, bool) {
	f, ok := fs.fields[name]
	return f, ok
}

// Has reports whether name is declared.
func (fs *FieldSet) Has(name string) bool {
	_, ok := fs.fields[name]
	return ok
}

// Len returns the number of declared fields.
func (fs *FieldSet) Len() int { return len(fs.names) }

// Names returns the field names in declaration order.
func (fs *FieldSet) Names() []string {
	out := make([]string, len(fs.names))
	copy(out, fs.names)
	return out
}

// Range calls fn for each field in declaration order until fn returns false.
func (fs *FieldSet) Range(fn func(name string, f Field) bool) {
	for _, name := range fs.names {
		if !fn(name, fs.fields[name]) {
			return
		}
	}
}

// Clone returns a deep copy: the order is copied and every field is cloned,
// so no mutable state is shared with the original.
func (fs *FieldSet) Clone() *FieldSet {
	out := &FieldSet{
		names:  make([]string, len(fs.names)),
		fields: make(map[string]Field, len(fs.fields)),
	}
	copy(out.names, fs.names)
	for name, f := range fs.fields {
		out.fields[name] = f.Clone()
	}
	return out
}
