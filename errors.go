package valedictory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Error kinds (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired        = "required"
	CodeUnknown         = "unknown"
	CodeInvalidType     = "type"
	CodeMinLength       = "min_length"
	CodeMaxLength       = "max_length"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeInvalid         = "invalid"
	CodeInvalidChecksum = "invalid_checksum"
	CodeParseError      = "parse_error"
)

// Error is a single leaf validation failure. Kind is the stable,
// machine-checkable tag; Message is for humans and may be overridden per field
// instance. Params carries the values interpolated into the message.
type Error struct {
	Kind    string
	Message string
	Params  map[string]string
}

func (e *Error) Error() string { return e.Kind + ": " + e.Message }

// AsFieldError extracts a leaf *Error from an error using errors.As internally.
func AsFieldError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Key is one path segment in an ErrorTree: a field name or a sequence index.
type Key struct {
	name  string
	index int
	isIdx bool
}

// FieldKey addresses a named field.
func FieldKey(name string) Key { return Key{name: name} }

// IndexKey addresses a sequence element.
func IndexKey(i int) Key { return Key{index: i, isIdx: true} }

// IsIndex reports whether the key addresses a sequence element.
func (k Key) IsIndex() bool { return k.isIdx }

// Name returns the field name ("" for index keys).
func (k Key) Name() string { return k.name }

// Index returns the sequence index (-1 for field keys).
func (k Key) Index() int {
	if !k.isIdx {
		return -1
	}
	return k.index
}

func (k Key) String() string {
	if k.isIdx {
		return strconv.Itoa(k.index)
	}
	return k.name
}

type treeNode struct {
	leaves []*Error
	child  *ErrorTree
}

// ErrorTree is the aggregated, path-keyed collection of validation failures
// produced by one Clean call. Keys are field names or sequence indices, in the
// order failures were recorded; each key holds leaf errors, a nested subtree,
// or both after a merge. ErrorTree implements error.
type ErrorTree struct {
	order []Key
	nodes map[Key]*treeNode
}

// NewErrorTree returns an empty tree.
func NewErrorTree() *ErrorTree {
	return &ErrorTree{nodes: map[Key]*treeNode{}}
}

func (t *ErrorTree) node(k Key) *treeNode {
	n, ok := t.nodes[k]
	if !ok {
		n = &treeNode{}
		t.nodes[k] = n
		t.order = append(t.order, k)
	}
	return n
}

// Add records leaf errors under the given key, appending to any already there.
func (t *ErrorTree) Add(k Key, errs ...*Error) {
	if len(errs) == 0 {
		return
	}
	n := t.node(k)
	n.leaves = append(n.leaves, errs...)
}

// Nest merges a subtree under the given key.
func (t *ErrorTree) Nest(k Key, sub *ErrorTree) {
	if sub == nil || sub.Empty() {
		return
	}
	n := t.node(k)
	if n.child == nil {
		n.child = sub
		return
	}
	n.child.Merge(sub)
}

// Attach folds a child failure under the given key: an *ErrorTree becomes a
// subtree, a leaf *Error is appended, and any other error is wrapped as a leaf
// with kind "invalid". Containers use this to re-key child failures under
// their own addressing scheme.
func (t *ErrorTree) Attach(k Key, err error) {
	if err == nil {
		return
	}
	if sub, ok := AsTree(err); ok {
		t.Nest(k, sub)
		return
	}
	if fe, ok := AsFieldError(err); ok {
		t.Add(k, fe)
		return
	}
	t.Add(k, &Error{Kind: CodeInvalid, Message: err.Error()})
}

// Merge unions another tree into this one. Overlapping keys concatenate their
// leaf sequences and merge their subtrees recursively; neither side is dropped.
func (t *ErrorTree) Merge(other *ErrorTree) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		on := other.nodes[k]
		t.Add(k, on.leaves...)
		if on.child != nil {
			t.Nest(k, on.child)
		}
	}
}

// Empty reports whether the tree holds no failures.
func (t *ErrorTree) Empty() bool { return t == nil || len(t.order) == 0 }

// Len returns the number of top-level keys.
func (t *ErrorTree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Keys returns the top-level keys in recording order.
func (t *ErrorTree) Keys() []Key {
	out := make([]Key, len(t.order))
	copy(out, t.order)
	return out
}

// Leaves returns the leaf errors recorded directly under k.
func (t *ErrorTree) Leaves(k Key) []*Error {
	if n, ok := t.nodes[k]; ok {
		return n.leaves
	}
	return nil
}

// Child returns the subtree under k, or nil.
func (t *ErrorTree) Child(k Key) *ErrorTree {
	if n, ok := t.nodes[k]; ok {
		return n.child
	}
	return nil
}

// Flat is one flattened failure: a JSON-Pointer-style path from the root to
// the failing leaf or element, plus the leaf's kind and message.
type Flat struct {
	Path    string
	Kind    string
	Message string
}

// Flatten renders the tree into path-ordered flat entries, e.g.
// {Path: "/items/2/price", Kind: "too_small"}.
func (t *ErrorTree) Flatten() []Flat {
	var out []Flat
	t.flatten("", &out)
	return out
}

func (t *ErrorTree) flatten(prefix string, out *[]Flat) {
	if t == nil {
		return
	}
	for _, k := range t.order {
		n := t.nodes[k]
		p := prefix + "/" + k.String()
		for _, e := range n.leaves {
			*out = append(*out, Flat{Path: p, Kind: e.Kind, Message: e.Message})
		}
		if n.child != nil {
			n.child.flatten(p, out)
		}
	}
}

// Error summarizes the first few failures.
func (t *ErrorTree) Error() string {
	flat := t.Flatten()
	if len(flat) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(flat)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", flat[i].Kind, flat[i].Path)
	}
	if n := len(flat); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// MarshalJSON renders the tree as a nested object: leaf sequences become
// arrays of {"kind","message"} records, subtrees become nested objects.
// Index keys are rendered as decimal strings.
func (t *ErrorTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.asMap())
}

func (t *ErrorTree) asMap() map[string]any {
	out := make(map[string]any, len(t.order))
	for _, k := range t.order {
		n := t.nodes[k]
		switch {
		case n.child == nil:
			out[k.String()] = leafRecords(n.leaves)
		case len(n.leaves) == 0:
			out[k.String()] = n.child.asMap()
		default:
			// merged key carrying both: leaves first, then the subtree
			vals := leafRecords(n.leaves)
			vals = append(vals, n.child.asMap())
			out[k.String()] = vals
		}
	}
	return out
}

func leafRecords(leaves []*Error) []any {
	vals := make([]any, 0, len(leaves))
	for _, e := range leaves {
		vals = append(vals, map[string]string{"kind": e.Kind, "message": e.Message})
	}
	return vals
}

// AsTree extracts an *ErrorTree from an error using errors.As internally.
func AsTree(err error) (*ErrorTree, bool) {
	if err == nil {
		return nil, false
	}
	var t *ErrorTree
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}
