package valedictory

// Field-set merge resolution. A schema's effective field mapping combines its
// own declarations with those of every ancestor, resolved through an explicit
// C3 linearization of the parent list rather than any host-language
// inheritance mechanism. The schema earliest in the linearized order wins a
// conflicting name, and its declaration (including its position) is what the
// merged template carries.

// linearize computes the C3 linearization of s: s itself, then the merge of
// its parents' linearizations with the parent list. Parent linearizations are
// read from their Build()-time cache.
func linearize(s *Schema) ([]*Schema, error) {
	if len(s.parents) == 0 {
		return []*Schema{s}, nil
	}
	seqs := make([][]*Schema, 0, len(s.parents)+1)
	for _, p := range s.parents {
		seqs = append(seqs, p.lin)
	}
	seqs = append(seqs, s.parents)
	merged, ok := c3Merge(seqs)
	if !ok {
		return nil, Configf("schema %q: inconsistent parent order, no valid linearization", s.name)
	}
	return append([]*Schema{s}, merged...), nil
}

// c3Merge merges precedence lists: repeatedly take the first head that does
// not appear in the tail of any list. Returns ok=false when no candidate
// exists (an inconsistent hierarchy).
func c3Merge(seqs [][]*Schema) ([]*Schema, bool) {
	work := make([][]*Schema, len(seqs))
	for i, s := range seqs {
		work[i] = append([]*Schema(nil), s...)
	}
	var out []*Schema
	for {
		live := work[:0:0]
		for _, s := range work {
			if len(s) > 0 {
				live = append(live, s)
			}
		}
		work = live
		if len(work) == 0 {
			return out, true
		}

		var next *Schema
		for _, s := range work {
			head := s[0]
			if inAnyTail(head, work) {
				continue
			}
			next = head
			break
		}
		if next == nil {
			return nil, false
		}
		out = append(out, next)
		for i, s := range work {
			if s[0] == next {
				work[i] = s[1:]
			}
		}
	}
}

func inAnyTail(s *Schema, seqs [][]*Schema) bool {
	for _, seq := range seqs {
		for _, c := range seq[1:] {
			if c == s {
				return true
			}
		}
	}
	return false
}

// mergeFields walks the linearization front to back and keeps the first
// declaration of each name, cloned so the template never aliases a builder's
// field instance.
func mergeFields(lin []*Schema) *FieldSet {
	out := NewFieldSet()
	for _, s := range lin {
		s.declared.Range(func(name string, f Field) bool {
			if !out.Has(name) {
				out.Set(name, f.Clone())
			}
			return true
		})
	}
	return out
}
