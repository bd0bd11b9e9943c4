package refscan

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// isStructuralKey reports whether a mapping entry holds structural
// identifiers (the block id, its type discriminant, or the list of
// parameter keys it consumes) rather than user-authored text.
func isStructuralKey(key string) bool {
	switch key {
	case "id", "type", "parameterKeys":
		return true
	}
	return false
}

// visitStrings walks a value tree depth-first and calls visit for every
// string leaf with its dotted/bracketed field path. Mapping keys are
// visited in sorted order so results are deterministic; structural keys
// are skipped entirely. Non-string, non-container leaves are ignored.
func visitStrings(root cty.Value, visit func(path, value string)) {
	type item struct {
		path string
		val  cty.Value
	}
	stack := []item{{path: "", val: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := it.val
		if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
			continue
		}
		ty := v.Type()
		switch {
		case ty == cty.String:
			visit(it.path, v.AsString())
		case ty.IsObjectType() || ty.IsMapType():
			entries := v.AsValueMap()
			keys := sortedKeys(entries)
			// Push in reverse so keys pop in sorted order.
			for i := len(keys) - 1; i >= 0; i-- {
				k := keys[i]
				if isStructuralKey(k) {
					continue
				}
				stack = append(stack, item{path: childPath(it.path, k), val: entries[k]})
			}
		case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
			elems := v.AsValueSlice()
			for i := len(elems) - 1; i >= 0; i-- {
				stack = append(stack, item{path: fmt.Sprintf("%s[%d]", it.path, i), val: elems[i]})
			}
		}
	}
}

// rewriteStrings returns a copy of root with every non-structural string
// leaf passed through rewrite. Everything else, including the shape of
// objects, maps, and sequences and all non-string leaves, carries over
// unchanged. The rebuild is post-order over an explicit frame stack.
func rewriteStrings(root cty.Value, rewrite func(string) string) cty.Value {
	rootVal, rootFrame := leafOrFrame(root, rewrite)
	if rootFrame == nil {
		return rootVal
	}
	stack := []*frame{rootFrame}
	for {
		f := stack[len(stack)-1]
		if !f.exhausted() {
			child, skip := f.current()
			if skip {
				f.accept(child)
				continue
			}
			v, sub := leafOrFrame(child, rewrite)
			if sub == nil {
				f.accept(v)
				continue
			}
			stack = append(stack, sub)
			continue
		}
		built := f.build()
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return built
		}
		stack[len(stack)-1].accept(built)
	}
}

// frame is one container being rebuilt during rewriteStrings.
type frame struct {
	ty    cty.Type
	isMap bool
	keys  []string // mapping keys in sorted order; nil for sequences
	src   map[string]cty.Value
	outM  map[string]cty.Value
	seq   []cty.Value
	outS  []cty.Value
	next  int
}

// leafOrFrame rewrites a leaf in place or opens a frame for a container.
// Exactly one of the results is set.
func leafOrFrame(v cty.Value, rewrite func(string) string) (cty.Value, *frame) {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return v, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return cty.StringVal(rewrite(v.AsString())), nil
	case ty.IsObjectType() || ty.IsMapType():
		src := v.AsValueMap()
		return cty.NilVal, &frame{
			ty:    ty,
			isMap: true,
			keys:  sortedKeys(src),
			src:   src,
			outM:  make(map[string]cty.Value, len(src)),
		}
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		seq := v.AsValueSlice()
		return cty.NilVal, &frame{
			ty:   ty,
			seq:  seq,
			outS: make([]cty.Value, 0, len(seq)),
		}
	default:
		return v, nil
	}
}

func (f *frame) exhausted() bool {
	if f.isMap {
		return f.next >= len(f.keys)
	}
	return f.next >= len(f.seq)
}

// current returns the child value at the cursor and whether it must be
// carried over untouched (structural mapping entries).
func (f *frame) current() (cty.Value, bool) {
	if f.isMap {
		k := f.keys[f.next]
		return f.src[k], isStructuralKey(k)
	}
	return f.seq[f.next], false
}

// accept stores a completed child value and advances the cursor.
func (f *frame) accept(v cty.Value) {
	if f.isMap {
		f.outM[f.keys[f.next]] = v
	} else {
		f.outS = append(f.outS, v)
	}
	f.next++
}

// build assembles the rebuilt container, preserving the flavour of the
// original type (object vs map, tuple vs list vs set).
func (f *frame) build() cty.Value {
	if f.isMap {
		if len(f.outM) == 0 {
			if f.ty.IsMapType() {
				return cty.MapValEmpty(f.ty.ElementType())
			}
			return cty.EmptyObjectVal
		}
		if f.ty.IsMapType() {
			return cty.MapVal(f.outM)
		}
		return cty.ObjectVal(f.outM)
	}
	if len(f.outS) == 0 {
		switch {
		case f.ty.IsListType():
			return cty.ListValEmpty(f.ty.ElementType())
		case f.ty.IsSetType():
			return cty.SetValEmpty(f.ty.ElementType())
		default:
			return cty.EmptyTupleVal
		}
	}
	switch {
	case f.ty.IsListType():
		return cty.ListVal(f.outS)
	case f.ty.IsSetType():
		return cty.SetVal(f.outS)
	default:
		return cty.TupleVal(f.outS)
	}
}

// childPath joins a mapping key onto its parent path. A root-level key
// is the path by itself; nested keys are dot-separated.
func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func sortedKeys(m map[string]cty.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
