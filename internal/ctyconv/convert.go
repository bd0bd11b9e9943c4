// Package ctyconv converts between cty value trees and the native Go
// shapes produced and consumed by encoding/json. It is the bridge between
// the engine's closed value model and the editor's JSON node exports.
package ctyconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// maxNestingDepth bounds container nesting during conversion so cyclic or
// adversarially deep data returns an error instead of exhausting the stack.
// It matches the parser's cap, so anything the parser accepts converts.
const maxNestingDepth = 10000

// ToNative converts a cty value to its natural Go counterpart, suitable
// for encoding/json marshalling: nil, bool, json.Number, string, []any,
// or map[string]any. Numbers are rendered from the full-precision cty
// representation rather than forced through float64.
func ToNative(v cty.Value) (any, error) {
	return toNative(v, 0)
}

func toNative(v cty.Value, depth int) (any, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("value exceeds maximum nesting depth of %d", maxNestingDepth)
	}
	if v == cty.NilVal {
		return nil, fmt.Errorf("cannot convert the nil value")
	}
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return json.Number(numberString(v.AsBigFloat())), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, el := it.Element()
			native, err := toNative(el, depth+1)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, el := it.Element()
			native, err := toNative(el, depth+1)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			m[key.AsString()] = native
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}

// FromNative converts a decoded-JSON Go value (nil, bool, string,
// json.Number, float64, []any, map[string]any) into a cty value. Objects
// become cty object values and arrays become tuples, mirroring what the
// TSON parser produces, so values from either source traverse identically.
func FromNative(v any) (cty.Value, error) {
	return fromNative(v, 0)
}

func fromNative(v any, depth int) (cty.Value, error) {
	if depth > maxNestingDepth {
		return cty.NilVal, fmt.Errorf("value exceeds maximum nesting depth of %d", maxNestingDepth)
	}
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case json.Number:
		n, err := cty.ParseNumberVal(val.String())
		if err != nil {
			return cty.NilVal, fmt.Errorf("invalid number %q: %w", val.String(), err)
		}
		return n, nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(val))
		for i, el := range val {
			cv, err := fromNative(el, depth+1)
			if err != nil {
				return cty.NilVal, fmt.Errorf("at index %d: %w", i, err)
			}
			elems[i] = cv
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, el := range val {
			cv, err := fromNative(el, depth+1)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported Go type %T", v)
	}
}

// FromJSON decodes raw JSON into a cty value via FromNative, preserving
// number precision with json.Number.
func FromJSON(raw []byte) (cty.Value, error) {
	var native any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&native); err != nil {
		return cty.NilVal, fmt.Errorf("invalid JSON: %w", err)
	}
	return FromNative(native)
}

// numberString renders a big.Float the way cty's own JSON encoder does:
// integers without an exponent where possible, otherwise the shortest
// round-trippable form.
func numberString(f *big.Float) string {
	if f.IsInt() {
		return f.Text('f', 0)
	}
	return f.Text('g', -1)
}
