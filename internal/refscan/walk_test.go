package refscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestVisitStringsOrder(t *testing.T) {
	t.Parallel()

	v := cty.ObjectVal(map[string]cty.Value{
		"z": cty.StringVal("last"),
		"a": cty.TupleVal([]cty.Value{
			cty.StringVal("first"),
			cty.ObjectVal(map[string]cty.Value{"inner": cty.StringVal("second")}),
		}),
		"m": cty.StringVal("third"),
	})

	var paths, values []string
	visitStrings(v, func(path, value string) {
		paths = append(paths, path)
		values = append(values, value)
	})

	assert.Equal(t, []string{"a[0]", "a[1].inner", "m", "z"}, paths)
	assert.Equal(t, []string{"first", "second", "third", "last"}, values)
}

func TestChildPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "key", childPath("", "key"))
	assert.Equal(t, "parent.key", childPath("parent", "key"))
	assert.Equal(t, "headers[0].value", childPath("headers[0]", "value"))
}

func TestVisitStringsNestedMappingPaths(t *testing.T) {
	t.Parallel()

	v := cty.ObjectVal(map[string]cty.Value{
		"outer": cty.ObjectVal(map[string]cty.Value{
			"inner": cty.ObjectVal(map[string]cty.Value{
				"leaf": cty.StringVal("deep"),
			}),
		}),
	})

	var paths []string
	visitStrings(v, func(path, value string) {
		paths = append(paths, path)
	})
	assert.Equal(t, []string{"outer.inner.leaf"}, paths)
}

func TestRewriteStringsPreservesShape(t *testing.T) {
	t.Parallel()

	v := cty.ObjectVal(map[string]cty.Value{
		"emptyObj": cty.EmptyObjectVal,
		"emptyArr": cty.EmptyTupleVal,
		"list":     cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
		"map":      cty.MapVal(map[string]cty.Value{"k": cty.StringVal("v")}),
		"set":      cty.SetVal([]cty.Value{cty.StringVal("s")}),
		"num":      cty.NumberIntVal(9),
		"null":     cty.NullVal(cty.DynamicPseudoType),
	})

	got := rewriteStrings(v, func(s string) string { return s + "!" })

	want := cty.ObjectVal(map[string]cty.Value{
		"emptyObj": cty.EmptyObjectVal,
		"emptyArr": cty.EmptyTupleVal,
		"list":     cty.ListVal([]cty.Value{cty.StringVal("a!"), cty.StringVal("b!")}),
		"map":      cty.MapVal(map[string]cty.Value{"k": cty.StringVal("v!")}),
		"set":      cty.SetVal([]cty.Value{cty.StringVal("s!")}),
		"num":      cty.NumberIntVal(9),
		"null":     cty.NullVal(cty.DynamicPseudoType),
	})
	assert.True(t, want.RawEquals(got), "want %#v, got %#v", want, got)
}

func TestRewriteStringsLeaves(t *testing.T) {
	t.Parallel()

	t.Run("bare string root", func(t *testing.T) {
		got := rewriteStrings(cty.StringVal("x"), func(s string) string { return s + s })
		require.Equal(t, "xx", got.AsString())
	})

	t.Run("bare number root", func(t *testing.T) {
		got := rewriteStrings(cty.NumberIntVal(4), func(s string) string { return "" })
		assert.True(t, cty.NumberIntVal(4).RawEquals(got))
	})

	t.Run("nil root passes through", func(t *testing.T) {
		got := rewriteStrings(cty.NilVal, func(s string) string { return "" })
		assert.Equal(t, cty.NilVal, got)
	})
}
