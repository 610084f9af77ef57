package contract

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCanonical(t *testing.T, v any) string {
	t.Helper()
	b, err := MarshalCanonical(v)
	require.NoError(t, err)
	return string(b)
}

func TestCanonicalSortsKeys(t *testing.T) {
	got := mustCanonical(t, map[string]any{"b": 1, "a": 2, "c": 3})
	assert.Equal(t, `{"a":2,"b":1,"c":3}`, got)
}

func TestCanonicalKeyOrderUTF16(t *testing.T) {
	// U+FF61 (halfwidth ideographic full stop) encodes as one UTF-16
	// unit 0xFF61; U+1D306 is a surrogate pair starting 0xD834. UTF-16
	// order puts the surrogate pair first, UTF-8 byte order would not.
	got := mustCanonical(t, map[string]any{
		"｡": 1,
		"\U0001d306": 2,
	})
	assert.Equal(t, "{\"\U0001d306\":2,\"｡\":1}", got)
}

func TestCanonicalNoHTMLEscaping(t *testing.T) {
	got := mustCanonical(t, map[string]any{"k": "<a href=\"x\"> & more"})
	assert.Equal(t, `{"k":"<a href=\"x\"> & more"}`, got)
}

func TestCanonicalNFCNormalization(t *testing.T) {
	// "e" + combining acute composes to U+00E9.
	composed := mustCanonical(t, "café")
	decomposed := mustCanonical(t, "café")
	assert.Equal(t, composed, decomposed)
}

func TestCanonicalControlCharacters(t *testing.T) {
	got := mustCanonical(t, "a\nb\tcd")
	assert.Equal(t, `"a\nb\tcd"`, got)
}

func TestCanonicalWholeFloatsAsIntegers(t *testing.T) {
	got := mustCanonical(t, map[string]any{"n": float64(42)})
	assert.Equal(t, `{"n":42}`, got)

	got = mustCanonical(t, map[string]any{"n": 42.5})
	assert.Equal(t, `{"n":42.5}`, got)
}

func TestCanonicalJSONNumber(t *testing.T) {
	got := mustCanonical(t, map[string]any{
		"big":   json.Number("9007199254740993"),
		"small": json.Number("1.5"),
	})
	assert.Equal(t, `{"big":9007199254740993,"small":1.5}`, got)
}

func TestCanonicalRejectsNonFinite(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"n": math.Inf(1)})
	assert.Error(t, err)

	_, err = MarshalCanonical(map[string]any{"n": math.NaN()})
	assert.Error(t, err)
}

func TestCanonicalRejectsUnsupportedType(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestCanonicalNested(t *testing.T) {
	got := mustCanonical(t, map[string]any{
		"list": []any{nil, true, "x", map[string]any{"z": 1, "a": 2}},
	})
	assert.Equal(t, `{"list":[null,true,"x",{"a":2,"z":1}]}`, got)
}
