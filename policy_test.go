package lineq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineOrder(t *testing.T) {
	for _, s := range []string{"any", "ANY_ORDER", "any-order", ""} {
		o, err := ParseLineOrder(s)
		require.NoError(t, err, s)
		assert.Equal(t, LinesAnyOrder, o, s)
	}
	for _, s := range []string{"as-in-file", "AS_IN_FILE", "strict"} {
		o, err := ParseLineOrder(s)
		require.NoError(t, err, s)
		assert.Equal(t, LinesAsInFile, o, s)
	}
	_, err := ParseLineOrder("sorted")
	assert.ErrorIs(t, err, ErrPolicy)
}

func TestParseColumnOrder(t *testing.T) {
	tests := map[string]ColumnOrder{
		"":           ColumnsAsInFile,
		"as_in_file": ColumnsAsInFile,
		"ANY_ORDER":  ColumnsAnyOrder,
		"any":        ColumnsAnyOrder,
		"permuted":   ColumnsPermuted,
		"multiset":   ColumnsPermuted,
	}
	for s, expect := range tests {
		o, err := ParseColumnOrder(s)
		require.NoError(t, err, s)
		assert.Equal(t, expect, o, s)
	}
	_, err := ParseColumnOrder("x")
	assert.ErrorIs(t, err, ErrPolicy)
}

func TestParseLineTrim(t *testing.T) {
	for _, s := range []string{"on", "ON", "true", "yes", "1"} {
		lt, err := ParseLineTrim(s)
		require.NoError(t, err, s)
		assert.Equal(t, TrimOn, lt, s)
	}
	for _, s := range []string{"off", "false", "no", "0", ""} {
		lt, err := ParseLineTrim(s)
		require.NoError(t, err, s)
		assert.Equal(t, TrimOff, lt, s)
	}
	_, err := ParseLineTrim("maybe")
	assert.ErrorIs(t, err, ErrPolicy)
}

func TestPolicy_textRoundTrip(t *testing.T) {
	for _, o := range []ColumnOrder{ColumnsAsInFile, ColumnsAnyOrder, ColumnsPermuted} {
		txt, err := o.MarshalText()
		require.NoError(t, err)
		var back ColumnOrder
		require.NoError(t, back.UnmarshalText(txt))
		assert.Equal(t, o, back)
	}
	for _, o := range []LineOrder{LinesAnyOrder, LinesAsInFile} {
		var back LineOrder
		require.NoError(t, back.UnmarshalText([]byte(o.String())))
		assert.Equal(t, o, back)
	}
}

func TestZeroPolicies(t *testing.T) {
	var (
		lo LineOrder
		co ColumnOrder
		lt LineTrim
	)
	assert.Equal(t, LinesAnyOrder, lo)
	assert.Equal(t, ColumnsAsInFile, co)
	assert.Equal(t, TrimOff, lt)
}
