package lineq

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleSplitter() {
	split, err := NewSplitter(",", `"`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fields, _ := split.Split(`A,"B,C",D`)
	fmt.Printf("%d %q\n", len(fields), fields)
	// Output:
	// 3 ["A" "\"B,C\"" "D"]
}

func TestSplitter_Split(t *testing.T) {
	const pmcLine = `J Clin Invest,0021-9738,1558-8238,1940,19,"Index, vol.1-17",1,10.1172/JCI101100,PMC548872,0,,live`
	tests := []struct {
		name   string
		delim  string
		encl   string
		line   string
		expect []string
	}{
		{"enclosure", ",", `"`, `A,"B,C",D`, []string{"A", `"B,C"`, "D"}},
		{"trailing delimiter", ",", "", "a,b,", []string{"a", "b", ""}},
		{"trailing delimiter enclosed", ",", `"`, "a,b,", []string{"a", "b", ""}},
		{"leading delimiter", ",", "", ",a", []string{"", "a"}},
		{"no delimiter", ";", `"`, "a,b", []string{"a,b"}},
		{"empty line", ",", "", "", []string{""}},
		{"only delimiters", ",", "", ",,", []string{"", "", ""}},
		{"unclosed enclosure", ",", `"`, `a,"b,c,d`, []string{"a", `"b,c,d`}},
		{"enclosure at end", ",", `"`, `a,"b,c"`, []string{"a", `"b,c"`}},
		{"two enclosures", ",", `"`, `"a,b","c,d",e`, []string{`"a,b"`, `"c,d"`, "e"}},
		{"enclosure inside field", ",", `'`, `x'a,b'y,z`, []string{`x'a,b'y`, "z"}},
		{"regexp delimiter", `\s*\|\s*`, "", "a | b|c", []string{"a", "b", "c"}},
		{"tab", `\t`, "", "a\tb\t", []string{"a", "b", ""}},
		{"multi-rune enclosure", ",", `''`, `a,''b,c'',d`, []string{"a", `''b,c''`, "d"}},
		{"pmc", ",", `"`, pmcLine, []string{
			"J Clin Invest", "0021-9738", "1558-8238", "1940", "19",
			`"Index, vol.1-17"`, "1", "10.1172/JCI101100", "PMC548872", "0", "", "live",
		}},
		{"pmc other enclosure", ",", ";", pmcLine, []string{
			"J Clin Invest", "0021-9738", "1558-8238", "1940", "19", `"Index`,
			` vol.1-17"`, "1", "10.1172/JCI101100", "PMC548872", "0", "", "live",
		}},
		{"pmc no enclosure", ",", "", pmcLine, []string{
			"J Clin Invest", "0021-9738", "1558-8238", "1940", "19", `"Index`,
			` vol.1-17"`, "1", "10.1172/JCI101100", "PMC548872", "0", "", "live",
		}},
		{"regexp meta enclosure", ",", "*", "a,*b,c*,d", []string{"a", "*b,c*", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := NewSplitter(tt.delim, tt.encl)
			require.NoError(t, err)
			fields, err := split.Split(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, fields)
		})
	}
}

func TestSplitter_emptyDelimiter(t *testing.T) {
	for _, delim := range []string{"", "x*", "(a|)", "^"} {
		_, err := NewSplitter(delim, `"`)
		assert.True(t, errors.Is(err, ErrEmptyDelimiter), "delimiter `%s`: %v", delim, err)
	}
	_, err := LiteralSplitter("", "")
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
}

func TestSplitter_zeroWidthMatch(t *testing.T) {
	// \b does not match the empty string but matches with zero width
	split, err := NewSplitter(`\b`, "")
	require.NoError(t, err)
	_, err = split.Split("foo bar")
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
}

func TestSplitter_badPattern(t *testing.T) {
	_, err := NewSplitter("(", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDelimiter)
}

func TestLiteralSplitter(t *testing.T) {
	split, err := LiteralSplitter("|", "")
	require.NoError(t, err)
	fields, err := split.Split("a|b||c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, fields)
	assert.Equal(t, `\|`, split.Delimiter())
}

func TestSplitter_Fields(t *testing.T) {
	split, err := NewSplitter(",", `"`)
	require.NoError(t, err)
	t.Run("trailing delimiter", func(t *testing.T) {
		fields, err := split.Fields(`"D015430",`, false)
		require.NoError(t, err)
		assert.Equal(t, []string{`"D015430"`}, fields)
	})
	t.Run("strip enclosures", func(t *testing.T) {
		fields, err := split.Fields(`"D015430",`, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"D015430"}, fields)
	})
	t.Run("trim", func(t *testing.T) {
		fields, err := split.Fields(` a , "b, c" ,,`, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b, c"}, fields)
	})
}
