/*
Package lineq checks whether a text, typically a generated output file,
contains exactly an expected set of lines. "Exactly" can be weaker than byte
identity: lines may appear in any order, the fields of a line may be
permuted and white space around lines may be ignored. The answer is a
verdict plus the lines that did not match on either side. It is not a diff
tool, lines are never aligned.

The simplest check compares lines as a whole in any order:

	res, err := lineq.Compare(
		[]string{"b", "a"},
		[]string{"a", "b"},
		"", lineq.LinesAnyOrder, lineq.ColumnsAsInFile, lineq.TrimOff,
	)
	// res.Equivalent() == true

Each actual line consumes one expected line. An expected line that was
matched once cannot match another actual line, i.e. duplicates must appear
as often in the actual text as in the expected lines.

# Line Order

With LinesAnyOrder an actual line matches the first not yet consumed
expected line that is equivalent to it. With LinesAsInFile the actual line i
must be equivalent to the expected line i.

# Column Order

With ColumnsAsInFile two lines are equivalent if they are equal. Otherwise
lines are split into fields on the delimiter, a regular expression, and
compared field-wise ignoring the order of fields:

	> a,b,c
	> c,b,a

are equivalent with ColumnsAnyOrder and delimiter ",". ColumnsAnyOrder only
compares the number of fields and the set of field values, so

	> a,a,b
	> a,b,b

are also equivalent. This is the historical behavior of the check. Use
ColumnsPermuted to require that one line's fields are a permutation of the
other line's fields.

# Line Trim

With TrimOn leading and trailing white space is removed from all actual and
expected lines before anything else happens.

# Splitting Fields

A Splitter splits lines on a delimiter pattern. Delimiters between a pair of
enclosure markers are not split points:

	A,"B,C",D

splits into the three fields `A`, `"B,C"` and `D` with enclosure `"`. Empty
fields are kept, `a,b,` has three fields. An enclosure marker that is never
closed extends to the end of line. Delimiters that match the empty string
are rejected with ErrEmptyDelimiter.

# Checksums

For artifacts that must be byte-identical, MD5File, WriteMD5File and
VerifyMD5File handle checksums recorded in sidecar files name+".md5".
*/
package lineq
