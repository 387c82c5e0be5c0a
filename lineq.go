package lineq

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding"
)

// Line is a line of text with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// Result of comparing actual lines with expected lines.
type Result struct {
	ActualCount   int
	ExpectedCount int
	// Actual lines that did not match any expected line
	Unmatched []Line
	// Expected lines not matched by any actual line
	Remaining []Line
}

// Equivalent is true iff there are as many actual lines as expected lines and
// each actual line matched an expected line.
func (r *Result) Equivalent() bool {
	return r.ActualCount == r.ExpectedCount && len(r.Unmatched) == 0
}

// Err returns nil if r is equivalent and a *MismatchError otherwise.
func (r *Result) Err() error {
	if r.Equivalent() {
		return nil
	}
	return &MismatchError{Result: r}
}

// Log reports the mismatches of r. Nothing is logged if r is equivalent.
func (r *Result) Log(log *slog.Logger) {
	if r.Equivalent() {
		return
	}
	if r.ActualCount == 0 {
		log.Info("file contains no output")
	}
	for _, l := range r.Unmatched {
		log.Info("line not in expected lines", "line", l.No, "text", l.Text)
	}
	log.Info("file does not contain expected lines",
		"lines", r.ActualCount,
		"expected", r.ExpectedCount,
		"all-matched", len(r.Unmatched) == 0,
	)
	for _, l := range r.Remaining {
		log.Info("expected line not in file", "line", l.No, "text", l.Text)
	}
}

// MismatchError is returned by Result.Err for results that are not equivalent.
type MismatchError struct {
	Result *Result
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d lines, %d expected: %d unmatched, %d remaining",
		e.Result.ActualCount,
		e.Result.ExpectedCount,
		len(e.Result.Unmatched),
		len(e.Result.Remaining),
	)
}

// LineError is returned when a line cannot be split into fields.
type LineError struct {
	Expected bool
	Line     int
	err      error
}

func (e LineError) Error() string {
	if e.Expected {
		return fmt.Sprintf("expected %d:%s", e.Line, e.err)
	}
	return fmt.Sprintf("actual %d:%s", e.Line, e.err)
}

func (e LineError) Unwrap() error { return e.err }

// Compare checks whether the actual lines are equivalent to the expected
// lines. The delimiter is a regular expression that is only used with a
// column order other than ColumnsAsInFile. Neither actual nor expected is
// modified.
func Compare(
	actual, expected []string,
	delimiter string,
	lo LineOrder,
	co ColumnOrder,
	lt LineTrim,
) (*Result, error) {
	chk := Checker{
		LineOrder:   lo,
		ColumnOrder: co,
		Trim:        lt,
		Delimiter:   delimiter,
	}
	return chk.Lines(actual, expected)
}

// Checker compares actual lines with expected lines. The zero value compares
// lines in any order, each as a whole and untrimmed. A Checker can be used
// concurrently.
type Checker struct {
	LineOrder   LineOrder
	ColumnOrder ColumnOrder
	Trim        LineTrim
	// Delimiter is a regular expression that splits lines into fields. It is
	// required unless ColumnOrder is ColumnsAsInFile.
	Delimiter string
	// Optional literal enclosure marker for fields, e.g. `"`
	Enclosure string
	// If not nil, mismatches are logged to Logger
	Logger *slog.Logger
}

func (chk Checker) keyFunc() (keyFunc, error) {
	if chk.ColumnOrder == ColumnsAsInFile {
		return chk.ColumnOrder.keyFunc(nil), nil
	}
	split, err := NewSplitter(chk.Delimiter, chk.Enclosure)
	if err != nil {
		return nil, err
	}
	return chk.ColumnOrder.keyFunc(split), nil
}

// Lines compares the actual lines with the expected lines.
func (chk Checker) Lines(actual, expected []string) (*Result, error) {
	key, err := chk.keyFunc()
	if err != nil {
		return nil, err
	}
	actual = chk.Trim.apply(actual)
	expected = chk.Trim.apply(expected)
	ekeys := make([]string, len(expected))
	for i, l := range expected {
		if ekeys[i], err = key(l); err != nil {
			return nil, LineError{Expected: true, Line: i + 1, err: err}
		}
	}
	res := &Result{
		ActualCount:   len(actual),
		ExpectedCount: len(expected),
	}
	if chk.LineOrder.asInFile {
		matched := make([]bool, len(expected))
		for i, l := range actual {
			k, err := key(l)
			if err != nil {
				return nil, LineError{Line: i + 1, err: err}
			}
			if i < len(ekeys) && ekeys[i] == k {
				matched[i] = true
			} else {
				res.Unmatched = append(res.Unmatched, Line{No: i + 1, Text: l})
			}
		}
		for i, m := range matched {
			if !m {
				res.Remaining = append(res.Remaining, Line{No: i + 1, Text: expected[i]})
			}
		}
	} else {
		exp := newBag(ekeys, expected)
		for i, l := range actual {
			k, err := key(l)
			if err != nil {
				return nil, LineError{Line: i + 1, err: err}
			}
			if !exp.take(k) {
				res.Unmatched = append(res.Unmatched, Line{No: i + 1, Text: l})
			}
		}
		res.Remaining = exp.remaining()
	}
	if chk.Logger != nil {
		res.Log(chk.Logger)
	}
	return res, nil
}

// Reader reads the actual lines from r using encoding enc and compares them
// with the expected lines. A nil enc means UTF-8.
func (chk Checker) Reader(r io.Reader, enc encoding.Encoding, expected []string) (*Result, error) {
	actual, err := ReadLines(r, enc)
	if err != nil {
		return nil, err
	}
	return chk.Lines(actual, expected)
}

// File compares the lines of file name with the expected lines. Compressed
// files are handled as with OpenLines.
func (chk Checker) File(name string, enc encoding.Encoding, expected []string) (*Result, error) {
	actual, err := OpenLines(name, enc)
	if err != nil {
		return nil, err
	}
	if chk.Logger != nil {
		chk.Logger = chk.Logger.With("file", name)
	}
	return chk.Lines(actual, expected)
}

// Files compares the lines of file actual with the lines of file expected.
// Both files are read with encoding enc.
func (chk Checker) Files(actual, expected string, enc encoding.Encoding) (*Result, error) {
	exp, err := OpenLines(expected, enc)
	if err != nil {
		return nil, err
	}
	return chk.File(actual, enc, exp)
}
