package lineq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPolicy is wrapped by errors from parsing policy values.
var ErrPolicy = errors.New("invalid policy")

// LineOrder tells whether the lines of the actual text must appear in the
// same order as the expected lines. The zero value is LinesAnyOrder.
type LineOrder struct{ asInFile bool }

var (
	// Actual lines may match any not yet matched expected line.
	LinesAnyOrder = LineOrder{}
	// Actual line i must match expected line i.
	LinesAsInFile = LineOrder{asInFile: true}
)

func (o LineOrder) String() string {
	if o.asInFile {
		return "as-in-file"
	}
	return "any"
}

func (o LineOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *LineOrder) UnmarshalText(txt []byte) (err error) {
	*o, err = ParseLineOrder(string(txt))
	return err
}

func ParseLineOrder(s string) (LineOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "any-order", "any_order", "":
		return LinesAnyOrder, nil
	case "as-in-file", "as_in_file", "strict":
		return LinesAsInFile, nil
	}
	return LinesAnyOrder, fmt.Errorf("%w: line order '%s'", ErrPolicy, s)
}

type columnMode uint8

const (
	colInFile columnMode = iota
	colSet
	colMultiset
)

// ColumnOrder tells how the fields of two lines are compared. The zero value
// is ColumnsAsInFile.
type ColumnOrder struct{ mode columnMode }

var (
	// Lines are compared as a whole for equality.
	ColumnsAsInFile = ColumnOrder{colInFile}
	// Lines are equal if they have the same number of fields and the same
	// set of distinct field values. This does not count duplicates, i.e.
	// "a,a,b" equals "a,b,b".
	ColumnsAnyOrder = ColumnOrder{colSet}
	// Lines are equal if the fields of one line are a permutation of the
	// fields of the other line.
	ColumnsPermuted = ColumnOrder{colMultiset}
)

func (o ColumnOrder) String() string {
	switch o.mode {
	case colSet:
		return "any"
	case colMultiset:
		return "permuted"
	}
	return "as-in-file"
}

func (o ColumnOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *ColumnOrder) UnmarshalText(txt []byte) (err error) {
	*o, err = ParseColumnOrder(string(txt))
	return err
}

func ParseColumnOrder(s string) (ColumnOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "as-in-file", "as_in_file", "strict", "":
		return ColumnsAsInFile, nil
	case "any", "any-order", "any_order":
		return ColumnsAnyOrder, nil
	case "permuted", "multiset":
		return ColumnsPermuted, nil
	}
	return ColumnsAsInFile, fmt.Errorf("%w: column order '%s'", ErrPolicy, s)
}

// LineTrim tells whether leading and trailing white space is removed from
// all lines before comparison.
type LineTrim bool

const (
	TrimOff LineTrim = false
	TrimOn  LineTrim = true
)

func (t LineTrim) String() string {
	if t {
		return "on"
	}
	return "off"
}

func (t LineTrim) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *LineTrim) UnmarshalText(txt []byte) (err error) {
	*t, err = ParseLineTrim(string(txt))
	return err
}

func ParseLineTrim(s string) (LineTrim, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return TrimOn, nil
	case "off", "false", "no", "0", "":
		return TrimOff, nil
	}
	return TrimOff, fmt.Errorf("%w: line trim '%s'", ErrPolicy, s)
}

func (t LineTrim) apply(lines []string) []string {
	res := make([]string, len(lines))
	if t {
		for i, l := range lines {
			res[i] = strings.TrimSpace(l)
		}
	} else {
		copy(res, lines)
	}
	return res
}
