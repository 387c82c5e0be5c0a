package lineq

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyDelimiter is returned when a delimiter pattern is empty or matches
// the empty string.
var ErrEmptyDelimiter = errors.New("empty delimiter")

// Splitter splits lines into fields on a delimiter pattern. Delimiters that
// occur between an opening and a closing enclosure marker, e.g. a quote, are
// not split points. A Splitter is safe for concurrent use.
type Splitter struct {
	delim *regexp.Regexp
	encl  string
}

// NewSplitter compiles the regular expression delimiter. The enclosure
// marker is taken literally, an empty enclosure disables enclosures.
func NewSplitter(delimiter, enclosure string) (*Splitter, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	rgx, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, fmt.Errorf("delimiter: %w", err)
	}
	if rgx.MatchString("") {
		return nil, fmt.Errorf("delimiter `%s` matches empty string: %w",
			delimiter,
			ErrEmptyDelimiter,
		)
	}
	return &Splitter{delim: rgx, encl: enclosure}, nil
}

// LiteralSplitter is like NewSplitter but uses delimiter verbatim.
func LiteralSplitter(delimiter, enclosure string) (*Splitter, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	return NewSplitter(regexp.QuoteMeta(delimiter), enclosure)
}

// Delimiter returns the delimiter pattern
func (s *Splitter) Delimiter() string { return s.delim.String() }

// Enclosure returns the enclosure marker, if any
func (s *Splitter) Enclosure() string { return s.encl }

// Split returns the fields of line. Empty fields are never dropped, i.e. a
// trailing delimiter yields a trailing empty field. Enclosure markers remain
// part of their field. An enclosure that is not closed extends to the end of
// line.
func (s *Splitter) Split(line string) ([]string, error) {
	locs := s.delim.FindAllStringIndex(line, -1)
	fields := make([]string, 0, len(locs)+1)
	start, scan := 0, 0
NEXT_DELIM:
	for _, loc := range locs {
		if loc[0] == loc[1] {
			return nil, fmt.Errorf("zero-width delimiter match at %d: %w",
				loc[0],
				ErrEmptyDelimiter,
			)
		}
		if loc[0] < scan {
			continue
		}
		if s.encl != "" {
			for {
				open := strings.Index(line[scan:loc[0]], s.encl)
				if open < 0 {
					break
				}
				open += scan + len(s.encl)
				end := strings.Index(line[open:], s.encl)
				if end < 0 {
					break NEXT_DELIM
				}
				scan = open + end + len(s.encl)
				if scan > loc[0] {
					continue NEXT_DELIM
				}
			}
		}
		fields = append(fields, line[start:loc[0]])
		start, scan = loc[1], loc[1]
	}
	return append(fields, line[start:]), nil
}

// Fields splits line, trims white space from each field and drops the fields
// that are empty after trimming. With stripEnclosure, one pair of enclosure
// markers around a field is removed.
func (s *Splitter) Fields(line string, stripEnclosure bool) ([]string, error) {
	split, err := s.Split(line)
	if err != nil {
		return nil, err
	}
	res := split[:0]
	for _, f := range split {
		f = strings.TrimSpace(f)
		if stripEnclosure && s.encl != "" && len(f) >= 2*len(s.encl) &&
			strings.HasPrefix(f, s.encl) && strings.HasSuffix(f, s.encl) {
			f = f[len(s.encl) : len(f)-len(s.encl)]
		}
		if f != "" {
			res = append(res, f)
		}
	}
	return res, nil
}
