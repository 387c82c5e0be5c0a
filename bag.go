package lineq

import (
	"slices"
	"strconv"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer"
)

// occurrence of an expected line in the bag
type occurrence struct {
	icontainer.SListNode[*occurrence]
	Line
}

type occurrences = icontainer.SBList[*occurrence]

// bag is the multiset of expected lines that is depleted by matching. Lines
// are grouped by their comparison key, each group is a FIFO of the line's
// occurrences in file order.
type bag struct {
	groups map[string]*occurrences
	size   int
}

func newBag(keys []string, lines []string) *bag {
	b := &bag{groups: make(map[string]*occurrences, len(keys))}
	for i, k := range keys {
		ls := b.groups[k]
		if ls == nil {
			ls = new(occurrences)
			b.groups[k] = ls
		}
		ls.PushBack(&occurrence{Line: Line{No: i + 1, Text: lines[i]}})
	}
	b.size = len(keys)
	return b
}

// take consumes the earliest occurrence with key k
func (b *bag) take(k string) bool {
	ls := b.groups[k]
	if ls == nil || ls.Len() == 0 {
		return false
	}
	ls.DropFront(1)
	b.size--
	return true
}

func (b *bag) remaining() []Line {
	res := make([]Line, 0, b.size)
	for _, ls := range b.groups {
		n := ls.Front()
		for i := ls.Len(); i > 0; i-- {
			res = append(res, n.Line)
			n = n.IterNext()
		}
	}
	slices.SortFunc(res, func(a, b Line) int { return a.No - b.No })
	return res
}

// keyFunc computes the comparison key of a line. Two lines are equivalent
// iff their keys are equal.
type keyFunc func(line string) (string, error)

func (o ColumnOrder) keyFunc(split *Splitter) keyFunc {
	switch o.mode {
	case colInFile:
		return func(line string) (string, error) { return line, nil }
	case colSet:
		return func(line string) (string, error) {
			toks, err := split.Split(line)
			if err != nil {
				return "", err
			}
			n := len(toks)
			slices.Sort(toks)
			return fieldsKey(n, slices.Compact(toks)), nil
		}
	case colMultiset:
		return func(line string) (string, error) {
			toks, err := split.Split(line)
			if err != nil {
				return "", err
			}
			slices.Sort(toks)
			return fieldsKey(len(toks), toks), nil
		}
	}
	panic("unreachable code")
}

// fieldsKey encodes field count and fields length-prefixed so that no two
// different field lists have the same key
func fieldsKey(n int, fields []string) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n))
	for _, f := range fields {
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(len(f)))
		sb.WriteByte(':')
		sb.WriteString(f)
	}
	return sb.String()
}
