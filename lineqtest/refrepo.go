// Package lineqtest supports the use of lineq in your Go tests.
//
// Example reads the expected lines from testdata/TestReport.lines:
//
//	func TestReport(t *testing.T) {
//		var out bytes.Buffer
//		writeReport(&out)
//		lineqtest.Error(t, "", &out, lineq.Checker{
//			ColumnOrder: lineq.ColumnsAnyOrder,
//			Delimiter:   `\t`,
//		})
//	}
//
// Expected lines file:
//
//	id	name	state
//	17	foo	open
//	4	bar	closed
package lineqtest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/fractalqb/lineq"
)

// When this environment variable is set to a regexp and the name of the current
// test matches calls to Error or Fatal will record the actual text as new
// expected lines instead of comparing it. E.g.
//
//	LINEQTEST_RECORD=TestRecording go test .
const RecordEnv = "LINEQTEST_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

func Error(t testing.TB, hint string, actual io.Reader, chk lineq.Checker) error {
	return defaultConfig.Error(t, hint, actual, chk)
}

func Fatal(t testing.TB, hint string, actual io.Reader, chk lineq.Checker) {
	defaultConfig.Fatal(t, hint, actual, chk)
}

func Record(t testing.TB, hint string, actual io.Reader) {
	defaultConfig.Record(t, hint, actual)
}

// Lines compares in-memory lines and reports mismatches with t.Errorf. It
// returns true iff actual is equivalent to expected.
func Lines(t testing.TB, actual, expected []string, chk lineq.Checker) bool {
	t.Helper()
	res, err := chk.Lines(actual, expected)
	if err != nil {
		t.Error(err)
		return false
	}
	Report(t, "", res)
	return res.Equivalent()
}

type RefRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".lines"
	NoSuffix  = "\x00"
)

func (rr RefRepo) Filename(t testing.TB, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	RefFileName func(t testing.TB, hint string) string
	// Encoding of the actual text, nil means UTF-8. Expected lines files are
	// always UTF-8.
	Encoding        encoding.Encoding
	RecordOverwrite bool
	// Keep a copy of the actual text next to the expected lines file when
	// the comparison fails.
	KeepActual bool
}

var defaultConfig = Config{
	RefFileName:     RefRepo{Dir: GoTestdataDir}.Filename,
	RecordOverwrite: false,
	KeepActual:      true,
}

func (cfg Config) Error(t testing.TB, hint string, actual io.Reader, chk lineq.Checker) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, actual)
		return nil
	}
	err := cfg.compare(t, hint, actual, chk)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t testing.TB, hint string, actual io.Reader, chk lineq.Checker) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, actual)
		return
	}
	if err := cfg.compare(t, hint, actual, chk); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("lineqtest: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg *Config) compare(t testing.TB, hint string, actual io.Reader, chk lineq.Checker) (err error) {
	reffile := cfg.RefFileName(t, hint)
	if _, err := os.Stat(reffile); os.IsNotExist(err) {
		t.Logf("to record an expected lines file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("expected lines file %s does not exist", reffile)
	}
	expected, err := lineq.OpenLines(reffile, nil)
	if err != nil {
		return err
	}
	if !cfg.KeepActual {
		return cfg.check(t, hint, chk, actual, expected)
	}
	keepfile := strings.TrimSuffix(reffile, StdSuffix)
	k, err := os.CreateTemp(filepath.Dir(keepfile), filepath.Base(keepfile)+".")
	if err != nil {
		return err
	}
	defer func() {
		k.Close()
		if err == nil {
			os.Remove(k.Name())
		} else {
			t.Logf("actual text kept in %s", k.Name())
		}
	}()
	return cfg.check(t, hint, chk, io.TeeReader(actual, k), expected)
}

func (cfg *Config) check(t testing.TB, hint string, chk lineq.Checker, actual io.Reader, expected []string) error {
	res, err := chk.Reader(actual, cfg.Encoding, expected)
	if err != nil {
		return err
	}
	Report(t, hint, res)
	return res.Err()
}

func (cfg Config) Record(t testing.TB, hint string, actual io.Reader) {
	t.Helper()
	reffile := cfg.RefFileName(t, hint)
	if _, err := os.Stat(reffile); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("lineqtest: expected lines file '%s' already exists", reffile)
		return
	}
	dir := filepath.Dir(reffile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, 0777); err != nil {
			t.Fatal(err)
			return
		}
	}
	wr, err := os.Create(reffile)
	if err != nil {
		t.Fatal(err)
		return
	}
	defer wr.Close()
	if err = (lineq.Prepare{Encoding: cfg.Encoding}).Text(wr, actual); err != nil {
		t.Error(err)
	}
	t.Errorf("lineq test-recorder wrote: %s", reffile)
}

// Report logs the unmatched actual lines as test errors and the remaining
// expected lines as test log messages.
func Report(t testing.TB, hint string, res *lineq.Result) {
	t.Helper()
	if hint == "" {
		hint = "actual"
	}
	for _, l := range res.Unmatched {
		t.Errorf("%s:%d [%s]", hint, l.No, l.Text)
	}
	if res.ActualCount != res.ExpectedCount {
		t.Errorf("%s: %d lines, expected %d", hint, res.ActualCount, res.ExpectedCount)
	}
	for _, l := range res.Remaining {
		lnstr := strconv.Itoa(l.No)
		pad := strings.Repeat(" ", utf8.RuneCountInString(hint)+1)
		t.Logf("%sexpected:%s [%s]", pad, lnstr, l.Text)
	}
}
