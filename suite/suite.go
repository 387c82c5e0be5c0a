// Package suite runs validation suites that check generated files either
// for byte identity against recorded MD5 checksums or for equivalence with
// expected lines. Suites are read from YAML or TOML files:
//
//	parallel: 4
//	checks:
//	  - name: report
//	    file: out/report.tsv
//	    expectedFile: expected/report.lines
//	    columnOrder: permuted
//	    delimiter: '\t'
//	    trim: on
//	  - file: out/archive.bin
//	    md5: true
//
// Relative paths are resolved against the directory of the suite file.
package suite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/lineq"
)

// Format of suite files
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatOf selects the format from the extension of the file name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unknown suite format '%s'", filepath.Ext(name))
}

var ErrCheck = errors.New("invalid check")

// Check is one validation of a file.
type Check struct {
	Name string `yaml:"name" toml:"name"`
	File string `yaml:"file" toml:"file"`

	// Verify the MD5 checksum of File from the checksum file Checksum that
	// defaults to File+".md5"
	MD5      bool   `yaml:"md5" toml:"md5"`
	Checksum string `yaml:"checksum" toml:"checksum"`

	// Expected lines either inline or from a UTF-8 file
	Expected     []string `yaml:"expected" toml:"expected"`
	ExpectedFile string   `yaml:"expectedFile" toml:"expectedFile"`

	LineOrder   lineq.LineOrder   `yaml:"lineOrder" toml:"lineOrder"`
	ColumnOrder lineq.ColumnOrder `yaml:"columnOrder" toml:"columnOrder"`
	Trim        lineq.LineTrim    `yaml:"trim" toml:"trim"`
	Delimiter   string            `yaml:"delimiter" toml:"delimiter"`
	Enclosure   string            `yaml:"enclosure" toml:"enclosure"`
	// Encoding of File, default is UTF-8
	Encoding string `yaml:"encoding" toml:"encoding"`
}

func (c *Check) validate() error {
	switch {
	case c.File == "":
		return fmt.Errorf("%w: missing file", ErrCheck)
	case c.MD5 && (c.Expected != nil || c.ExpectedFile != ""):
		return fmt.Errorf("%w '%s': md5 check with expected lines", ErrCheck, c.Name)
	case !c.MD5 && c.Expected == nil && c.ExpectedFile == "":
		return fmt.Errorf("%w '%s': no expected lines", ErrCheck, c.Name)
	case c.Expected != nil && c.ExpectedFile != "":
		return fmt.Errorf("%w '%s': expected lines and expected file", ErrCheck, c.Name)
	}
	return nil
}

// Checker returns the line checker configured by c.
func (c *Check) Checker() lineq.Checker {
	return lineq.Checker{
		LineOrder:   c.LineOrder,
		ColumnOrder: c.ColumnOrder,
		Trim:        c.Trim,
		Delimiter:   c.Delimiter,
		Enclosure:   c.Enclosure,
	}
}

type Suite struct {
	// Default number of checks run concurrently
	Parallel int     `yaml:"parallel" toml:"parallel"`
	Checks   []Check `yaml:"checks" toml:"checks"`

	// Base directory of relative paths
	Dir    string       `yaml:"-" toml:"-"`
	Logger *slog.Logger `yaml:"-" toml:"-"`
}

func Load(name string) (*Suite, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	s, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.Dir = filepath.Dir(name)
	return s, nil
}

func Decode(r io.Reader, f Format) (s *Suite, err error) {
	s = new(Suite)
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(s)
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(s)
	default:
		return nil, fmt.Errorf("unknown suite format %d", f)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for i := range s.Checks {
		c := &s.Checks[i]
		if c.Name == "" {
			c.Name = c.File
		}
		if err = c.validate(); err != nil {
			return nil, fmt.Errorf("check %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Outcome of running one check
type Outcome struct {
	Check *Check
	OK    bool
	// Result of line checks, nil for MD5 checks or on error
	Result *lineq.Result
	Err    error
}

// Run runs all checks with at most parallel checks at a time. If parallel
// is not positive, s.Parallel is used and if that is not positive either all
// checks run concurrently. The outcomes are in the order of s.Checks. Run
// only returns an error if ctx is done before all checks ran.
func (s *Suite) Run(ctx context.Context, parallel int) ([]Outcome, error) {
	if parallel <= 0 {
		parallel = s.Parallel
	}
	if parallel <= 0 {
		parallel = -1
	}
	outs := make([]Outcome, len(s.Checks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range s.Checks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outs[i] = s.run(&s.Checks[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outs, err
	}
	return outs, nil
}

func (s *Suite) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Dir, p)
}

func (s *Suite) run(c *Check) (o Outcome) {
	o.Check = c
	log := s.Logger
	if log != nil {
		log = log.With("check", c.Name)
		log.Debug("run check", "file", c.File, "md5", c.MD5)
	}
	defer func() {
		if log == nil {
			return
		}
		switch {
		case o.Err != nil:
			log.Error("check failed", "error", o.Err)
		case !o.OK:
			log.Warn("check mismatch")
		default:
			log.Debug("check passed")
		}
	}()
	file := s.path(c.File)
	if c.MD5 {
		o.OK, o.Err = lineq.VerifyMD5File(file, s.path(c.Checksum))
		return o
	}
	enc, err := lineq.Encoding(c.Encoding)
	if err != nil {
		o.Err = err
		return o
	}
	expected := c.Expected
	if c.ExpectedFile != "" {
		if expected, err = lineq.OpenLines(s.path(c.ExpectedFile), nil); err != nil {
			o.Err = err
			return o
		}
	}
	chk := c.Checker()
	chk.Logger = log
	if o.Result, o.Err = chk.File(file, enc, expected); o.Err == nil {
		o.OK = o.Result.Equivalent()
	}
	return o
}
