package lineq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxLineLen is the maximum length in bytes of a line read by ReadLines.
const MaxLineLen = 16 * 1024 * 1024

// Encoding returns the text encoding for the IANA name. The empty name
// selects UTF-8.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return unicode.UTF8, nil
	case "ascii", "us-ascii":
		// ASCII is a subset of UTF-8
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	switch {
	case err != nil:
		return nil, fmt.Errorf("encoding '%s': %w", name, err)
	case enc == nil:
		return nil, fmt.Errorf("unsupported encoding '%s'", name)
	}
	return enc, nil
}

// ReadLines reads all lines from r decoded with enc. Lines end with "\n" or
// "\r\n" and the line ends are not part of the lines. A nil enc reads UTF-8.
func ReadLines(r io.Reader, enc encoding.Encoding) (lines []string, err error) {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	scn := bufio.NewScanner(r)
	scn.Buffer(nil, MaxLineLen)
	for scn.Scan() {
		lines = append(lines, scn.Text())
	}
	if err = scn.Err(); err != nil {
		return lines, fmt.Errorf("line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}

// OpenLines reads the lines of the file name. Files with extension .gz or
// .zst are decompressed with gzip or zstandard respectively.
func OpenLines(name string, enc encoding.Encoding) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}
	lines, err := ReadLines(r, enc)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", name, err)
	}
	return lines, nil
}
