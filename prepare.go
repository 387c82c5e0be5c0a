package lineq

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Prepare creates expected-lines files from sample texts.
type Prepare struct {
	Trim LineTrim
	// Encoding of the sample text. The prepared text is always UTF-8.
	Encoding encoding.Encoding
}

// Text copies the lines from subj to exp. Line separators are kept as they
// are in subj.
func (p Prepare) Text(exp io.Writer, subj io.Reader) (err error) {
	if p.Encoding != nil {
		subj = transform.NewReader(subj, p.Encoding.NewDecoder())
	}
	var sep lineSepScanner
	scn := bufio.NewScanner(subj)
	scn.Buffer(nil, MaxLineLen)
	scn.Split(sep.ScanLines)
	for scn.Scan() {
		line := scn.Bytes()
		if p.Trim {
			line = bytes.TrimSpace(line)
		}
		if _, err = exp.Write(line); err != nil {
			return err
		}
		if _, err = exp.Write(sep); err != nil {
			return err
		}
	}
	return scn.Err()
}

// WriteLines writes each line terminated by "\n" to w.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		res, cr := dropCR(data)
		*lsc = data[len(data)-cr:]
		return len(data), res, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}
