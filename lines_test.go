package lineq

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{"empty", "", nil},
		{"one newline", "\n", []string{""}},
		{"no final newline", "a\nb", []string{"a", "b"}},
		{"final newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "a\n\n\nb", []string{"a", "", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := ReadLines(strings.NewReader(tt.text), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, lines)
		})
	}
}

func TestReadLines_encoding(t *testing.T) {
	enc, err := Encoding("ISO-8859-1")
	require.NoError(t, err)
	lines, err := ReadLines(bytes.NewReader([]byte("caf\xe9\nna\xefve\n")), enc)
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "naïve"}, lines)
}

func TestEncoding(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf8", "US-ASCII", "windows-1252", "UTF-16LE"} {
		enc, err := Encoding(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}
	_, err := Encoding("no-such-encoding")
	assert.Error(t, err)
}

func TestOpenLines(t *testing.T) {
	dir := t.TempDir()
	const text = "line 1\nline 2\n"
	write := func(name string, compress func(*bytes.Buffer) error) string {
		var buf bytes.Buffer
		if compress == nil {
			buf.WriteString(text)
		} else {
			require.NoError(t, compress(&buf))
		}
		file := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(file, buf.Bytes(), 0666))
		return file
	}
	plain := write("out.txt", nil)
	gz := write("out.txt.gz", func(buf *bytes.Buffer) error {
		zw := gzip.NewWriter(buf)
		if _, err := zw.Write([]byte(text)); err != nil {
			return err
		}
		return zw.Close()
	})
	zst := write("out.txt.zst", func(buf *bytes.Buffer) error {
		zw, err := zstd.NewWriter(buf)
		if err != nil {
			return err
		}
		if _, err := zw.Write([]byte(text)); err != nil {
			return err
		}
		return zw.Close()
	})
	for _, file := range []string{plain, gz, zst} {
		lines, err := OpenLines(file, nil)
		require.NoError(t, err, file)
		assert.Equal(t, []string{"line 1", "line 2"}, lines, file)
	}

	broken := write("broken.gz", func(buf *bytes.Buffer) error {
		buf.WriteString("not gzip")
		return nil
	})
	_, err := OpenLines(broken, nil)
	assert.Error(t, err)
}
