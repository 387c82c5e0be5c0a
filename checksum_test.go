package lineq

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello world\n"), 0666))
	sum, err := MD5File(file)
	require.NoError(t, err)
	assert.Equal(t, "6f5902ac237024bdd0c176cb93063dc4", sum)
}

func TestMD5File_roundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(file, []byte("a\nb\n"), 0666))

	sumFile, err := WriteMD5File(file)
	require.NoError(t, err)
	assert.Equal(t, file+MD5Suffix, sumFile)
	sidecar, err := os.ReadFile(sumFile)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(sidecar), " out.txt\n"), string(sidecar))

	ok, err := VerifyMD5File(file, "")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, os.WriteFile(file, []byte("b\na\n"), 0666))
	ok, err = VerifyMD5File(file, sumFile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMD5File_badSidecar(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0666))

	_, err := VerifyMD5File(file, "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.md5")
	require.NoError(t, os.WriteFile(empty, nil, 0666))
	_, err = VerifyMD5File(file, empty)
	assert.Error(t, err)
}
