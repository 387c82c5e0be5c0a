package lineq

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MD5Suffix is appended to a file name to get the name of its checksum file.
const MD5Suffix = ".md5"

// MD5File computes the hex encoded MD5 checksum of the file name.
func MD5File(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("md5 %s: %w", name, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteMD5File writes the checksum of file name to name+MD5Suffix in the
// format "<checksum> <base name>" and returns the name of the checksum file.
func WriteMD5File(name string) (sumFile string, err error) {
	sum, err := MD5File(name)
	if err != nil {
		return "", err
	}
	sumFile = name + MD5Suffix
	line := fmt.Sprintf("%s %s\n", sum, filepath.Base(name))
	if err = os.WriteFile(sumFile, []byte(line), 0666); err != nil {
		return "", err
	}
	return sumFile, nil
}

// VerifyMD5File checks the checksum of file name against the checksum
// recorded in sumFile. If sumFile is empty name+MD5Suffix is used.
func VerifyMD5File(name, sumFile string) (bool, error) {
	if sumFile == "" {
		sumFile = name + MD5Suffix
	}
	expect, err := readMD5Sum(sumFile)
	if err != nil {
		return false, err
	}
	sum, err := MD5File(name)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(expect, sum), nil
}

func readMD5Sum(sumFile string) (string, error) {
	f, err := os.Open(sumFile)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scn := bufio.NewScanner(f)
	if !scn.Scan() {
		if err = scn.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%s: empty checksum file", sumFile)
	}
	fields := strings.Fields(scn.Text())
	if len(fields) == 0 {
		return "", fmt.Errorf("%s: no checksum in first line", sumFile)
	}
	return fields[0], nil
}
