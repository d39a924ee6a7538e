// Package textsource loads the text to estimate from files or stdin.
package textsource

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// StdinPath selects standard input.
const StdinPath = "-"

// Load reads the whole text from path, or from stdin when path is "-".
func Load(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		return Read(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only text file.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read consumes r and returns its content as text.
// Invalid UTF-8 sequences become U+FFFD.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
