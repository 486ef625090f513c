// ABOUTME: Reads text files shown in the scroll container
// ABOUTME: Splits content into display lines, normalizing line endings

// Package content loads the text a scroll container displays.
package content

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxLineLength is the longest line Read accepts
const MaxLineLength = 1024 * 1024

// ReadFile reads a text file into lines
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	return Read(file)
}

// Read splits r into lines.
// Blank lines are kept; a trailing newline does not add an empty last line.
func Read(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading content: %w", err)
	}

	return lines, nil
}
