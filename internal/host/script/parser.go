// Package script runs button scripts against a simulated notepad, for demos and end to end tests.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Script](
	participle.Lexer(Lexer),
	participle.Elide("Comment", "Whitespace"),
)

// Parse reads a script. name is only used in error messages.
func Parse(name string, r io.Reader) (*Script, error) {
	s, err := parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return s, nil
}

func ParseString(name, src string) (*Script, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return s, nil
}

func ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(filename, file)
}
