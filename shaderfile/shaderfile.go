// Package shaderfile reads combined GLSL files where each stage is introduced
// by a "#shader vertex" or "#shader fragment" line.
package shaderfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	directive = "#shader"
)

type sectionType int

const (
	sectionNone sectionType = iota - 1
	sectionVertex
	sectionFragment
)

// Sources holds the text of each stage found in a shader file.
type Sources struct {
	Vertex   string
	Fragment string
}

// SourceFileError reports a shader file that could not be opened or read.
type SourceFileError struct {
	Path string
	Err  error
}

func (e *SourceFileError) Error() string {
	return fmt.Sprintf("shader source %q: %v", e.Path, e.Err)
}

func (e *SourceFileError) Unwrap() error {
	return e.Err
}

// Load opens path and parses it with Parse.
func Load(path string) (Sources, error) {
	file, err := os.Open(path)
	if err != nil {
		return Sources{}, &SourceFileError{Path: path, Err: err}
	}
	defer file.Close()

	sources, err := Parse(file)
	if err != nil {
		return Sources{}, &SourceFileError{Path: path, Err: err}
	}
	return sources, nil
}

// Parse splits r into vertex and fragment sources. Lines before the first
// section marker are dropped. Every kept line gets a trailing newline.
func Parse(r io.Reader) (Sources, error) {
	var stages [2]strings.Builder
	current := sectionNone

	scanner := bufio.NewScanner(r)
	// allow long generated lines
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, directive) {
			if strings.Contains(line, "vertex") {
				current = sectionVertex
			} else if strings.Contains(line, "fragment") {
				current = sectionFragment
			}
			continue
		}

		if current == sectionNone {
			continue
		}
		stages[current].WriteString(line)
		stages[current].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return Sources{}, err
	}

	return Sources{
		Vertex:   stages[sectionVertex].String(),
		Fragment: stages[sectionFragment].String(),
	}, nil
}
