// Package sourcefile adapts an on-disk TruPL program into the pipeline's
// buffer.Buffer entry point. It is the one place in the module that
// touches the filesystem, mirroring the teacher's cmd-layer
// os.ReadFile-then-construct pattern rather than threading *os.File
// through the compiler packages themselves.
package sourcefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hieule22/trupl-go/internal/buffer"
)

// Load reads the file at path in full and wraps its contents in a fresh
// buffer.Buffer ready for lexing.
func Load(path string) (*buffer.Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buffer.New(strings.NewReader(string(content))), nil
}
