// Package clipboard provides the sinks a copied result can be written to.
//
// OSC52 asks the terminal emulator to set the system clipboard, which works
// over SSH without any platform helper. File writes the text to a path, and
// Memory keeps it for tests and the web server's copy endpoint.
package clipboard

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"

	"baseconv/internal/domain"
	"baseconv/internal/store"
)

// OSC52 writes an OSC 52 "set clipboard" escape sequence to W.
type OSC52 struct {
	W io.Writer
}

func (c OSC52) WriteText(_ context.Context, text string) error {
	_, err := fmt.Fprintf(c.W, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// File writes the text to Path, replacing its content.
type File struct {
	Path string
}

func (c File) WriteText(_ context.Context, text string) error {
	return store.WriteFileAtomic(c.Path, []byte(text+"\n"), 0o644)
}

// Writer prints the text on its own line.
type Writer struct {
	W io.Writer
}

func (c Writer) WriteText(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.W, text)
	return err
}

// Memory remembers the last text written.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (c *Memory) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

// Text returns the last text written.
func (c *Memory) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// New builds a clipboard from a spec: "osc52", "stdout", "memory" or
// "file:<path>". Terminal output goes to out.
func New(spec string, out io.Writer) (domain.Clipboard, error) {
	switch {
	case spec == "" || spec == "osc52":
		return OSC52{W: out}, nil
	case spec == "stdout":
		return Writer{W: out}, nil
	case spec == "memory":
		return &Memory{}, nil
	case strings.HasPrefix(spec, "file:"):
		path := strings.TrimPrefix(spec, "file:")
		if path == "" {
			return nil, fmt.Errorf("clipboard %q: empty path", spec)
		}
		return File{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard %q (want osc52, stdout, memory or file:<path>)", spec)
	}
}

var (
	_ domain.Clipboard = OSC52{}
	_ domain.Clipboard = File{}
	_ domain.Clipboard = Writer{}
	_ domain.Clipboard = (*Memory)(nil)
)
