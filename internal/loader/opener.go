package loader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Opener supplies the byte stream behind a source name. Callers close what
// they open.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// FileOpener opens sources from the local filesystem.
type FileOpener struct{}

func (FileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// MemOpener serves sources from memory, keyed by name.
type MemOpener map[string]string

func (m MemOpener) Open(name string) (io.ReadCloser, error) {
	body, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}
