package loader

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"

	"StockLens/internal/stock"
)

// maxLineLength bounds a single source line; longer lines are malformed.
const maxLineLength = 1 << 20

// parseFunc turns the raw lines of one source into entries. On failure it
// also returns the 1-based line at fault, or 0.
type parseFunc func(lines []string) ([]stock.Entry, int, error)

// Loader binds a file extension to the parser for that format.
type Loader struct {
	Name      string
	Extension string
	parse     parseFunc
}

var (
	// CSV reads one record per line: SYMBOL,DATE,OPEN,HIGH,LOW,CLOSE,VOLUME.
	CSV = Loader{Name: "delimited", Extension: ".csv", parse: parseDelimited}
	// Triplet reads six SYMBOL:FIELD:VALUE lines per record.
	Triplet = Loader{Name: "triplet", Extension: ".trp", parse: parseTriplet}
)

// Loaders lists every supported format.
var Loaders = []Loader{CSV, Triplet}

// ForSource picks the loader whose extension matches name.
func ForSource(name string) (Loader, error) {
	ext := filepath.Ext(name)
	for _, l := range Loaders {
		if l.Extension == ext {
			return l, nil
		}
	}
	return Loader{}, &LoadError{Source: name, Err: fmt.Errorf("%w: unsupported %q", ErrSourceExtension, ext)}
}

// Load reads source through opener and commits its records to reg. The
// commit is atomic: when any line fails, nothing from the source is stored.
// It returns the number of records inserted.
func (l Loader) Load(opener Opener, source string, reg *stock.Registry) (int, error) {
	if ext := filepath.Ext(source); ext != l.Extension {
		return 0, &LoadError{Source: source, Err: fmt.Errorf("%w: want %s, got %q", ErrSourceExtension, l.Extension, ext)}
	}

	lines, err := readLines(opener, source)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return 0, le
		}
		return 0, &LoadError{Source: source, Err: err}
	}

	entries, line, err := l.parse(lines)
	if err != nil {
		return 0, &LoadError{Source: source, Line: line, Err: err}
	}
	if err := reg.Commit(entries); err != nil {
		return 0, &LoadError{Source: source, Err: err}
	}
	return len(entries), nil
}

func readLines(opener Opener, source string) ([]string, error) {
	rc, err := opener.Open(source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var lines []string
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LoadError{Source: source, Line: len(lines) + 1, Err: fmt.Errorf("%w: line longer than %d bytes", ErrRecordFormat, maxLineLength)}
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	return lines, nil
}
