// Package seqlen resolves sequence-name to length mappings for one side of
// a comparison, from a samtools faidx index when one is usable and by
// scanning the FASTA itself otherwise.
package seqlen

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/aralap/SimpleSyntenyViewer/pkg/seqio"
	"github.com/charmbracelet/log"
)

// Table maps sequence names to lengths while remembering insertion order.
// Iteration order is first-seen order, which downstream relies on for
// stable tie-breaking.
type Table struct {
	names   []string
	lengths map[string]int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{lengths: make(map[string]int)}
}

// Set records length for name. A repeated name keeps its original position
// and takes the new length.
func (t *Table) Set(name string, length int) {
	if _, seen := t.lengths[name]; !seen {
		t.names = append(t.names, name)
	}
	t.lengths[name] = length
}

// Get returns the length for name.
func (t *Table) Get(name string) (int, bool) {
	v, ok := t.lengths[name]
	return v, ok
}

// Names returns the sequence names in insertion order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of sequences.
func (t *Table) Len() int {
	return len(t.names)
}

// Source is one strategy for producing a length table. Sources are tried in
// order; the first one yielding a non-empty table wins.
type Source interface {
	// Describe names the source for diagnostics.
	Describe() string
	// Lengths reads the source. An empty table with a nil error means the
	// source had nothing usable (for example a missing index file).
	Lengths() (*Table, error)
}

// IndexSource reads a tab-separated length index (samtools faidx output):
// first column sequence name, second column length, extra columns ignored.
type IndexSource struct {
	Path string
}

func (s IndexSource) Describe() string { return "length index " + s.Path }

// Lengths parses the index. A missing file yields an empty table, not an
// error; lines with fewer than two fields are skipped.
func (s IndexSource) Lengths() (*Table, error) {
	t := NewTable()
	rc, err := seqio.Open(s.Path)
	if err != nil {
		return t, nil
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), "\t")
		if len(parts) < 2 {
			continue
		}
		length, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		t.Set(parts[0], length)
	}
	if err := sc.Err(); err != nil {
		return NewTable(), fmt.Errorf("scan %s: %w", s.Path, err)
	}
	return t, nil
}

// FastaSource derives lengths by scanning a FASTA file directly: each ">"
// line starts a sequence named by the first whitespace-delimited token, and
// every following non-blank line contributes its trimmed length.
type FastaSource struct {
	Path string
}

func (s FastaSource) Describe() string { return "fasta " + s.Path }

func (s FastaSource) Lengths() (*Table, error) {
	rc, err := seqio.Open(s.Path)
	if err != nil {
		return NewTable(), fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer rc.Close()

	t := NewTable()
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	current := ""
	length := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if current != "" {
				t.Set(current, length)
			}
			fields := strings.Fields(line[1:])
			current = ""
			if len(fields) > 0 {
				current = fields[0]
			}
			length = 0
			continue
		}
		// Sequence data before the first header is ignored.
		if current != "" {
			length += len(line)
		}
	}
	if err := sc.Err(); err != nil {
		return NewTable(), fmt.Errorf("scan %s: %w", s.Path, err)
	}
	if current != "" {
		t.Set(current, length)
	}
	return t, nil
}

// SourcesFor builds the resolution chain for one side's length source. The
// index file is tried first; when the path carries a .fai suffix the
// underlying FASTA is the fallback, covering uploads that were never
// indexed.
func SourcesFor(path string) []Source {
	sources := []Source{IndexSource{Path: path}}
	if base, ok := strings.CutSuffix(path, ".fai"); ok {
		sources = append(sources, FastaSource{Path: base})
	}
	return sources
}

// Resolve tries sources in order and returns the first non-empty table. An
// index that exists but holds no usable entries falls through to the next
// source the same way a missing one does. Failures are logged and degrade;
// the result of a fully failed chain is an empty table, never an error.
func Resolve(logger *log.Logger, sources ...Source) *Table {
	if logger == nil {
		logger = log.Default()
	}
	for _, src := range sources {
		t, err := src.Lengths()
		if err != nil {
			logger.Warn("length source unusable", "source", src.Describe(), "err", err)
			continue
		}
		if t.Len() > 0 {
			return t
		}
		logger.Debug("length source empty", "source", src.Describe())
	}
	return NewTable()
}
