package labels

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, StoreName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write store: %v", err)
	}
	return path
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir,
		`{"asm.fasta": {"label": "My Assembly", "size": 12}, "ref.fasta": {"notes": "no label"}}`)

	tests := []struct {
		name               string
		candidates         []string
		queryID, targetID  string
		wantQuery, wantTgt string
	}{
		{"both found", []string{store}, "asm.fasta", "asm.fasta", "My Assembly", "My Assembly"},
		{"entry without label uses identifier", []string{store}, "asm.fasta", "ref.fasta", "My Assembly", "ref.fasta"},
		{"missing key defaults", []string{store}, "other.fasta", "other.fasta", DefaultQuery, DefaultTarget},
		{"empty identifiers default", []string{store}, "", "", DefaultQuery, DefaultTarget},
		{"missing store defaults", []string{filepath.Join(dir, "nope.json")}, "asm.fasta", "asm.fasta", DefaultQuery, DefaultTarget},
		{"no candidates default", nil, "asm.fasta", "asm.fasta", DefaultQuery, DefaultTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, tgt := Resolve(tt.candidates, tt.queryID, tt.targetID, quietLogger())
			if q != tt.wantQuery || tgt != tt.wantTgt {
				t.Fatalf("labels = %q/%q, want %q/%q", q, tgt, tt.wantQuery, tt.wantTgt)
			}
		})
	}
}

func TestResolveFirstParseableCandidateWins(t *testing.T) {
	broken := t.TempDir()
	good := t.TempDir()
	brokenPath := writeStore(t, broken, "not json {")
	goodPath := writeStore(t, good, `{"asm.fasta": {"label": "Second"}}`)

	q, _ := Resolve([]string{brokenPath, goodPath}, "asm.fasta", "", quietLogger())
	if q != "Second" {
		t.Fatalf("query label = %q, want fall-through to second candidate", q)
	}
}

func TestResolveMalformedStoreDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, "not json {")

	q, tgt := Resolve([]string{path}, "asm.fasta", "ref.fasta", quietLogger())
	if q != DefaultQuery || tgt != DefaultTarget {
		t.Fatalf("labels = %q/%q, want defaults", q, tgt)
	}
}

func TestCandidateStores(t *testing.T) {
	got := CandidateStores(filepath.Join("uploads", "asm.fasta.fai"), filepath.Join("comparisons", "x.json"),
		[]string{"explicit.json"})
	if len(got) < 4 {
		t.Fatalf("candidates = %v, want explicit + uploads conventions", got)
	}
	if got[0] != "explicit.json" {
		t.Errorf("explicit candidate not first: %v", got)
	}
	if got[1] != filepath.Join("uploads", StoreName) {
		t.Errorf("uploads-adjacent candidate not second: %v", got)
	}
}
