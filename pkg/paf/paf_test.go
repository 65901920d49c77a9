package paf

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const acceptedLine = "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t1100\t1200\t60"

func parseString(t *testing.T, in string, f Filter) []Record {
	t.Helper()
	recs, err := Parse(strings.NewReader(in), f)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return recs
}

func TestParseAcceptedBlock(t *testing.T) {
	recs := parseString(t, acceptedLine+"\n", DefaultFilter())
	if len(recs) != 1 {
		t.Fatalf("accepted = %d, want 1", len(recs))
	}
	r := recs[0]
	if r.QueryName != "q1" || r.TargetName != "t1" {
		t.Errorf("names = %q/%q", r.QueryName, r.TargetName)
	}
	if r.QueryStart != 0 || r.QueryEnd != 1200 || r.TargetStart != 0 || r.TargetEnd != 1200 {
		t.Errorf("coords = %d-%d / %d-%d", r.QueryStart, r.QueryEnd, r.TargetStart, r.TargetEnd)
	}
	if r.Strand != "+" || r.MapQ != 60 {
		t.Errorf("strand=%q mapq=%d", r.Strand, r.MapQ)
	}
	want := 1100.0 / 1200.0
	if math.Abs(r.Identity-want) > 1e-12 {
		t.Errorf("identity = %v, want %v", r.Identity, want)
	}
}

func TestParseFiltering(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"accepted", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t1100\t1200\t60", 1},
		{"identity below threshold", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t900\t1200\t60", 0},
		{"identity at threshold", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t960\t1200\t60", 1},
		{"span below threshold", "q1\t1000\t0\t999\t+\tt1\t2000\t0\t999\t999\t999\t60", 0},
		{"span at threshold", "q1\t1000\t0\t1000\t+\tt1\t2000\t0\t1000\t1000\t1000\t60", 1},
		{"zero block length", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t0\t0\t60", 0},
		{"eleven fields", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t1100\t1200", 0},
		{"bad integer field", "q1\t1000\t0\tx\t+\tt1\t2000\t0\t1200\t1100\t1200\t60", 0},
		{"blank line", "", 0},
		{"extra columns ignored", "q1\t1000\t0\t1200\t+\tt1\t2000\t0\t1200\t1100\t1200\t60\tcg:Z:1200M", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := parseString(t, tt.line+"\n", DefaultFilter())
			if len(recs) != tt.want {
				t.Fatalf("accepted = %d, want %d", len(recs), tt.want)
			}
		})
	}
}

func TestParseTwelfthFieldMakesDifference(t *testing.T) {
	eleven := strings.Join(strings.Split(acceptedLine, "\t")[:11], "\t")
	with := parseString(t, acceptedLine+"\n"+acceptedLine+"\n", DefaultFilter())
	without := parseString(t, eleven+"\n"+acceptedLine+"\n", DefaultFilter())
	if len(with)-len(without) != 1 {
		t.Fatalf("accepted %d vs %d, want a difference of 1", len(with), len(without))
	}
}

func TestParsePreservesFileOrder(t *testing.T) {
	in := "q2\t5000\t0\t2000\t-\tt2\t9000\t100\t2100\t1900\t2000\t60\n" +
		acceptedLine + "\n" +
		"q2\t5000\t2500\t4000\t+\tt1\t2000\t0\t1500\t1400\t1500\t60\n"
	recs := parseString(t, in, DefaultFilter())
	if len(recs) != 3 {
		t.Fatalf("accepted = %d, want 3", len(recs))
	}
	order := []string{recs[0].QueryName, recs[1].QueryName, recs[2].QueryName}
	if !reflect.DeepEqual(order, []string{"q2", "q1", "q2"}) {
		t.Errorf("order = %v", order)
	}
}

func TestParseDeterministic(t *testing.T) {
	in := acceptedLine + "\n" + "q2\t5000\t0\t2000\t-\tt2\t9000\t100\t2100\t1900\t2000\t60\n"
	a := parseString(t, in, DefaultFilter())
	b := parseString(t, in, DefaultFilter())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("re-parse differs: %v vs %v", a, b)
	}
}

func TestParseIdentityBounds(t *testing.T) {
	in := acceptedLine + "\n" + "q2\t5000\t0\t2000\t-\tt2\t9000\t100\t2100\t2000\t2000\t60\n"
	for _, r := range parseString(t, in, DefaultFilter()) {
		if r.Identity < 0 || r.Identity > 1 {
			t.Errorf("identity %v out of [0,1]", r.Identity)
		}
		if r.QueryStart > r.QueryEnd || r.TargetStart > r.TargetEnd {
			t.Errorf("start > end in %+v", r)
		}
	}
}

func TestParseEmptyFile(t *testing.T) {
	recs := parseString(t, "", DefaultFilter())
	if len(recs) != 0 {
		t.Fatalf("accepted = %d, want 0", len(recs))
	}
}

func TestParseFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aln.paf.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(acceptedLine + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	recs, err := ParseFile(path, DefaultFilter())
	if err != nil {
		t.Fatalf("parse gz: %v", err)
	}
	if len(recs) != 1 || recs[0].QueryName != "q1" {
		t.Fatalf("gz parse failed, recs=%v", recs)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.paf"), DefaultFilter()); err == nil {
		t.Fatal("expected error for missing alignment file")
	}
}
