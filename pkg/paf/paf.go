// Package paf parses PAF pairwise-alignment files as emitted by minimap2
// and filters records by aligned length and identity.
package paf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aralap/SimpleSyntenyViewer/pkg/seqio"
)

// Record is one accepted alignment record. Coordinates are 0-based,
// half-open, per the PAF column contract. Identity is derived at parse time
// and is matches/block length (0 when the block length is 0).
type Record struct {
	QueryName   string
	QueryLen    int
	QueryStart  int
	QueryEnd    int
	Strand      string
	TargetName  string
	TargetLen   int
	TargetStart int
	TargetEnd   int
	Matches     int
	BlockLen    int
	MapQ        int
	Identity    float64
}

// Filter holds the acceptance thresholds. A record is accepted when its
// query span is at least MinLength and its identity at least MinIdentity.
type Filter struct {
	MinLength   int
	MinIdentity float64
}

// DefaultFilter returns the thresholds used by the conversion pipeline.
func DefaultFilter() Filter {
	return Filter{MinLength: 1000, MinIdentity: 0.8}
}

// Parse reads PAF records from r and returns the accepted ones in file
// order. Blank lines, lines with fewer than 12 tab-separated fields, and
// lines with unparseable integer fields are skipped; partial aligner output
// never aborts the parse. Columns beyond the twelfth are ignored.
func Parse(r io.Reader, f Filter) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var accepted []Record
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 12 {
			continue
		}
		rec, ok := parseFields(parts)
		if !ok {
			continue
		}
		if rec.QueryEnd-rec.QueryStart >= f.MinLength && rec.Identity >= f.MinIdentity {
			accepted = append(accepted, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("paf scan: %w", err)
	}
	return accepted, nil
}

// ParseFile opens path (plain, gzip, or BGZF) and parses it with Parse.
// An unreadable alignment file is a hard error: without it there is nothing
// to convert.
func ParseFile(path string, f Filter) ([]Record, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alignment file: %w", err)
	}
	defer rc.Close()
	return Parse(rc, f)
}

func parseFields(parts []string) (Record, bool) {
	ints := make([]int, 12)
	for _, i := range []int{1, 2, 3, 6, 7, 8, 9, 10, 11} {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return Record{}, false
		}
		ints[i] = v
	}
	rec := Record{
		QueryName:   parts[0],
		QueryLen:    ints[1],
		QueryStart:  ints[2],
		QueryEnd:    ints[3],
		Strand:      parts[4],
		TargetName:  parts[5],
		TargetLen:   ints[6],
		TargetStart: ints[7],
		TargetEnd:   ints[8],
		Matches:     ints[9],
		BlockLen:    ints[10],
		MapQ:        ints[11],
	}
	if rec.BlockLen > 0 {
		rec.Identity = float64(rec.Matches) / float64(rec.BlockLen)
	}
	return rec, true
}
