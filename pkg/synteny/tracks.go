package synteny

import "github.com/aralap/SimpleSyntenyViewer/pkg/paf"

// TrackSet groups regions by sequence name while preserving first-seen key
// order and per-key append order. Record acceptance order is the only
// ordering applied to regions; they are never re-sorted by coordinate.
type TrackSet struct {
	order   []string
	regions map[string][]Region
}

// NewTrackSet returns an empty TrackSet.
func NewTrackSet() *TrackSet {
	return &TrackSet{regions: make(map[string][]Region)}
}

// Add appends a region to the named sequence's list.
func (ts *TrackSet) Add(name string, r Region) {
	if _, seen := ts.regions[name]; !seen {
		ts.order = append(ts.order, name)
	}
	ts.regions[name] = append(ts.regions[name], r)
}

// Regions returns the named sequence's region list, or an empty list when
// no record contributed to it.
func (ts *TrackSet) Regions(name string) []Region {
	if rs, ok := ts.regions[name]; ok {
		return rs
	}
	return []Region{}
}

// Names returns the sequence names in first-seen order.
func (ts *TrackSet) Names() []string {
	return append([]string(nil), ts.order...)
}

// Aggregate regroups accepted records into per-side track sets and the
// shared link list. Each record contributes exactly one query region, one
// target region, and one link. Sequences with no contributing records are
// absent from the sets; the assembler backfills them from the length
// tables.
func Aggregate(blocks []paf.Record) (query, target *TrackSet, links []Link) {
	query = NewTrackSet()
	target = NewTrackSet()
	links = make([]Link, 0, len(blocks))

	for _, b := range blocks {
		query.Add(b.QueryName, Region{
			Start:    b.QueryStart,
			End:      b.QueryEnd,
			Strand:   b.Strand,
			Identity: b.Identity,
		})
		target.Add(b.TargetName, Region{
			Start:    b.TargetStart,
			End:      b.TargetEnd,
			Strand:   b.Strand,
			Identity: b.Identity,
		})
		links = append(links, Link{
			QueryName:   b.QueryName,
			QueryStart:  b.QueryStart,
			QueryEnd:    b.QueryEnd,
			TargetName:  b.TargetName,
			TargetStart: b.TargetStart,
			TargetEnd:   b.TargetEnd,
			Strand:      b.Strand,
			Identity:    b.Identity,
		})
	}
	return query, target, links
}
