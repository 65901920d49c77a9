package synteny

import (
	"sort"

	"github.com/aralap/SimpleSyntenyViewer/pkg/paf"
	"github.com/aralap/SimpleSyntenyViewer/pkg/seqlen"
)

// Assemble builds the complete document from accepted records, the two
// length tables, and the resolved display labels. It is a pure
// transformation with no retained state.
func Assemble(blocks []paf.Record, queryLens, targetLens *seqlen.Table, queryLabel, targetLabel string) *Document {
	queryTracks, targetTracks, links := Aggregate(blocks)

	return &Document{
		Genomes: GenomeSet{
			Query:  buildGenome(queryLabel, queryLens, queryTracks),
			Target: buildGenome(targetLabel, targetLens, targetTracks),
		},
		SyntenyLinks: links,
		Metadata: Metadata{
			TotalBlocks:     len(blocks),
			QuerySequences:  queryLens.Len(),
			TargetSequences: targetLens.Len(),
		},
	}
}

// buildGenome emits one Sequence per length-table entry, longest first,
// ties keeping table insertion order. Sequences without aligned regions get
// an empty region list: the document enumerates genome structure, not just
// the aligned subset.
func buildGenome(label string, lens *seqlen.Table, tracks *TrackSet) Genome {
	names := lens.Names()
	sort.SliceStable(names, func(i, j int) bool {
		li, _ := lens.Get(names[i])
		lj, _ := lens.Get(names[j])
		return li > lj
	})

	sequences := make([]Sequence, 0, len(names))
	for _, name := range names {
		length, _ := lens.Get(name)
		sequences = append(sequences, Sequence{
			Name:   name,
			Length: length,
			Tracks: []Track{{
				Name:    TrackName,
				Type:    TrackType,
				Regions: tracks.Regions(name),
			}},
		})
	}
	return Genome{Name: label, Sequences: sequences}
}
