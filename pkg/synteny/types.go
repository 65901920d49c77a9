// Package synteny builds the GenomeD3Plot synteny document from filtered
// alignment records and resolved sequence lengths.
package synteny

// The JSON shapes below are the wire contract consumed by the visualization
// front end; key names, nesting, and field types must not change.

// Region is one visual region on a sequence, derived from one alignment
// record. Coordinates are 0-based, half-open; Start <= End.
type Region struct {
	Start    int     `json:"start"`
	End      int     `json:"end"`
	Strand   string  `json:"strand"`
	Identity float64 `json:"identity"`
}

// Track is a named, typed collection of regions attached to one sequence.
type Track struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Regions []Region `json:"regions"`
}

// Sequence is one sequence of a genome with its length and tracks. Every
// sequence in the length table appears, aligned or not.
type Sequence struct {
	Name   string  `json:"name"`
	Length int     `json:"length"`
	Tracks []Track `json:"tracks"`
}

// Genome is one side of the comparison.
type Genome struct {
	Name      string     `json:"name"`
	Sequences []Sequence `json:"sequences"`
}

// GenomeSet holds both sides.
type GenomeSet struct {
	Query  Genome `json:"query"`
	Target Genome `json:"target"`
}

// Link pairs a query region with its corresponding target region. One link
// exists per accepted alignment record.
type Link struct {
	QueryName   string  `json:"query_name"`
	QueryStart  int     `json:"query_start"`
	QueryEnd    int     `json:"query_end"`
	TargetName  string  `json:"target_name"`
	TargetStart int     `json:"target_start"`
	TargetEnd   int     `json:"target_end"`
	Strand      string  `json:"strand"`
	Identity    float64 `json:"identity"`
}

// Metadata summarizes a document. Sequence counts reflect the length
// tables, not just the aligned subset.
type Metadata struct {
	TotalBlocks     int `json:"total_blocks"`
	QuerySequences  int `json:"query_sequences"`
	TargetSequences int `json:"target_sequences"`
}

// Document is the complete conversion output.
type Document struct {
	Genomes      GenomeSet `json:"genomes"`
	SyntenyLinks []Link    `json:"synteny_links"`
	Metadata     Metadata  `json:"metadata"`
}

// The single track every sequence carries.
const (
	TrackName = "Synteny"
	TrackType = "standard"
)
