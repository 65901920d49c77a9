package synteny

import (
	"fmt"

	"github.com/aralap/SimpleSyntenyViewer/pkg/labels"
	"github.com/aralap/SimpleSyntenyViewer/pkg/paf"
	"github.com/aralap/SimpleSyntenyViewer/pkg/seqlen"
	"github.com/charmbracelet/log"
)

// Options controls one conversion run.
type Options struct {
	// Acceptance thresholds for alignment records.
	Filter paf.Filter

	// Original upload identifiers of the two inputs, used for label
	// lookup. Empty identifiers resolve to the default labels.
	QueryFileID  string
	TargetFileID string

	// Candidate label-store paths, tried in order. Typically built with
	// labels.CandidateStores.
	LabelStores []string

	// Logger receives degraded-path diagnostics. nil uses the package
	// default logger.
	Logger *log.Logger
}

// Convert runs the whole pipeline once: parse and filter the alignment
// file, resolve per-side sequence lengths and display labels, aggregate
// tracks, and write the assembled document to outPath. querySource and
// targetSource are length-source references (a .fai index path, with the
// underlying FASTA as automatic fallback).
//
// Degraded inputs (missing length sources, unusable label stores) produce a
// document with empty or default fields; only an unreadable alignment file
// or a failed output write return an error.
func Convert(pafPath, querySource, targetSource, outPath string, opts Options) (*Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Filter == (paf.Filter{}) {
		opts.Filter = paf.DefaultFilter()
	}

	blocks, err := paf.ParseFile(pafPath, opts.Filter)
	if err != nil {
		return nil, err
	}

	queryLens := seqlen.Resolve(logger, seqlen.SourcesFor(querySource)...)
	targetLens := seqlen.Resolve(logger, seqlen.SourcesFor(targetSource)...)

	candidates := opts.LabelStores
	if candidates == nil {
		candidates = labels.CandidateStores(querySource, outPath, nil)
	}
	queryLabel, targetLabel := labels.Resolve(candidates, opts.QueryFileID, opts.TargetFileID, logger)

	doc := Assemble(blocks, queryLens, targetLens, queryLabel, targetLabel)
	if err := doc.WriteFile(outPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", outPath, err)
	}
	return doc, nil
}
