package main

import (
	"os"

	"github.com/aralap/SimpleSyntenyViewer/pkg/labels"
	"github.com/aralap/SimpleSyntenyViewer/pkg/paf"
	"github.com/aralap/SimpleSyntenyViewer/pkg/synteny"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	minLength    int
	minIdentity  float64
	queryFileID  string
	targetFileID string
	labelStores  []string
	verbose      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <alignment.paf> <query.fai> <target.fai> [output.json]",
	Short: "Convert a PAF alignment to a synteny document",
	Long: `Convert a PAF alignment file to a GenomeD3Plot synteny document.

Records shorter than --min-length or below --min-identity are dropped.
Sequence lengths come from the given faidx index files; when an index is
missing or empty, the underlying FASTA (the path without the .fai suffix)
is scanned directly. Plain, gzip, and BGZF inputs are all accepted.

Display names default to "Assembly" and "Reference". When the original
upload file names are passed with --query-file/--target-file, they are
looked up in a label store (a .file_metadata.json mapping file names to
labels); --label-store prepends locations to the search list.

Examples:
  synteny convert alignment.paf assembly.fasta.fai reference.fasta.fai
  synteny convert alignment.paf assembly.fasta.fai reference.fasta.fai out.json \
    --min-length 5000 --min-identity 0.9
  synteny convert alignment.paf uploads/a.fasta.fai uploads/r.fasta.fai out.json \
    --query-file a.fasta --target-file r.fasta`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		pafPath := args[0]
		querySource := args[1]
		targetSource := args[2]
		outPath := "synteny_data.json"
		if len(args) > 3 {
			outPath = args[3]
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "synteny",
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		opts := synteny.Options{
			Filter:       paf.Filter{MinLength: minLength, MinIdentity: minIdentity},
			QueryFileID:  queryFileID,
			TargetFileID: targetFileID,
			LabelStores:  labels.CandidateStores(querySource, outPath, labelStores),
			Logger:       logger,
		}

		logger.Info("parsing alignment", "paf", pafPath)
		doc, err := synteny.Convert(pafPath, querySource, targetSource, outPath, opts)
		if err != nil {
			return err
		}

		logger.Info("created synteny document", "path", outPath)
		logger.Info("conversion summary",
			"total_blocks", doc.Metadata.TotalBlocks,
			"query_sequences", doc.Metadata.QuerySequences,
			"target_sequences", doc.Metadata.TargetSequences)
		return nil
	},
}

func init() {
	convertCmd.Flags().IntVar(&minLength, "min-length", 1000,
		"Minimum aligned query span in bases")
	convertCmd.Flags().Float64Var(&minIdentity, "min-identity", 0.8,
		"Minimum alignment identity (matches / block length)")
	convertCmd.Flags().StringVar(&queryFileID, "query-file", "",
		"Original query upload file name, for label lookup")
	convertCmd.Flags().StringVar(&targetFileID, "target-file", "",
		"Original target upload file name, for label lookup")
	convertCmd.Flags().StringArrayVar(&labelStores, "label-store", nil,
		"Label store path to try first (repeatable)")
	convertCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Log degraded-path diagnostics")
}
