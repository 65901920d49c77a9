package main

import (
	"fmt"

	"github.com/aralap/SimpleSyntenyViewer/pkg/synteny"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <document.json>",
	Short: "Show statistics for a synteny document",
	Long: `Display summary statistics for a generated synteny document.

Statistics are read from the document's metadata block without reprocessing
the alignment.

Example:
  synteny stats comparisons/ab12cd34_ef56ab78.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := synteny.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}

		fmt.Println("===========================================")
		fmt.Println("Synteny Document Statistics")
		fmt.Println("===========================================")
		fmt.Println()
		fmt.Printf("Query genome: %s\n", doc.Genomes.Query.Name)
		fmt.Printf("Target genome: %s\n", doc.Genomes.Target.Name)
		fmt.Println()

		fmt.Println("Summary:")
		fmt.Printf("  Synteny blocks: %d\n", doc.Metadata.TotalBlocks)
		fmt.Printf("  Query sequences: %d\n", doc.Metadata.QuerySequences)
		fmt.Printf("  Target sequences: %d\n", doc.Metadata.TargetSequences)
		fmt.Println()

		fmt.Println("Query sequences:")
		printSequences(doc.Genomes.Query.Sequences)
		fmt.Println()
		fmt.Println("Target sequences:")
		printSequences(doc.Genomes.Target.Sequences)

		return nil
	},
}

func printSequences(seqs []synteny.Sequence) {
	for _, s := range seqs {
		regions := 0
		for _, t := range s.Tracks {
			regions += len(t.Regions)
		}
		fmt.Printf("  %s: %d bp, %d regions\n", s.Name, s.Length, regions)
	}
}
