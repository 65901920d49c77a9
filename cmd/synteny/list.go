package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aralap/SimpleSyntenyViewer/pkg/synteny"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [comparisons-dir]",
	Short: "List generated comparisons in a directory",
	Long: `List the synteny documents in a comparisons directory.

Each *.json file is read for its genome names and block count. Documents
that cannot be parsed are still listed, as Unknown.

Examples:
  synteny list
  synteny list comparisons/`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "comparisons"
		if len(args) > 0 {
			dir = args[0]
		}

		paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", dir, err)
		}
		sort.Strings(paths)

		if len(paths) == 0 {
			fmt.Printf("No comparisons found in %s\n", dir)
			return nil
		}

		for _, path := range paths {
			id := strings.TrimSuffix(filepath.Base(path), ".json")
			doc, err := synteny.ReadFile(path)
			if err != nil {
				fmt.Printf("%s: Unknown vs Unknown\n", id)
				continue
			}
			fmt.Printf("%s: %s vs %s, %d blocks (%d/%d sequences)\n",
				id,
				doc.Genomes.Query.Name,
				doc.Genomes.Target.Name,
				doc.Metadata.TotalBlocks,
				doc.Metadata.QuerySequences,
				doc.Metadata.TargetSequences)
		}
		return nil
	},
}
