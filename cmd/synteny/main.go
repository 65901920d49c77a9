package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synteny",
	Short: "SimpleSyntenyViewer - genome synteny comparison tools",
	Long: `SimpleSyntenyViewer converts pairwise genome alignments into the
JSON documents consumed by the GenomeD3Plot synteny visualization.

This tool provides commands for converting minimap2 PAF output to synteny
documents and for inspecting previously generated comparisons.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("synteny version 0.1.0")
		fmt.Println("PAF to GenomeD3Plot synteny document converter")
	},
}
