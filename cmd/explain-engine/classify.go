// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/explain-engine/internal/classify"
	"github.com/pdiddy/explain-engine/internal/reader"
	"github.com/pdiddy/explain-engine/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <document>",
	Short: "Detect the subject-matter category of a source document",
	Long: `Classify extracts a document's text and scores it against the fixed
keyword sets for each category, printing the winner and the per-category
scores. The same detection feeds prompt selection in the explain pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	doc, err := reader.Read(args[0])
	if err != nil {
		return err
	}

	category := classify.Detect(doc.Text)
	fmt.Fprintf(os.Stdout, "%s\n", category)

	if verbose, _ := cmd.Flags().GetBool("scores"); verbose {
		scores := classify.Scores(doc.Text)
		for _, c := range types.Categories {
			fmt.Fprintf(os.Stdout, "  %-12s %d\n", c, scores[c])
		}
	}
	return nil
}

func init() {
	classifyCmd.Flags().Bool("scores", false, "print per-category keyword scores")
	rootCmd.AddCommand(classifyCmd)
}
