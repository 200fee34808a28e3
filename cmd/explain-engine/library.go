// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/explain-engine/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the guide library (list, search)",
	Long: `Library manages the local index of rendered guides. Use subcommands
to list recent guides or search past explanation text.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently rendered guides",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := openLibrary(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	guides, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(guides)
	}

	if len(guides) == 0 {
		fmt.Println("No guides recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-12s  %-12s  %-30s  %s\n",
		"Created", "Tier", "Category", "Title", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, g := range guides {
		fmt.Fprintf(os.Stdout, "%-19s  %-12s  %-12s  %-30s  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04:05"), g.Tier, g.Category,
			truncate(g.Title, 30), g.OutputPath)
	}
	fmt.Fprintf(os.Stdout, "\n%d guides\n", len(guides))
	return nil
}

// --- search subcommand ---

var librarySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over recorded explanation text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLibrarySearch,
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	store, err := openLibrary(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := store.Search(context.Background(), strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%d. [%s/%s] %s (%s)\n   %s\n",
			i+1, r.Tier, r.Category, truncate(r.Title, 50),
			r.CreatedAt.Format(time.DateOnly), r.Snippet)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func openLibrary(cmd *cobra.Command) (*library.Store, error) {
	cfg := libraryConfigFromFlags(cmd)
	cfg.MaxResults = intSetting(cmd, "max-results", "library.max_results")
	return library.NewStore(cfg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	libraryCmd.PersistentFlags().String("library-dir", "library", "directory for the guide library database")
	libraryCmd.PersistentFlags().Int("max-results", 20, "default maximum number of query results")

	libraryListCmd.Flags().Int("limit", 0, "maximum guides to list (0 = use default)")
	libraryListCmd.Flags().Bool("json", false, "output guides as JSON")

	librarySearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)

	rootCmd.AddCommand(libraryCmd)
}
