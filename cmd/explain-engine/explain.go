// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/explain-engine/internal/explain"
	"github.com/pdiddy/explain-engine/internal/generate"
	"github.com/pdiddy/explain-engine/internal/library"
	"github.com/pdiddy/explain-engine/internal/reader"
	"github.com/pdiddy/explain-engine/internal/render"
	"github.com/pdiddy/explain-engine/pkg/types"
)

var explainCmd = &cobra.Command{
	Use:   "explain <document>",
	Short: "Generate tiered explanation guides for a source document",
	Long: `Explain reads a source document (PDF, DOCX, HTML, Markdown, or plain
text), detects its subject-matter category, and generates one guide per
difficulty tier through the local generation model. Guides land in the output
directory as <tier>_guide files and are recorded in the guide library.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	result, _, err := runPipeline(cmd, args[0])
	if err != nil {
		return err
	}
	if len(result.Outputs) == 0 {
		return fmt.Errorf("no guides rendered")
	}
	return nil
}

// runPipeline executes the full pipeline for sourcePath and records the
// rendered guides. Shared by the explain and quiz commands.
func runPipeline(cmd *cobra.Command, sourcePath string) (*explain.Result, types.ExplainConfig, error) {
	cfg := explainConfigFromFlags(cmd)

	doc, err := reader.Read(sourcePath)
	if err != nil {
		return nil, cfg, err
	}

	writer, err := render.ForFormat(cfg.Format)
	if err != nil {
		return nil, cfg, err
	}

	invoker := generate.NewInvoker(generate.NewOllama(cfg.AIConfig), cfg.AIConfig, os.Stderr)
	engine := explain.NewEngine(invoker, cfg.ChunkSize, os.Stderr)
	pipeline := explain.NewPipeline(engine, writer, cfg.OutputDir, os.Stderr)

	result, err := pipeline.Run(context.Background(), doc)
	if err != nil {
		return nil, cfg, err
	}

	if err := recordGuides(cmd, sourcePath, doc.Title, result); err != nil {
		// The guides exist on disk; a library failure should not fail the run.
		fmt.Fprintf(os.Stderr, "warning: recording guides: %v\n", err)
	}

	return result, cfg, nil
}

func recordGuides(cmd *cobra.Command, sourcePath, title string, result *explain.Result) error {
	store, err := library.NewStore(libraryConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, tier := range types.Tiers {
		outputPath := result.GuidePath(tier)
		if outputPath == "" {
			continue
		}
		g := types.Guide{
			SourcePath: sourcePath,
			Title:      title,
			Category:   result.Category,
			Tier:       tier,
			OutputPath: outputPath,
		}
		if err := store.Record(cmd.Context(), g, result.Explanations[tier]); err != nil {
			return err
		}
	}
	return nil
}

// explainConfigFromFlags merges config-file values and command flags;
// flags win when set.
func explainConfigFromFlags(cmd *cobra.Command) types.ExplainConfig {
	cfg := types.ExplainConfig{
		AIConfig: types.AIConfig{
			Model:      stringSetting(cmd, "model", "explain.model"),
			MaxRetries: intSetting(cmd, "max-retries", "explain.max_retries"),
			Timeout:    durationSetting(cmd, "timeout", "explain.timeout"),
			Backoff:    durationSetting(cmd, "backoff", "explain.backoff"),
		},
		ChunkSize: intSetting(cmd, "chunk-size", "explain.chunk_size"),
		OutputDir: stringSetting(cmd, "output-dir", "explain.output_dir"),
		Format:    types.OutputFormat(stringSetting(cmd, "format", "explain.format")),
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "guides"
	}
	return cfg
}

func libraryConfigFromFlags(cmd *cobra.Command) types.LibraryConfig {
	cfg := types.LibraryConfig{
		LibraryDir: stringSetting(cmd, "library-dir", "library.library_dir"),
	}
	if cfg.LibraryDir == "" {
		cfg.LibraryDir = "library"
	}
	return cfg
}

// stringSetting returns the flag value, preferring an explicitly set
// flag, then the config file, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

// addPipelineFlags registers the flags shared by explain and quiz.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", "llama3.2", "generation model identifier")
	cmd.Flags().String("output-dir", "guides", "directory for rendered guides")
	cmd.Flags().String("format", "markdown", "guide format: markdown or html")
	cmd.Flags().Int("chunk-size", 3000, "chunk width in bytes for source text slicing")
	cmd.Flags().Int("max-retries", 3, "total attempts per generation call")
	cmd.Flags().Duration("timeout", 120*time.Second, "timeout for one model invocation")
	cmd.Flags().Duration("backoff", 3*time.Second, "fixed wait between generation attempts")
	cmd.Flags().String("library-dir", "library", "directory for the guide library database")
}

func init() {
	addPipelineFlags(explainCmd)
	rootCmd.AddCommand(explainCmd)
}
