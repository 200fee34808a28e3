// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the explain-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the explain-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "explain-engine",
	Short: "Difficulty-tiered explanations of source documents",
	Long: `explain-engine turns a source document into three explanatory guides,
one per difficulty tier (beginner, intermediate, advanced). It classifies the
document's subject matter, builds tier-specific prompts, chunks the text, and
drives a local generation model per chunk, then renders the aggregated
explanations into structured guide documents.

Run "explain" for the full pipeline, "quiz" to be quizzed first and pointed at
the guide matching your score, and "library" to revisit past guides.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./explain-engine.yaml or ~/.config/explain-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("explain-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "explain-engine"))
		}
	}

	viper.SetEnvPrefix("EXPLAIN_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
