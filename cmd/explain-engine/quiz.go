// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/explain-engine/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <document>",
	Short: "Take a placement quiz, then get the guide matching your score",
	Long: `Quiz asks a short multiple-choice quiz, generates all three guide
tiers for the document, and recommends the guide matching your score:
below 40% beginner, below 70% intermediate, otherwise advanced.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Welcome to the placement quiz!")
	fmt.Fprintln(os.Stdout, "Answer each question by typing the option number.")

	tier, err := quiz.NewSelector(bank, os.Stdin, os.Stdout).Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "\nGenerating your personalized explanations...")
	result, _, err := runPipeline(cmd, args[0])
	if err != nil {
		return err
	}

	recommended := result.GuidePath(tier)
	if recommended == "" {
		return fmt.Errorf("the %s guide failed to render", tier)
	}

	fmt.Fprintf(os.Stdout, "\nBased on your quiz performance, please read: %s\n", recommended)
	fmt.Fprintln(os.Stdout, "This explanation has been tailored to your current understanding of the topic.")
	return nil
}

func loadBank(cmd *cobra.Command) (*quiz.Bank, error) {
	bankPath := stringSetting(cmd, "bank", "quiz.bank_path")
	if bankPath == "" {
		return quiz.DefaultBank(), nil
	}
	return quiz.LoadBank(bankPath)
}

func init() {
	addPipelineFlags(quizCmd)
	quizCmd.Flags().String("bank", "", "YAML question bank (default: built-in bank)")

	rootCmd.AddCommand(quizCmd)
}
