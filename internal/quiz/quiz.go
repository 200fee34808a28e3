// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quiz implements the tier selector: a short multiple-choice
// quiz whose score picks which guide to recommend. The selector only
// chooses the recommended tier; every run still generates all three.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/explain-engine/pkg/types"
)

// Question is one multiple-choice question in a bank.
type Question struct {
	// Prompt is the question text.
	Prompt string `yaml:"prompt"`

	// Options are the candidate answers, shown numbered from 1.
	Options []string `yaml:"options"`

	// Answer is the correct option, matched by full text.
	Answer string `yaml:"answer"`
}

// Bank is an ordered set of questions loaded from YAML.
type Bank struct {
	Questions []Question `yaml:"questions"`
}

// LoadBank reads a question bank from a YAML file and validates it.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}
	if err := bank.validate(); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return &bank, nil
}

func (b *Bank) validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	for i, q := range b.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d: empty prompt", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: needs at least two options", i+1)
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: answer not among options", i+1)
		}
	}
	return nil
}

// Terminal styles for quiz output.
var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	optionStyle   = lipgloss.NewStyle().PaddingLeft(2)
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	levelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// Selector runs a quiz over a bank, reading answers from in and
// writing questions and results to out.
type Selector struct {
	bank *Bank
	in   *bufio.Scanner
	out  io.Writer
}

// NewSelector builds a Selector over bank.
func NewSelector(bank *Bank, in io.Reader, out io.Writer) *Selector {
	return &Selector{
		bank: bank,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run asks every question in order, scores the answers, and returns
// the tier for the final score. Invalid input re-asks the same
// question; exhausted input is an error.
func (s *Selector) Run() (types.Tier, error) {
	score := 0

	for i, q := range s.bank.Questions {
		fmt.Fprintf(s.out, "\n%s\n", questionStyle.Render(fmt.Sprintf("Q%d: %s", i+1, q.Prompt)))
		for j, opt := range q.Options {
			fmt.Fprintln(s.out, optionStyle.Render(fmt.Sprintf("%d. %s", j+1, opt)))
		}

		choice, err := s.askChoice(len(q.Options))
		if err != nil {
			return "", err
		}
		if q.Options[choice-1] == q.Answer {
			score++
		}
	}

	total := len(s.bank.Questions)
	percentage := float64(score) / float64(total) * 100
	fmt.Fprintf(s.out, "\n%s\n", scoreStyle.Render(
		fmt.Sprintf("Your score: %d out of %d (%.2f%%)", score, total, percentage)))

	tier := TierFor(score, total)
	fmt.Fprintf(s.out, "%s\n", levelStyle.Render(
		fmt.Sprintf("Based on your score, you'll receive a %s-level explanation.", tier)))
	return tier, nil
}

// askChoice reads a 1-based option number, re-prompting on invalid input.
func (s *Selector) askChoice(options int) (int, error) {
	for {
		fmt.Fprintf(s.out, "Your answer (1-%d): ", options)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, fmt.Errorf("reading answer: %w", err)
			}
			return 0, fmt.Errorf("no more input")
		}

		choice, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input, please enter a number.")
			continue
		}
		if choice < 1 || choice > options {
			fmt.Fprintf(s.out, "Invalid choice, please select a number between 1 and %d.\n", options)
			continue
		}
		return choice, nil
	}
}

// TierFor maps a quiz score to an explanation tier: below 40% is
// beginner, below 70% intermediate, otherwise advanced.
func TierFor(score, total int) types.Tier {
	if total <= 0 {
		return types.TierBeginner
	}
	percentage := float64(score) / float64(total) * 100
	switch {
	case percentage < 40:
		return types.TierBeginner
	case percentage < 70:
		return types.TierIntermediate
	default:
		return types.TierAdvanced
	}
}
