package types

import "time"

// AIConfig holds shared settings for stages that drive the external
// text-generation process.
type AIConfig struct {
	// Model is the generation model identifier passed to the external
	// process (e.g. "llama3.2").
	Model string `json:"model" yaml:"model"`

	// MaxRetries is the total number of attempts for a failed generation
	// call (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Timeout bounds a single external-process invocation (default 120s).
	// A process still running at the deadline is force-killed.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Backoff is the fixed wait between generation attempts (default 3s).
	Backoff time.Duration `json:"backoff" yaml:"backoff"`
}

// OutputFormat selects the guide output format.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputHTML     OutputFormat = "html"
)

// ExplainConfig holds settings for the explanation pipeline.
type ExplainConfig struct {
	AIConfig `yaml:",inline"`

	// ChunkSize is the fixed chunk width in bytes for source text
	// slicing (default 3000).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// OutputDir is the directory for rendered guides (e.g. "guides/").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the guide format: markdown or html.
	Format OutputFormat `json:"format" yaml:"format"`
}

// LibraryConfig holds settings for the guide library index.
type LibraryConfig struct {
	// LibraryDir is the directory holding the library database
	// (contains guides.db).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// QuizConfig holds settings for the quiz tier selector.
type QuizConfig struct {
	// BankPath is an optional YAML question bank; empty uses the
	// built-in bank.
	BankPath string `json:"bank_path,omitempty" yaml:"bank_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Explain ExplainConfig `json:"explain" yaml:"explain"`
	Library LibraryConfig `json:"library" yaml:"library"`
	Quiz    QuizConfig    `json:"quiz" yaml:"quiz"`
}
