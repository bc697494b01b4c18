// Package wizard prompts for the project name and hardware selection
// when they are not given on the command line.
package wizard

import "errors"

// WizardResult holds the answers. Hardware values are catalog identifiers;
// an empty DevBoard means no board.
type WizardResult struct {
	ProjectName string
	Target      string
	DevBoard    string
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question IDs.
const (
	QuestionProjectName = "project_name"
	QuestionTarget      = "target"
	QuestionDevBoard    = "dev_board"
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra check for input questions
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
