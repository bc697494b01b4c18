package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run asks each question and returns the answers. Each question runs as
// its own huh.Form so the select viewport never scrolls past the first
// option.
func Run(questions []Question) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	theme := newWizardTheme()

	for i := range questions {
		form := huh.NewForm(buildQuestionGroup(&questions[i], result)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *WizardResult) *huh.Group {
	var field huh.Field
	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	}
	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select with static options. Options are
// not built through OptionsFunc: with a height set huh resets the viewport
// offset to the cursor on every update.
func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default
	saveAnswer(q.ID, selected, result)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	id := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(id, val, result)
			return nil
		})
}

// buildInputField creates a huh.Input that trims, checks and stores the answer.
func buildInputField(q *Question, result *WizardResult) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return inp.Validate(inputValidator(q, result))
}

// inputValidator returns the validation func for an input question. It
// falls back to the default for blank input and stores the value once it
// passes.
func inputValidator(q *Question, result *WizardResult) func(string) error {
	id, required, defVal, check := q.ID, q.Required, q.Default, q.Validate
	return func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("this field is required")
		}
		if check != nil && v != "" {
			if err := check(v); err != nil {
				return err
			}
		}
		saveAnswer(id, v, result)
		return nil
	}
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionTarget:
		result.Target = value
	case QuestionDevBoard:
		result.DevBoard = value
	}
}
