package wizard

import (
	"strings"

	"github.com/hdlman/hdlman/internal/core/project"
	"github.com/hdlman/hdlman/internal/hardware"
)

// noDevBoardLabel is shown for the empty dev-board choice.
const noDevBoardLabel = "None"

// Questions returns the questions for the answers missing from known:
// 1. Project name
// 2. Target
// 3. Dev-board, only when the target is asked too
func Questions(known WizardResult) []Question {
	var qs []Question

	if known.ProjectName == "" {
		qs = append(qs, Question{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "Enter project name",
			Description: "A directory with this name is created under --root, or the current directory when --root is not given.",
			Required:    true,
			Validate: func(v string) error {
				return project.ValidateName(project.NormalizeName(v))
			},
		})
	}

	if known.Target == "" {
		qs = append(qs, Question{
			ID:          QuestionTarget,
			Type:        QuestionTypeSelect,
			Title:       "Select target FPGA",
			Description: "The chip the design is synthesized for.",
			Options:     entityOptions(hardware.SupportedTargets()),
			Default:     hardware.TargetNames()[0],
			Required:    true,
		})

		if known.DevBoard == "" {
			// The empty choice must stay first; see buildSelectField.
			opts := append([]Option{{Label: noDevBoardLabel, Value: "", Desc: "no constraint file"}},
				entityOptions(hardware.SupportedDevBoards())...)
			qs = append(qs, Question{
				ID:          QuestionDevBoard,
				Type:        QuestionTypeSelect,
				Title:       "Select dev-board",
				Description: "Adds the board's pin constraints and programmer to the project.",
				Options:     opts,
			})
		}
	}

	return qs
}

// entityOptions turns catalog entries into select options, using the
// first line of each description.
func entityOptions(entities []hardware.SupportedEntity) []Option {
	opts := make([]Option, len(entities))
	for i, e := range entities {
		desc, _, _ := strings.Cut(e.Description, "\n")
		opts[i] = Option{Label: e.Name, Value: e.Name, Desc: desc}
	}
	return opts
}
