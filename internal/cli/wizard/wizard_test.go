package wizard

import (
	"errors"
	"strings"
	"testing"

	"github.com/hdlman/hdlman/internal/core/project"
	"github.com/hdlman/hdlman/internal/hardware"
)

func questionIDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestQuestions(t *testing.T) {
	tests := []struct {
		name  string
		known WizardResult
		want  []string
	}{
		{"nothing_known", WizardResult{}, []string{QuestionProjectName, QuestionTarget, QuestionDevBoard}},
		{"name_known", WizardResult{ProjectName: "blinky"}, []string{QuestionTarget, QuestionDevBoard}},
		{"board_known", WizardResult{DevBoard: "ulx3s"}, []string{QuestionProjectName, QuestionTarget}},
		{"target_known", WizardResult{ProjectName: "blinky", Target: "ecp5-85k"}, nil},
		{"only_name_missing", WizardResult{Target: "ecp5-85k"}, []string{QuestionProjectName}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := questionIDs(Questions(tt.known))
			if len(got) != len(tt.want) {
				t.Fatalf("Questions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("question %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuestions_TargetOptionsFromCatalog(t *testing.T) {
	qs := Questions(WizardResult{ProjectName: "blinky"})
	target := qs[0]
	if target.Type != QuestionTypeSelect {
		t.Fatalf("target question type = %v, want select", target.Type)
	}
	names := hardware.TargetNames()
	if len(target.Options) != len(names) {
		t.Fatalf("got %d options, want %d", len(target.Options), len(names))
	}
	for i, opt := range target.Options {
		if opt.Value != names[i] || opt.Label != names[i] {
			t.Errorf("option %d = %+v, want value %q", i, opt, names[i])
		}
		if opt.Desc == "" {
			t.Errorf("option %q has no description", opt.Value)
		}
	}
	if target.Default != names[0] {
		t.Errorf("Default = %q, want %q", target.Default, names[0])
	}
}

func TestQuestions_DevBoardOptionsStartWithNone(t *testing.T) {
	qs := Questions(WizardResult{ProjectName: "blinky"})
	board := qs[1]
	if board.Options[0].Value != "" || board.Options[0].Label != noDevBoardLabel {
		t.Errorf("first option = %+v, want the empty choice", board.Options[0])
	}
	if len(board.Options) != len(hardware.DevBoardNames())+1 {
		t.Errorf("got %d options", len(board.Options))
	}
	for _, opt := range board.Options[1:] {
		if _, err := hardware.ParseDevBoard(opt.Value); err != nil {
			t.Errorf("option %q is not a dev-board: %v", opt.Value, err)
		}
	}
}

func TestEntityOptions_FirstDescriptionLine(t *testing.T) {
	opts := entityOptions([]hardware.SupportedEntity{{Name: "x", Description: "Line one.\nhttps://example.com"}})
	if opts[0].Desc != "Line one." {
		t.Errorf("Desc = %q", opts[0].Desc)
	}
}

func TestQuestions_NameMentionsRoot(t *testing.T) {
	q := Questions(WizardResult{Target: "ecp5-85k"})[0]
	if q.ID != QuestionProjectName {
		t.Fatalf("first question = %s, want %s", q.ID, QuestionProjectName)
	}
	if !strings.Contains(q.Description, "--root") {
		t.Errorf("Description = %q, should mention --root", q.Description)
	}
}

func TestInputValidator(t *testing.T) {
	q := Questions(WizardResult{Target: "ecp5-85k"})[0]
	result := &WizardResult{}
	validate := inputValidator(&q, result)

	if err := validate("   "); err == nil {
		t.Error("blank input should fail for a required question")
	}
	if err := validate("a/b"); !errors.Is(err, project.ErrInvalidProjectName) {
		t.Errorf("validate(a/b) error = %v, want ErrInvalidProjectName", err)
	}
	if result.ProjectName != "" {
		t.Errorf("rejected input was stored: %q", result.ProjectName)
	}
	if err := validate("  blinky "); err != nil {
		t.Fatalf("validate(blinky) error = %v", err)
	}
	if result.ProjectName != "blinky" {
		t.Errorf("ProjectName = %q, want blinky", result.ProjectName)
	}
}

func TestInputValidator_Default(t *testing.T) {
	q := Question{ID: QuestionProjectName, Type: QuestionTypeInput, Default: "my-project"}
	result := &WizardResult{}
	if err := inputValidator(&q, result)(""); err != nil {
		t.Fatal(err)
	}
	if result.ProjectName != "my-project" {
		t.Errorf("ProjectName = %q, want default", result.ProjectName)
	}
}

func TestSaveAnswer(t *testing.T) {
	result := &WizardResult{}
	saveAnswer(QuestionTarget, "ecp5-85k", result)
	saveAnswer(QuestionDevBoard, "ulx3s", result)
	saveAnswer("unknown", "ignored", result)
	if result.Target != "ecp5-85k" || result.DevBoard != "ulx3s" || result.ProjectName != "" {
		t.Errorf("result = %+v", result)
	}
}

func TestBuildSelectField_StoresDefault(t *testing.T) {
	q := Questions(WizardResult{ProjectName: "blinky"})[0]
	result := &WizardResult{}
	if buildSelectField(&q, result) == nil {
		t.Fatal("buildSelectField() returned nil")
	}
	if result.Target != q.Default {
		t.Errorf("Target = %q, want default %q", result.Target, q.Default)
	}
}

func TestRun_NoQuestions(t *testing.T) {
	if _, err := Run(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestNewWizardTheme(t *testing.T) {
	if newWizardTheme() == nil {
		t.Fatal("newWizardTheme() returned nil")
	}
}
