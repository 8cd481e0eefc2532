package services

import (
	"strings"
	"testing"

	"mindrelay-backend/internal/models"
)

func TestBuildGeneralChatPrompt(t *testing.T) {
	prompt := BuildGeneralChatPrompt("I can't sleep and I worry all the time")

	if !strings.Contains(prompt, "I can't sleep and I worry all the time") {
		t.Error("Prompt missing user message")
	}
	for _, cat := range Categories {
		if !strings.Contains(prompt, cat) {
			t.Errorf("Prompt missing category %q", cat)
		}
	}
	if !strings.Contains(prompt, "Dr. Priya Sharma") {
		t.Error("Prompt missing roster")
	}
	if !strings.Contains(prompt, ProfileLink("Dr. Priya Sharma")) {
		t.Error("Prompt missing link-rule example")
	}
}

func TestBuildSpecialisedChatPrompt(t *testing.T) {
	prompt := BuildSpecialisedChatPrompt("OCD", "I keep checking the locks")

	if !strings.Contains(prompt, "specialising in OCD") {
		t.Error("Prompt should name the supplied disorder")
	}
	if strings.Contains(prompt, "Infer which") {
		t.Error("Specialised prompt must not ask the model to infer the category")
	}
	if !strings.Contains(prompt, "Dr. Anjali Rao") {
		t.Error("Prompt missing roster")
	}
}

func TestBuildQuizPrompt_GenerateMode(t *testing.T) {
	tests := []struct {
		name     string
		quizType string
		want     string
		notWant  string
	}{
		{"progress wording", models.QuizTypeProgress, "progressing in managing", "diagnose"},
		{"diagnosis wording", models.QuizTypeDiagnosis, "diagnose", "progressing"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := models.QuizRequest{Type: tc.quizType, Disorder: "ADHD"}
			prompt := BuildQuizPrompt(req)

			if !strings.Contains(prompt, "exactly 10 yes/no questions") {
				t.Error("Generate prompt must ask for exactly 10 yes/no questions")
			}
			if !strings.Contains(prompt, tc.want) {
				t.Errorf("Prompt missing %q wording", tc.want)
			}
			if strings.Contains(prompt, tc.notWant) {
				t.Errorf("Prompt should not contain %q wording", tc.notWant)
			}
			if strings.Contains(prompt, "score") {
				t.Error("Generate prompt must not ask for scoring")
			}
		})
	}
}

func TestBuildQuizPrompt_EvaluateMode(t *testing.T) {
	req := models.QuizRequest{
		Type:     models.QuizTypeDiagnosis,
		Disorder: CategoryGeneral,
		Answers:  map[string]string{"Do you sleep well?": "no"},
	}
	prompt := BuildQuizPrompt(req)

	if !strings.Contains(prompt, "Your score is X/100.") {
		t.Error("Evaluate prompt missing score line")
	}
	if !strings.Contains(prompt, "Recommendation:") {
		t.Error("Evaluate prompt missing recommendation line")
	}
	if !strings.Contains(prompt, "Possible conditions:") {
		t.Error("Diagnosis of the generic category must request possible conditions")
	}
	if !strings.Contains(prompt, "Do you sleep well?") {
		t.Error("Evaluate prompt missing the user's answers")
	}
}

func TestBuildQuizPrompt_EvaluateMode_NoConditionsLine(t *testing.T) {
	tests := []struct {
		name string
		req  models.QuizRequest
	}{
		{"progress type", models.QuizRequest{
			Type: models.QuizTypeProgress, Disorder: CategoryGeneral,
			Answers: map[string]string{"Q1": "yes"},
		}},
		{"specific disorder", models.QuizRequest{
			Type: models.QuizTypeDiagnosis, Disorder: "PTSD",
			Answers: map[string]string{"Q1": "yes"},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildQuizPrompt(tc.req)
			if strings.Contains(prompt, "Possible conditions:") {
				t.Error("Possible conditions line only belongs to diagnosis of the generic category")
			}
		})
	}
}

func TestBuildQuizPrompt_EvaluateMode_StableAnswerOrder(t *testing.T) {
	req := models.QuizRequest{
		Type:     models.QuizTypeProgress,
		Disorder: "OCD",
		Answers: map[string]string{
			"B question": "no",
			"A question": "yes",
			"C question": "yes",
		},
	}

	first := BuildQuizPrompt(req)
	for i := 0; i < 10; i++ {
		if BuildQuizPrompt(req) != first {
			t.Fatal("Evaluate prompt must be deterministic for identical requests")
		}
	}

	if strings.Index(first, "A question") > strings.Index(first, "B question") {
		t.Error("Answers should render in sorted question order")
	}
}

func TestBuildChecklistPrompt_TasksMode(t *testing.T) {
	req := models.ChecklistRequest{Disorder: "Anxiety & Depression", Type: models.ChecklistTypeChecklist}
	prompt := BuildChecklistPrompt(req)

	if !strings.Contains(prompt, "exactly 5 short daily tasks") {
		t.Error("Checklist prompt must ask for exactly 5 tasks")
	}
	if !strings.Contains(prompt, "Anxiety & Depression") {
		t.Error("Checklist prompt missing disorder")
	}
}

func TestBuildChecklistPrompt_RemarksBranches(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []models.ChecklistTask
		want    string
		notWant string
	}{
		{
			"all complete",
			[]models.ChecklistTask{{Done: true}, {Done: true}},
			"encouraging", "consequences",
		},
		{
			"partially complete",
			[]models.ChecklistTask{{Done: true}, {Done: false}},
			"consequences", "celebrating",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := models.ChecklistRequest{
				Disorder: "PTSD",
				Type:     models.ChecklistTypeRemarks,
				Tasks:    tc.tasks,
			}
			prompt := BuildChecklistPrompt(req)

			if !strings.Contains(prompt, tc.want) {
				t.Errorf("Prompt missing %q wording:\n%s", tc.want, prompt)
			}
			if strings.Contains(prompt, tc.notWant) {
				t.Errorf("Prompt should not contain %q wording:\n%s", tc.notWant, prompt)
			}
		})
	}
}

func TestCompletedCount(t *testing.T) {
	req := models.ChecklistRequest{
		Tasks: []models.ChecklistTask{{Done: true}, {Done: false}, {Done: true}},
	}
	if got := req.CompletedCount(); got != 2 {
		t.Errorf("Expected 2 completed, got %d", got)
	}
}
