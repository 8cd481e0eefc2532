package services

import (
	"fmt"
	"sort"
	"strings"

	"mindrelay-backend/internal/models"
)

// BuildGeneralChatPrompt renders the general counsellor template. The model
// infers the condition category from the message, then routes to the roster.
func BuildGeneralChatPrompt(message string) string {
	var b strings.Builder

	b.WriteString("You are a compassionate mental health counsellor on a support platform.\n\n")
	b.WriteString("A user sent this message:\n\"")
	b.WriteString(message)
	b.WriteString("\"\n\n")

	b.WriteString("Follow these steps:\n")
	b.WriteString("1. Infer which ONE of these condition categories best fits the message: ")
	b.WriteString(strings.Join(Categories, ", "))
	b.WriteString(".\n")
	b.WriteString("2. Select exactly one professional for that category from this roster:\n")
	b.WriteString(rosterTable())
	b.WriteString("3. Write a short, empathetic reply to the user.\n")
	writeLinkRule(&b, 4)

	return b.String()
}

// BuildSpecialisedChatPrompt renders the specialised counsellor template.
// The category is supplied by the caller instead of inferred.
func BuildSpecialisedChatPrompt(disorder, message string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a compassionate mental health counsellor specialising in %s.\n\n", disorder))
	b.WriteString("A user sent this message:\n\"")
	b.WriteString(message)
	b.WriteString("\"\n\n")

	b.WriteString("Follow these steps:\n")
	b.WriteString(fmt.Sprintf("1. Select exactly one professional for the %s category from this roster:\n", disorder))
	b.WriteString(rosterTable())
	b.WriteString("2. Write a short, empathetic reply to the user.\n")
	writeLinkRule(&b, 3)

	return b.String()
}

// writeLinkRule appends the shared profile-link instruction as step n.
func writeLinkRule(b *strings.Builder, n int) {
	b.WriteString(fmt.Sprintf("%d. End the reply by recommending the selected professional with their profile link. ", n))
	b.WriteString("Build the link by lower-casing the name and replacing spaces with hyphens, prefixed with ")
	b.WriteString(ProfileBasePath)
	b.WriteString("/. Example: Dr. Priya Sharma -> ")
	b.WriteString(ProfileLink("Dr. Priya Sharma"))
	b.WriteString(".\n")
}

// BuildQuizPrompt renders either the question-generation or the
// answer-evaluation template, selected by the request's resolved mode.
func BuildQuizPrompt(req models.QuizRequest) string {
	if req.Mode() == models.QuizModeGenerate {
		return buildQuizGeneratePrompt(req)
	}
	return buildQuizEvaluatePrompt(req)
}

func buildQuizGeneratePrompt(req models.QuizRequest) string {
	var b strings.Builder

	b.WriteString("You are a mental health assessment assistant.\n\n")
	switch req.Type {
	case models.QuizTypeProgress:
		b.WriteString(fmt.Sprintf("Generate exactly 10 yes/no questions to track how well the user is progressing in managing %s.\n", req.Disorder))
	default:
		b.WriteString(fmt.Sprintf("Generate exactly 10 yes/no questions to help diagnose whether the user may be experiencing %s.\n", req.Disorder))
	}
	b.WriteString("Return only a numbered list from 1 to 10. Each question must be answerable with yes or no. Do not evaluate or answer any question.\n")

	return b.String()
}

func buildQuizEvaluatePrompt(req models.QuizRequest) string {
	var b strings.Builder

	b.WriteString("You are a mental health assessment assistant.\n\n")
	b.WriteString(fmt.Sprintf("The user completed a %s quiz about %s. Their answers:\n", req.Type, req.Disorder))

	// Stable answer order so identical requests render identical prompts.
	questions := make([]string, 0, len(req.Answers))
	for q := range req.Answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)
	for _, q := range questions {
		b.WriteString(fmt.Sprintf("Q: %s A: %s\n", q, req.Answers[q]))
	}

	b.WriteString("\nScore the answers out of 100 and give one recommendation.\n")
	b.WriteString("Respond with exactly these lines:\n")
	b.WriteString("Your score is X/100.\n")
	b.WriteString("Recommendation: <one recommendation>\n")

	if req.Type == models.QuizTypeDiagnosis && req.Disorder == CategoryGeneral {
		b.WriteString("Possible conditions: <comma-separated list of possible conditions, no justification>\n")
	}

	return b.String()
}

// BuildChecklistPrompt renders the daily-task or remarks template. Remarks
// with an empty task list are rejected at the handler before this point.
func BuildChecklistPrompt(req models.ChecklistRequest) string {
	if req.Type == models.ChecklistTypeChecklist {
		return buildChecklistTasksPrompt(req.Disorder)
	}
	return buildChecklistRemarksPrompt(req)
}

func buildChecklistTasksPrompt(disorder string) string {
	var b strings.Builder

	b.WriteString("You are a mental health support assistant.\n\n")
	b.WriteString(fmt.Sprintf("Generate exactly 5 short daily tasks that help someone manage %s.\n", disorder))
	b.WriteString("Return only a numbered list from 1 to 5, nothing else.\n")

	return b.String()
}

func buildChecklistRemarksPrompt(req models.ChecklistRequest) string {
	completed := req.CompletedCount()
	total := len(req.Tasks)

	var b strings.Builder
	b.WriteString("You are a mental health support assistant.\n\n")

	if completed == total {
		b.WriteString(fmt.Sprintf("The user completed all %d of their daily tasks for managing %s today.\n", total, req.Disorder))
		b.WriteString("Write a short encouraging remark celebrating their consistency.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("The user completed %d of %d daily tasks for managing %s today.\n", completed, total, req.Disorder))
	b.WriteString("Write a short remark that explains why completing the full checklist matters, ")
	b.WriteString("mentions the consequences of skipping tasks, and motivates the user to try again tomorrow.\n")

	return b.String()
}
