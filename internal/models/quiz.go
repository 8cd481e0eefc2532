package models

// Quiz type values accepted by /api/quiz.
const (
	QuizTypeProgress  = "progress"
	QuizTypeDiagnosis = "diagnosis"
)

// QuizRequest is the payload for /api/quiz. Answers is optional: its
// presence selects evaluation mode, its absence question generation.
type QuizRequest struct {
	Type     string            `json:"type"`
	Disorder string            `json:"disorder"`
	Answers  map[string]string `json:"answers,omitempty"`
}

// QuizMode is the resolved variant of a QuizRequest.
type QuizMode int

const (
	QuizModeGenerate QuizMode = iota
	QuizModeEvaluate
)

// Mode resolves the generate/evaluate variant once, so handlers and prompt
// builders branch on a tag instead of re-sniffing the answers field.
func (r QuizRequest) Mode() QuizMode {
	if r.Answers == nil {
		return QuizModeGenerate
	}
	return QuizModeEvaluate
}
