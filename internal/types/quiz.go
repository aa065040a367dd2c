package types

import "github.com/go-playground/validator/v10"

// Question is a single multiple-choice quiz item. CorrectAnswer indexes
// Options.
type Question struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"min=0,max=3"`
	Skill         string   `json:"skill" validate:"required"`
}

// SubmitTestRequest is the quiz submission payload. AutoSubmitted and Reason
// are opaque passthrough set by the client-side proctoring; the server only
// records them.
type SubmitTestRequest struct {
	Questions     []Question `json:"questions" validate:"required,min=1,dive"`
	Answers       []int      `json:"answers" validate:"required"`
	AutoSubmitted bool       `json:"autoSubmitted"`
	Reason        string     `json:"reason,omitempty"`
}

// Validate validates the SubmitTestRequest using the validator.
func (r *SubmitTestRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnswerRecord captures how one question was answered.
type AnswerRecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

// TestResult is the graded outcome of a quiz submission.
type TestResult struct {
	Score          int            `json:"score"`
	CorrectAnswers int            `json:"correctAnswers"`
	TotalQuestions int            `json:"totalQuestions"`
	Answers        []AnswerRecord `json:"answers"`
	AutoSubmitted  bool           `json:"autoSubmitted"`
	Reason         string         `json:"reason,omitempty"`
}

// ChatRequest is the chatbot payload.
type ChatRequest struct {
	Message  string `json:"message" validate:"required,min=1"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en hi"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
