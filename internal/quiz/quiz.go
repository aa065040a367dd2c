// Package quiz generates and grades the 5-question skill verification test.
// Questions come from the LLM when available and fall back to a static,
// skill-matched bank otherwise.
package quiz

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strings"

	"github.com/Prajwal471/PM-Internship-Portal/internal/llm"
	"github.com/Prajwal471/PM-Internship-Portal/internal/prompts"
	"github.com/Prajwal471/PM-Internship-Portal/internal/types"
)

// questionCount is the number of questions per test.
const questionCount = 5

// Generator produces skill verification questions. client may be nil, in
// which case every test uses the fallback bank.
type Generator struct {
	client llm.Client
}

// NewGenerator builds a Generator around an optional LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Questions returns up to five questions tailored to the candidate's
// skills. Any AI failure degrades to the fallback bank, never an error.
func (g *Generator) Questions(ctx context.Context, skills []string, educationLevel string) ([]types.Question, error) {
	if g.client == nil {
		return FallbackQuestions(skills), nil
	}

	template, err := prompts.Get("quiz.json", "generate-questions")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Skills":         strings.Join(skills, ", "),
		"EducationLevel": educationLevel,
	})

	response, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("question generation failed, using fallback bank: %v", err)
		return FallbackQuestions(skills), nil
	}

	questions, ok := parseQuestions(response)
	if !ok {
		log.Printf("no usable questions in model response, using fallback bank")
		return FallbackQuestions(skills), nil
	}
	return questions, nil
}

// parseQuestions extracts valid questions from a model response. Items
// missing text, a four-option list, an in-range answer index or a skill
// label are dropped.
func parseQuestions(response string) ([]types.Question, bool) {
	cleaned := llm.CleanJSONBlock(response)
	block, ok := llm.FirstJSONArray(cleaned)
	if !ok {
		return nil, false
	}

	var raw []types.Question
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, false
	}

	valid := make([]types.Question, 0, questionCount)
	for _, q := range raw {
		if q.Question == "" || len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer >= 4 || q.Skill == "" {
			continue
		}
		valid = append(valid, q)
		if len(valid) == questionCount {
			break
		}
	}
	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}

// Grade scores a submission against its question set. Out-of-range or
// missing answers count as wrong and record "No answer".
func Grade(req *types.SubmitTestRequest) *types.TestResult {
	correct := 0
	answers := make([]types.AnswerRecord, 0, len(req.Questions))

	for i, question := range req.Questions {
		record := types.AnswerRecord{
			Question: question.Question,
			Answer:   "No answer",
		}
		if i < len(req.Answers) {
			answer := req.Answers[i]
			if answer >= 0 && answer < len(question.Options) {
				record.Answer = question.Options[answer]
				record.IsCorrect = answer == question.CorrectAnswer
			}
		}
		if record.IsCorrect {
			correct++
		}
		answers = append(answers, record)
	}

	score := 0
	if len(req.Questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(req.Questions)) * 100))
	}

	return &types.TestResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(req.Questions),
		Answers:        answers,
		AutoSubmitted:  req.AutoSubmitted,
		Reason:         req.Reason,
	}
}
