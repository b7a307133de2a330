package aiquiz

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultQuestionCount = 10
	MaxQuestionCount     = 20
)

const quizSystemPrompt = `You are an expert quiz generator specializing in technical and soft skills assessments. Create high-quality, accurate, professional questions. Return ONLY valid JSON - no markdown, no code blocks, no extra text.`

const feedbackSystemPrompt = `You are a supportive educational coach. Provide brief, encouraging, neurodiversity-affirming feedback.`

const quizUserTemplate = `Create a %[1]s-level quiz about "%[2]s" with exactly %[3]d multiple-choice questions.

REQUIREMENTS:
- Each question: exactly 4 options
- correctAnswer: index 0-3 of the correct option
- Clear, professional questions
- Practical, job-relevant content
- Include detailed explanations

RETURN ONLY THIS JSON STRUCTURE:
{
  "title": "%[4]s",
  "questions": [
    {
      "question": "Your question here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Why this answer is correct and the others are wrong."
    }
  ]
}

Generate all %[3]d questions. Return ONLY the JSON.`

const feedbackUserTemplate = `Student scored %d/%d (%d%%) on a %s quiz.

Write 2-3 encouraging sentences:
- Acknowledge their achievement
- Highlight strengths
- If below 100%%, offer one actionable tip
- Keep warm and professional

Write feedback now (plain text, no JSON):`

// Normalize fills in the default difficulty and question count and caps the
// count at MaxQuestionCount.
func (r QuizRequest) Normalize() QuizRequest {
	r.Topic = strings.TrimSpace(r.Topic)
	if !r.Difficulty.IsValid() {
		r.Difficulty = DifficultyMedium
	}
	if r.QuestionCount <= 0 {
		r.QuestionCount = DefaultQuestionCount
	}
	if r.QuestionCount > MaxQuestionCount {
		r.QuestionCount = MaxQuestionCount
	}
	return r
}

func QuizTitle(topic string, difficulty Difficulty) string {
	return fmt.Sprintf("%s Quiz - %s Level", capitalize(strings.TrimSpace(topic)), capitalize(string(difficulty)))
}

func BuildQuizPrompt(req QuizRequest) (system, user string) {
	req = req.Normalize()
	user = fmt.Sprintf(quizUserTemplate, req.Difficulty, req.Topic, req.QuestionCount, QuizTitle(req.Topic, req.Difficulty))
	return quizSystemPrompt, user
}

func BuildFeedbackPrompt(score, total int, topic string) (system, user string) {
	return feedbackSystemPrompt, fmt.Sprintf(feedbackUserTemplate, score, total, Percentage(score, total), topic)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
