package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	ErrMalformedJSON = errors.New("quiz response is not valid JSON")
	ErrNoQuestions   = errors.New("quiz response has no questions")
)

type MalformedQuestionError struct {
	Index  int
	Reason string
}

func (e *MalformedQuestionError) Error() string {
	return fmt.Sprintf("invalid question at index %d: %s", e.Index, e.Reason)
}

var (
	jsonFence  = regexp.MustCompile("```json\\s*")
	bareFence  = regexp.MustCompile("```\\s*")
	objectSpan = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON strips code fences and returns the span from the first "{" to
// the last "}". Text without braces is returned fenceless and trimmed.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = jsonFence.ReplaceAllString(s, "")
	s = bareFence.ReplaceAllString(s, "")
	if m := objectSpan.FindString(s); m != "" {
		return m
	}
	return strings.TrimSpace(s)
}

type rawQuiz struct {
	Title     json.RawMessage `json:"title"`
	Questions json.RawMessage `json:"questions"`
}

// ParseQuiz turns raw model output into a validated QuizData. It never
// returns a partial quiz.
func ParseQuiz(raw string) (*QuizData, error) {
	candidate := ExtractJSON(raw)

	var doc rawQuiz
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var title string
	if len(doc.Title) > 0 && !isNull(doc.Title) {
		if err := json.Unmarshal(doc.Title, &title); err != nil {
			return nil, fmt.Errorf("%w: title is not a string", ErrMalformedJSON)
		}
	}

	var items []json.RawMessage
	if len(doc.Questions) == 0 || isNull(doc.Questions) {
		return nil, ErrNoQuestions
	}
	if err := json.Unmarshal(doc.Questions, &items); err != nil || len(items) == 0 {
		return nil, ErrNoQuestions
	}

	quiz := &QuizData{Title: strings.TrimSpace(title), Questions: make([]QuizQuestion, 0, len(items))}
	for i, item := range items {
		q, err := parseQuestion(i, item)
		if err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	return quiz, nil
}

func parseQuestion(index int, item json.RawMessage) (QuizQuestion, error) {
	malformed := func(reason string) error {
		return &MalformedQuestionError{Index: index, Reason: reason}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return QuizQuestion{}, malformed("not an object")
	}

	var q QuizQuestion
	if err := json.Unmarshal(fields["question"], &q.Question); err != nil || strings.TrimSpace(q.Question) == "" {
		return QuizQuestion{}, malformed("question text is missing")
	}

	if err := json.Unmarshal(fields["options"], &q.Options); err != nil {
		return QuizQuestion{}, malformed("options must be a list of strings")
	}
	if len(q.Options) != 4 {
		return QuizQuestion{}, malformed(fmt.Sprintf("expected 4 options, got %d", len(q.Options)))
	}

	rawAnswer, ok := fields["correctAnswer"]
	if !ok || isNull(rawAnswer) {
		return QuizQuestion{}, malformed("correctAnswer is missing")
	}
	var answer float64
	if err := json.Unmarshal(rawAnswer, &answer); err != nil {
		return QuizQuestion{}, malformed("correctAnswer must be a number")
	}
	if answer != math.Trunc(answer) || answer < 0 || answer > 3 {
		return QuizQuestion{}, malformed("correctAnswer must be an integer between 0 and 3")
	}
	q.CorrectAnswer = int(answer)

	if exp, ok := fields["explanation"]; ok && !isNull(exp) {
		if err := json.Unmarshal(exp, &q.Explanation); err != nil {
			return QuizQuestion{}, malformed("explanation must be a string")
		}
	}

	return q, nil
}

// ValidateQuiz checks an already decoded quiz against the same rules
// ParseQuiz applies.
func ValidateQuiz(quiz *QuizData) error {
	if quiz == nil || len(quiz.Questions) == 0 {
		return ErrNoQuestions
	}
	for i, q := range quiz.Questions {
		switch {
		case strings.TrimSpace(q.Question) == "":
			return &MalformedQuestionError{Index: i, Reason: "question text is missing"}
		case len(q.Options) != 4:
			return &MalformedQuestionError{Index: i, Reason: fmt.Sprintf("expected 4 options, got %d", len(q.Options))}
		case q.CorrectAnswer < 0 || q.CorrectAnswer > 3:
			return &MalformedQuestionError{Index: i, Reason: "correctAnswer must be an integer between 0 and 3"}
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
