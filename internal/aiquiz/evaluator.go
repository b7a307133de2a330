package aiquiz

import "errors"

var ErrInvalidEvaluationData = errors.New("invalid evaluation data")

// Percentage is round(100*score/total) with halves rounded up. A
// non-positive total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// Evaluate compares answers to the questions index by index. Lengths must
// match.
func Evaluate(questions []QuizQuestion, answers []int) (*EvaluationResult, error) {
	if len(questions) == 0 || len(questions) != len(answers) {
		return nil, ErrInvalidEvaluationData
	}

	result := &EvaluationResult{
		TotalQuestions: len(questions),
		CorrectAnswers: make([]bool, len(questions)),
	}
	for i, q := range questions {
		if answers[i] == q.CorrectAnswer {
			result.CorrectAnswers[i] = true
			result.Score++
		}
	}
	result.Percentage = Percentage(result.Score, result.TotalQuestions)
	return result, nil
}
