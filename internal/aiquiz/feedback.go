package aiquiz

import "fmt"

// FallbackFeedback picks a canned message by percentage band. It is used
// whenever the model cannot produce feedback.
func FallbackFeedback(score, total int, topic string) string {
	p := Percentage(score, total)
	switch {
	case p >= 90:
		return fmt.Sprintf("Outstanding work on this %s quiz! You scored %d/%d, demonstrating excellent mastery. Keep up the great work!", topic, score, total)
	case p >= 80:
		return fmt.Sprintf("Great job! You scored %d/%d on the %s quiz. Review the explanations to strengthen your knowledge further.", score, total, topic)
	case p >= 70:
		return fmt.Sprintf("Good effort on the %s quiz! You got %d/%d correct. Take time to review the explanations provided.", topic, score, total)
	case p >= 60:
		return fmt.Sprintf("You completed the %s quiz with %d/%d. Review each question carefully to improve your understanding.", topic, score, total)
	default:
		return fmt.Sprintf("You scored %d/%d on the %s quiz. This is a learning opportunity - review all explanations carefully. Keep practicing!", score, total, topic)
	}
}
