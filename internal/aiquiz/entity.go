package aiquiz

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

// QuizQuestion always has exactly four options and a CorrectAnswer in [0,3].
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type QuizData struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type EvaluationResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Percentage     int    `json:"percentage"`
	CorrectAnswers []bool `json:"correctAnswers"`
}

type Feedback struct {
	Text       string `json:"feedback"`
	Percentage int    `json:"percentage"`
	Fallback   bool   `json:"fallback"`
}
