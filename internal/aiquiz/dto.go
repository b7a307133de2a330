package aiquiz

type QuizRequest struct {
	Topic         string     `json:"topic" validate:"required,max=120"`
	Difficulty    Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionCount int        `json:"question_count" validate:"omitempty,min=1,max=20"`
}

type FeedbackRequest struct {
	Score int    `json:"score" validate:"min=0"`
	Total int    `json:"total" validate:"required,min=1,gtefield=Score"`
	Topic string `json:"topic" validate:"required,max=120"`
}

type StatusResponse struct {
	Configured bool `json:"configured"`
}
