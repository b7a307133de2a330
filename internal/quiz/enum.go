package quiz

type State string

const (
	StateCategorySelection State = "category-selection"
	StateDomainSelection   State = "domain-selection"
	StateGenerating        State = "generating"
	StateQuiz              State = "quiz"
	StateResults           State = "results"
)

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackReady    FeedbackStatus = "ready"
	FeedbackFallback FeedbackStatus = "fallback"
)

var AllFeedbackStatuses = []FeedbackStatus{
	FeedbackPending,
	FeedbackReady,
	FeedbackFallback,
}

func (s FeedbackStatus) IsValid() bool {
	for _, v := range AllFeedbackStatuses {
		if s == v {
			return true
		}
	}
	return false
}
