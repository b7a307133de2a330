package remark

type RecommendationStatus string

const (
	StatusRecommended    RecommendationStatus = "recommended"
	StatusPending        RecommendationStatus = "pending"
	StatusNotRecommended RecommendationStatus = "not_recommended"
)

var AllStatuses = []RecommendationStatus{
	StatusRecommended,
	StatusPending,
	StatusNotRecommended,
}

func (s RecommendationStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
