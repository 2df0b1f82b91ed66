package service

import "math"

const (
	MinForgetProbability = 10
	MaxForgetProbability = 90
)

type ForgetPredictorService interface {
	// Predict estimates, in percent, how likely the student is to forget a
	// topic given their confidence (1-5) and quiz score (0-100).
	Predict(confidenceLevel int, score float64) int
}

type forgetPredictorService struct{}

func NewForgetPredictorService() ForgetPredictorService {
	return &forgetPredictorService{}
}

// Predict is a monotonic heuristic, not a trained model: lower scores and
// lower confidence raise the result, clamped to [10, 90].
func (s *forgetPredictorService) Predict(confidenceLevel int, score float64) int {
	base := 100 - score
	confidenceFactor := float64((6 - confidenceLevel) * 8)
	p := math.Max(MinForgetProbability, math.Min(MaxForgetProbability, base+confidenceFactor))
	return int(math.Round(p))
}
