package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForgetPredictorBounds(t *testing.T) {
	p := NewForgetPredictorService()
	for c := 1; c <= 5; c++ {
		prev := 100
		for s := 0.0; s <= 100; s += 0.5 {
			f := p.Predict(c, s)
			assert.GreaterOrEqual(t, f, 10)
			assert.LessOrEqual(t, f, 90)
			assert.LessOrEqual(t, f, prev, "non-increasing in score (c=%d s=%v)", c, s)
			prev = f
		}
	}
}

func TestForgetPredictorConfidenceMonotone(t *testing.T) {
	p := NewForgetPredictorService()
	for s := 0.0; s <= 100; s += 5 {
		for c := 1; c < 5; c++ {
			assert.GreaterOrEqual(t, p.Predict(c, s), p.Predict(c+1, s))
		}
	}
}

func TestForgetPredictorValues(t *testing.T) {
	p := NewForgetPredictorService()
	tests := []struct {
		confidence int
		score      float64
		want       int
	}{
		{confidence: 3, score: 100, want: 24},
		{confidence: 5, score: 100, want: 10},
		{confidence: 1, score: 0, want: 90},
		{confidence: 2, score: 66.67, want: 65},
		{confidence: 4, score: 50, want: 66},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Predict(tt.confidence, tt.score), "c=%d s=%v", tt.confidence, tt.score)
	}
}
