package dto

import "time"

// DifficultyAccuracy holds the rounded mean score per difficulty bucket.
type DifficultyAccuracy struct {
	Easy   int `json:"Easy"`
	Medium int `json:"Medium"`
	Hard   int `json:"Hard"`
}

type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

type GlobalTrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
	Topic string    `json:"topic"`
}

type ScatterPoint struct {
	Time  int     `json:"time"`
	Score float64 `json:"score"`
	Topic string  `json:"topic"`
}

type TopicStats struct {
	Topic              string             `json:"topic"`
	Sessions           int                `json:"sessions"`
	Quizzes            int                `json:"quizzes"`
	AvgScore           float64            `json:"avgScore"`
	BestScore          float64            `json:"bestScore"`
	Trend              []TrendPoint       `json:"trend"`
	LastLearned        *time.Time         `json:"lastLearned"`
	TimeInvested       int                `json:"timeInvested"`
	DifficultyAccuracy DifficultyAccuracy `json:"difficultyAccuracy"`
}

type Overview struct {
	TotalSessions     int     `json:"totalSessions"`
	TotalQuizzes      int     `json:"totalQuizzes"`
	GlobalAvgScore    float64 `json:"globalAvgScore"`
	TopicsCount       int     `json:"topicsCount"`
	TotalTimeInvested int     `json:"totalTimeInvested"`
}

type Charts struct {
	Heatmap                  map[string]int     `json:"heatmap"`
	Topics                   []TopicStats       `json:"topics"`
	GlobalTrend              []GlobalTrendPoint `json:"globalTrend"`
	GlobalDifficultyAccuracy DifficultyAccuracy `json:"globalDifficultyAccuracy"`
	Scatter                  []ScatterPoint     `json:"scatter"`
}

type Analytics struct {
	Overview Overview `json:"overview"`
	Charts   Charts   `json:"charts"`
}

type AnalyticsResponse struct {
	Success bool `json:"success" example:"true"`
	Analytics
}

type TopicHistoryEntry struct {
	Topic           string    `json:"topic"`
	Attempts        int       `json:"attempts"`
	AvgScore        float64   `json:"avgScore"`
	LastAttemptDate time.Time `json:"lastAttemptDate"`
}

type Progress struct {
	TotalAttempts int                 `json:"totalAttempts"`
	AvgScore      float64             `json:"avgScore"`
	TopicsLearned int                 `json:"topicsLearned"`
	History       []TopicHistoryEntry `json:"history"`
}

type ProgressResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    Progress `json:"data"`
}
