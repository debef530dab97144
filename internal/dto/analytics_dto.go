package dto

import (
	"time"

	"brightside-be/pkg/emotion"
)

type EmotionalAverages struct {
	AvgMood      int `json:"avg_mood"`
	AvgDistress  int `json:"avg_distress"`
	AvgStability int `json:"avg_stability"`
}

type DebateAverages struct {
	AvgCoherence      int `json:"avg_coherence"`
	AvgPersuasiveness int `json:"avg_persuasiveness"`
	AvgKnowledgeDepth int `json:"avg_knowledge_depth"`
	AvgArticulation   int `json:"avg_articulation"`
	AvgOverallScore   int `json:"avg_overall_score"`
}

type EmotionalTrend struct {
	TrendDirection     string        `json:"trend_direction"` // improving | worsening | stable
	Volatility         string        `json:"volatility"`      // high | medium | low
	DistressFrequency  float64       `json:"distress_frequency"`
	MostCommonEmotion  emotion.State `json:"most_common_emotion"`
	EmotionalStability int           `json:"emotional_stability"`
}

type DebateTrend struct {
	TrendDirection      string   `json:"trend_direction"` // improving | declining | stable
	StrongestArea       string   `json:"strongest_area"`
	WeakestArea         string   `json:"weakest_area"`
	MostDiscussedTopics []string `json:"most_discussed_topics"`
	ImprovementRate     int      `json:"improvement_rate"`
}

type Streak struct {
	Type      string `json:"type"` // positive | negative
	Count     int    `json:"count"`
	Metric    string `json:"metric"` // mood | debate
	Threshold int    `json:"threshold"`
}

type Warning struct {
	Level     string    `json:"level"` // low | medium | high
	Message   string    `json:"message"`
	Metric    string    `json:"metric"`
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type DebateProgress struct {
	LastScore        int      `json:"last_score"`
	Improvement      int      `json:"improvement"`
	ConsistentAreas  []string `json:"consistent_areas"`
	ChallengingAreas []string `json:"challenging_areas"`
}

type CombinedInsights struct {
	EmotionalState    string `json:"emotional_state"`
	DebatePerformance string `json:"debate_performance"`
	RecommendedAction string `json:"recommended_action"`
}

type RealTimeMetrics struct {
	CurrentMood    int              `json:"current_mood"`
	MoodTrend      string           `json:"mood_trend"` // up | down | stable
	DistressLevel  int              `json:"distress_level"`
	ActiveStreaks  []Streak         `json:"active_streaks"`
	Warnings       []Warning        `json:"warnings"`
	DebateProgress DebateProgress   `json:"debate_progress"`
	Insights       CombinedInsights `json:"combined_insights"`
}
