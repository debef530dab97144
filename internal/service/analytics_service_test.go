package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/memory"
	"brightside-be/pkg/emotion"
)

func eqSession(ts time.Time, mood, distress, stability int) *entity.EQSession {
	return &entity.EQSession{
		Id:             uuid.New(),
		Timestamp:      ts,
		MoodScore:      mood,
		DistressLevel:  distress,
		StabilityScore: stability,
	}
}

func debateSession(ts time.Time, topic string, m entity.PerformanceMetrics) *entity.DebateSession {
	return &entity.DebateSession{
		Id:                 uuid.New(),
		Timestamp:          ts,
		Topic:              topic,
		PerformanceMetrics: m,
	}
}

func TestEmotionalAverages(t *testing.T) {
	base := time.Now()

	t.Run("empty window defaults to the midpoint", func(t *testing.T) {
		got := emotionalAverages(nil)
		if got.AvgMood != 50 || got.AvgDistress != 50 || got.AvgStability != 50 {
			t.Errorf("got %+v, want all 50", got)
		}
	})

	t.Run("averages and rounds", func(t *testing.T) {
		got := emotionalAverages([]*entity.EQSession{
			eqSession(base, 70, 20, 80),
			eqSession(base, 80, 30, 90),
		})
		if got.AvgMood != 75 || got.AvgDistress != 25 || got.AvgStability != 85 {
			t.Errorf("got %+v, want {75 25 85}", got)
		}
	})
}

func TestAnalyzeEmotionalTrend(t *testing.T) {
	base := time.Now().Add(-48 * time.Hour)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	t.Run("fewer than three sessions uses safe defaults", func(t *testing.T) {
		got := analyzeEmotionalTrend([]*entity.EQSession{
			eqSession(at(0), 80, 10, 80),
			eqSession(at(1), 20, 90, 20),
		})
		if got.TrendDirection != "stable" || got.Volatility != "low" ||
			got.DistressFrequency != 0 || got.MostCommonEmotion != emotion.StateNeutral ||
			got.EmotionalStability != 50 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("rising mood halves read improving", func(t *testing.T) {
		got := analyzeEmotionalTrend([]*entity.EQSession{
			eqSession(at(0), 40, 20, 60),
			eqSession(at(1), 40, 25, 60),
			eqSession(at(2), 60, 15, 70),
			eqSession(at(3), 80, 10, 80),
		})
		if got.TrendDirection != "improving" {
			t.Errorf("direction = %s, want improving", got.TrendDirection)
		}
		if got.Volatility != "low" {
			t.Errorf("volatility = %s, want low", got.Volatility)
		}
		if got.DistressFrequency != 0 {
			t.Errorf("distress frequency = %v, want 0", got.DistressFrequency)
		}
		if got.MostCommonEmotion != emotion.StateNeutral {
			t.Errorf("most common = %s, want neutral", got.MostCommonEmotion)
		}
		if got.EmotionalStability != 87 {
			t.Errorf("stability = %d, want 87", got.EmotionalStability)
		}
	})

	t.Run("label weights the halves equally in odd windows", func(t *testing.T) {
		// Mean of the per-session moods would be 33 and label sad; the mean of
		// the two half averages is 25, which falls through to the distress
		// frequency branch.
		got := analyzeEmotionalTrend([]*entity.EQSession{
			eqSession(at(0), 0, 80, 20),
			eqSession(at(1), 0, 80, 20),
			eqSession(at(2), 100, 10, 80),
		})
		if got.MostCommonEmotion != emotion.StateDistressed {
			t.Errorf("most common = %s, want distressed", got.MostCommonEmotion)
		}
		if got.TrendDirection != "improving" {
			t.Errorf("direction = %s, want improving", got.TrendDirection)
		}
		if got.EmotionalStability != 17 {
			t.Errorf("stability = %d, want 17", got.EmotionalStability)
		}
	})

	t.Run("large swings read worsening and high volatility", func(t *testing.T) {
		got := analyzeEmotionalTrend([]*entity.EQSession{
			eqSession(at(0), 90, 80, 50),
			eqSession(at(1), 30, 75, 40),
			eqSession(at(2), 85, 72, 50),
			eqSession(at(3), 20, 90, 30),
		})
		if got.TrendDirection != "worsening" {
			t.Errorf("direction = %s, want worsening", got.TrendDirection)
		}
		if got.Volatility != "high" {
			t.Errorf("volatility = %s, want high", got.Volatility)
		}
		if got.DistressFrequency != 1.0 {
			t.Errorf("distress frequency = %v, want 1.0", got.DistressFrequency)
		}
		if got.EmotionalStability != 0 {
			t.Errorf("stability = %d, want 0 after clamping", got.EmotionalStability)
		}
	})
}

func TestMostCommonEmotion(t *testing.T) {
	tests := []struct {
		avgMood           int
		distressFrequency float64
		want              emotion.State
	}{
		{80, 0, emotion.StateHappy},
		{70, 0, emotion.StateCalm},
		{50, 0, emotion.StateNeutral},
		{30, 0, emotion.StateSad},
		{20, 0.5, emotion.StateDistressed},
		{20, 0.1, emotion.StateAnxious},
	}
	for _, tt := range tests {
		if got := mostCommonEmotion(tt.avgMood, tt.distressFrequency); got != tt.want {
			t.Errorf("mostCommonEmotion(%d, %v) = %s, want %s",
				tt.avgMood, tt.distressFrequency, got, tt.want)
		}
	}
}

func TestAnalyzeDebateTrend(t *testing.T) {
	base := time.Now().Add(-48 * time.Hour)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	t.Run("fewer than three sessions uses safe defaults", func(t *testing.T) {
		got := analyzeDebateTrend(nil)
		assert.Equal(t, "stable", got.TrendDirection)
		assert.Equal(t, "knowledge depth", got.StrongestArea)
		assert.Equal(t, "articulation", got.WeakestArea)
		assert.Equal(t, []string{"Technology", "Ethics"}, got.MostDiscussedTopics)
		assert.Equal(t, 0, got.ImprovementRate)
	})

	t.Run("rising overall halves read improving", func(t *testing.T) {
		sessions := []*entity.DebateSession{
			debateSession(at(0), "AI", entity.PerformanceMetrics{Coherence: 50, Persuasiveness: 50, KnowledgeDepth: 50, Articulation: 50, OverallScore: 50}),
			debateSession(at(1), "AI", entity.PerformanceMetrics{Coherence: 60, Persuasiveness: 50, KnowledgeDepth: 70, Articulation: 40, OverallScore: 55}),
			debateSession(at(2), "Climate", entity.PerformanceMetrics{Coherence: 70, Persuasiveness: 60, KnowledgeDepth: 80, Articulation: 50, OverallScore: 70}),
			debateSession(at(3), "AI", entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 70, KnowledgeDepth: 90, Articulation: 60, OverallScore: 80}),
		}
		got := analyzeDebateTrend(sessions)
		assert.Equal(t, "improving", got.TrendDirection)
		assert.Equal(t, 60, got.ImprovementRate)
		assert.Equal(t, "knowledge depth", got.StrongestArea)
		assert.Equal(t, "articulation", got.WeakestArea)
		assert.Equal(t, []string{"AI", "Climate"}, got.MostDiscussedTopics)
	})

	t.Run("zero first score never divides", func(t *testing.T) {
		sessions := []*entity.DebateSession{
			debateSession(at(0), "AI", entity.PerformanceMetrics{}),
			debateSession(at(1), "AI", entity.PerformanceMetrics{OverallScore: 40}),
			debateSession(at(2), "AI", entity.PerformanceMetrics{OverallScore: 60}),
		}
		got := analyzeDebateTrend(sessions)
		assert.Equal(t, 0, got.ImprovementRate)
	})
}

func TestCalculateStreaks(t *testing.T) {
	now := time.Now()

	// Newest first, as RealTimeMetrics hands them over.
	eq := []*entity.EQSession{
		eqSession(now, 80, 10, 80),
		eqSession(now.Add(-time.Hour), 75, 10, 80),
		eqSession(now.Add(-2*time.Hour), 90, 10, 80),
		eqSession(now.Add(-3*time.Hour), 40, 10, 80),
	}
	debates := []*entity.DebateSession{
		debateSession(now, "AI", entity.PerformanceMetrics{OverallScore: 80}),
		debateSession(now.Add(-time.Hour), "AI", entity.PerformanceMetrics{OverallScore: 78}),
		debateSession(now.Add(-2*time.Hour), "AI", entity.PerformanceMetrics{OverallScore: 30}),
	}

	streaks := calculateStreaks(eq, debates)
	if len(streaks) != 2 {
		t.Fatalf("got %d streaks, want 2: %+v", len(streaks), streaks)
	}
	if streaks[0].Metric != "mood" || streaks[0].Type != "positive" || streaks[0].Count != 3 || streaks[0].Threshold != 70 {
		t.Errorf("mood streak = %+v", streaks[0])
	}
	if streaks[1].Metric != "debate" || streaks[1].Type != "positive" || streaks[1].Count != 2 || streaks[1].Threshold != 75 {
		t.Errorf("debate streak = %+v", streaks[1])
	}
}

func TestCalculateStreaksNegative(t *testing.T) {
	now := time.Now()
	eq := []*entity.EQSession{
		eqSession(now, 20, 80, 20),
		eqSession(now.Add(-time.Hour), 25, 80, 20),
		eqSession(now.Add(-2*time.Hour), 30, 80, 20),
		eqSession(now.Add(-3*time.Hour), 80, 10, 80),
	}

	streaks := calculateStreaks(eq, nil)
	if len(streaks) != 1 {
		t.Fatalf("got %d streaks, want 1: %+v", len(streaks), streaks)
	}
	if streaks[0].Type != "negative" || streaks[0].Count != 3 || streaks[0].Threshold != 30 {
		t.Errorf("streak = %+v", streaks[0])
	}
}

func TestGenerateWarnings(t *testing.T) {
	now := time.Now()
	eq := []*entity.EQSession{
		eqSession(now, 25, 80, 30),
		eqSession(now.Add(-time.Hour), 70, 20, 70),
		eqSession(now.Add(-2*time.Hour), 20, 60, 40),
	}
	debates := []*entity.DebateSession{
		debateSession(now, "AI", entity.PerformanceMetrics{OverallScore: 50}),
		debateSession(now.Add(-time.Hour), "AI", entity.PerformanceMetrics{OverallScore: 75}),
	}

	warnings := generateWarnings(eq, debates)
	if len(warnings) != 4 {
		t.Fatalf("got %d warnings, want 4: %+v", len(warnings), warnings)
	}
	assert.Equal(t, "high", warnings[0].Level)
	assert.Equal(t, "distress", warnings[0].Metric)
	assert.Equal(t, 80, warnings[0].Value)
	assert.Equal(t, "medium", warnings[1].Level)
	assert.Equal(t, "mood", warnings[1].Metric)
	assert.Equal(t, "medium", warnings[2].Level)
	assert.Equal(t, "volatility", warnings[2].Metric)
	assert.Equal(t, 50, warnings[2].Value)
	assert.Equal(t, "low", warnings[3].Level)
	assert.Equal(t, "debate", warnings[3].Metric)
}

func TestDebateProgress(t *testing.T) {
	now := time.Now()
	debates := []*entity.DebateSession{
		debateSession(now, "AI", entity.PerformanceMetrics{Coherence: 75, Persuasiveness: 40, KnowledgeDepth: 60, Articulation: 55, OverallScore: 62}),
		debateSession(now.Add(-time.Hour), "AI", entity.PerformanceMetrics{Coherence: 72, Persuasiveness: 45, KnowledgeDepth: 65, Articulation: 60, OverallScore: 58}),
		debateSession(now.Add(-2*time.Hour), "AI", entity.PerformanceMetrics{Coherence: 78, Persuasiveness: 50, KnowledgeDepth: 70, Articulation: 65, OverallScore: 65}),
	}

	progress := debateProgress(debates)
	assert.Equal(t, 62, progress.LastScore)
	assert.Equal(t, 4, progress.Improvement)
	assert.Equal(t, []string{"coherence"}, progress.ConsistentAreas)
	assert.Equal(t, []string{"persuasiveness"}, progress.ChallengingAreas)
}

func TestCombinedInsightsOverrideOrder(t *testing.T) {
	now := time.Now()
	eq := []*entity.EQSession{eqSession(now, 20, 85, 20)}
	debates := []*entity.DebateSession{
		debateSession(now, "AI", entity.PerformanceMetrics{OverallScore: 80}),
	}

	insights := combinedInsights(eq, debates)
	// Debate branch runs second and owns the final recommendation.
	assert.Equal(t, "distressed", insights.EmotionalState)
	assert.Equal(t, "strong", insights.DebatePerformance)
	assert.Equal(t, "Challenge yourself with more complex topics", insights.RecommendedAction)
}

func TestRealTimeMetrics(t *testing.T) {
	ctx := context.Background()
	eqRepo := memory.NewEQSessionRepository()
	debateRepo := memory.NewDebateSessionRepository()
	svc := NewAnalyticsService(eqRepo, debateRepo)
	userId := uuid.New()

	t.Run("fresh user gets neutral defaults", func(t *testing.T) {
		got, err := svc.RealTimeMetrics(ctx, userId, 0)
		assert.NoError(t, err)
		assert.Equal(t, 50, got.CurrentMood)
		assert.Equal(t, "stable", got.MoodTrend)
		assert.Empty(t, got.ActiveStreaks)
		assert.Empty(t, got.Warnings)
		assert.Equal(t, "neutral", got.Insights.EmotionalState)
		assert.Equal(t, "steady", got.Insights.DebatePerformance)
	})

	t.Run("latest session drives current mood and trend", func(t *testing.T) {
		now := time.Now()
		older := eqSession(now.Add(-2*time.Hour), 60, 15, 70)
		older.UserId = userId
		newer := eqSession(now.Add(-time.Hour), 72, 10, 80)
		newer.UserId = userId
		assert.NoError(t, eqRepo.Append(ctx, older))
		assert.NoError(t, eqRepo.Append(ctx, newer))

		debate := debateSession(now, "AI", entity.PerformanceMetrics{Coherence: 80, Persuasiveness: 80, KnowledgeDepth: 80, Articulation: 80, OverallScore: 80})
		debate.UserId = userId
		assert.NoError(t, debateRepo.Append(ctx, debate))

		got, err := svc.RealTimeMetrics(ctx, userId, 7)
		assert.NoError(t, err)
		assert.Equal(t, 72, got.CurrentMood)
		assert.Equal(t, 10, got.DistressLevel)
		assert.Equal(t, "up", got.MoodTrend)
		assert.Equal(t, 80, got.DebateProgress.LastScore)
		assert.Equal(t, "positive", got.Insights.EmotionalState)
		assert.Equal(t, "strong", got.Insights.DebatePerformance)
		assert.Equal(t, "Challenge yourself with more complex topics", got.Insights.RecommendedAction)
	})
}
