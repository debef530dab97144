package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"brightside-be/internal/dto"
	"brightside-be/internal/entity"
	"brightside-be/internal/repository/contract"
	"brightside-be/pkg/emotion"
)

type IAnalyticsService interface {
	EmotionalAverages(ctx context.Context, userId uuid.UUID, days int) (*dto.EmotionalAverages, error)
	DebateAverages(ctx context.Context, userId uuid.UUID, days int) (*dto.DebateAverages, error)
	AnalyzeEmotionalTrend(ctx context.Context, userId uuid.UUID, days int) (*dto.EmotionalTrend, error)
	AnalyzeDebateTrend(ctx context.Context, userId uuid.UUID, days int) (*dto.DebateTrend, error)
	RealTimeMetrics(ctx context.Context, userId uuid.UUID, days int) (*dto.RealTimeMetrics, error)
}

type analyticsService struct {
	eqRepo     contract.EQSessionRepository
	debateRepo contract.DebateSessionRepository
}

func NewAnalyticsService(eqRepo contract.EQSessionRepository, debateRepo contract.DebateSessionRepository) IAnalyticsService {
	return &analyticsService{
		eqRepo:     eqRepo,
		debateRepo: debateRepo,
	}
}

// DefaultWindowDays is the analysis window applied when a request does not
// specify one.
const DefaultWindowDays = 30

func windowStart(days int) time.Time {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return time.Now().AddDate(0, 0, -days)
}

func round(v float64) int {
	return int(math.Round(v))
}

func (s *analyticsService) EmotionalAverages(ctx context.Context, userId uuid.UUID, days int) (*dto.EmotionalAverages, error) {
	sessions, err := s.eqRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}
	avg := emotionalAverages(sessions)
	return &avg, nil
}

// emotionalAverages returns the neutral midpoint for an empty window so a
// fresh user's dashboard renders sensibly.
func emotionalAverages(sessions []*entity.EQSession) dto.EmotionalAverages {
	if len(sessions) == 0 {
		return dto.EmotionalAverages{AvgMood: 50, AvgDistress: 50, AvgStability: 50}
	}

	var mood, distress, stability int
	for _, s := range sessions {
		mood += s.MoodScore
		distress += s.DistressLevel
		stability += s.StabilityScore
	}
	n := float64(len(sessions))
	return dto.EmotionalAverages{
		AvgMood:      round(float64(mood) / n),
		AvgDistress:  round(float64(distress) / n),
		AvgStability: round(float64(stability) / n),
	}
}

func (s *analyticsService) DebateAverages(ctx context.Context, userId uuid.UUID, days int) (*dto.DebateAverages, error) {
	sessions, err := s.debateRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}
	avg := debateAverages(sessions)
	return &avg, nil
}

func debateAverages(sessions []*entity.DebateSession) dto.DebateAverages {
	if len(sessions) == 0 {
		return dto.DebateAverages{
			AvgCoherence:      50,
			AvgPersuasiveness: 50,
			AvgKnowledgeDepth: 50,
			AvgArticulation:   50,
			AvgOverallScore:   50,
		}
	}

	var coherence, persuasiveness, knowledge, articulation, overall int
	for _, s := range sessions {
		coherence += s.PerformanceMetrics.Coherence
		persuasiveness += s.PerformanceMetrics.Persuasiveness
		knowledge += s.PerformanceMetrics.KnowledgeDepth
		articulation += s.PerformanceMetrics.Articulation
		overall += s.PerformanceMetrics.OverallScore
	}
	n := float64(len(sessions))
	return dto.DebateAverages{
		AvgCoherence:      round(float64(coherence) / n),
		AvgPersuasiveness: round(float64(persuasiveness) / n),
		AvgKnowledgeDepth: round(float64(knowledge) / n),
		AvgArticulation:   round(float64(articulation) / n),
		AvgOverallScore:   round(float64(overall) / n),
	}
}

func sortEQByTime(sessions []*entity.EQSession) []*entity.EQSession {
	sorted := make([]*entity.EQSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func sortDebateByTime(sessions []*entity.DebateSession) []*entity.DebateSession {
	sorted := make([]*entity.DebateSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func (s *analyticsService) AnalyzeEmotionalTrend(ctx context.Context, userId uuid.UUID, days int) (*dto.EmotionalTrend, error) {
	sessions, err := s.eqRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}
	trend := analyzeEmotionalTrend(sessions)
	return &trend, nil
}

func analyzeEmotionalTrend(sessions []*entity.EQSession) dto.EmotionalTrend {
	if len(sessions) < 3 {
		return dto.EmotionalTrend{
			TrendDirection:     "stable",
			Volatility:         "low",
			DistressFrequency:  0,
			MostCommonEmotion:  emotion.StateNeutral,
			EmotionalStability: 50,
		}
	}

	sorted := sortEQByTime(sessions)

	// Trend direction: compare mood averages of the two chronological halves.
	mid := len(sorted) / 2
	firstAvg := emotionalAverages(sorted[:mid])
	secondAvg := emotionalAverages(sorted[mid:])

	direction := "stable"
	if secondAvg.AvgMood > firstAvg.AvgMood+5 {
		direction = "improving"
	} else if secondAvg.AvgMood < firstAvg.AvgMood-5 {
		direction = "worsening"
	}

	// Volatility: mean absolute mood change between consecutive sessions.
	var totalChange float64
	for i := 1; i < len(sorted); i++ {
		totalChange += math.Abs(float64(sorted[i].MoodScore - sorted[i-1].MoodScore))
	}
	avgChange := totalChange / float64(len(sorted)-1)

	volatility := "low"
	switch {
	case avgChange > 25:
		volatility = "high"
	case avgChange > 15:
		volatility = "medium"
	}

	// Fraction of sessions at or above the high-distress line.
	distressed := 0
	for _, s := range sorted {
		if s.DistressLevel >= 70 {
			distressed++
		}
	}
	distressFrequency := float64(distressed) / float64(len(sorted))

	stability := round(math.Max(0, math.Min(100,
		100-((avgChange/50)*100+distressFrequency*100)/2)))

	// The label weights the halves equally, not by session count.
	halfMood := round(float64(firstAvg.AvgMood+secondAvg.AvgMood) / 2)

	return dto.EmotionalTrend{
		TrendDirection:     direction,
		Volatility:         volatility,
		DistressFrequency:  distressFrequency,
		MostCommonEmotion:  mostCommonEmotion(halfMood, distressFrequency),
		EmotionalStability: stability,
	}
}

// mostCommonEmotion maps the window's average mood onto a representative
// state. Sessions store scores rather than states, so this reconstructs a
// best-guess label from aggregates.
func mostCommonEmotion(avgMood int, distressFrequency float64) emotion.State {
	switch {
	case avgMood > 75:
		return emotion.StateHappy
	case avgMood > 65:
		return emotion.StateCalm
	case avgMood > 45:
		return emotion.StateNeutral
	case avgMood > 25:
		return emotion.StateSad
	case distressFrequency > 0.3:
		return emotion.StateDistressed
	default:
		return emotion.StateAnxious
	}
}

func (s *analyticsService) AnalyzeDebateTrend(ctx context.Context, userId uuid.UUID, days int) (*dto.DebateTrend, error) {
	sessions, err := s.debateRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}
	trend := analyzeDebateTrend(sessions)
	return &trend, nil
}

func analyzeDebateTrend(sessions []*entity.DebateSession) dto.DebateTrend {
	if len(sessions) < 3 {
		return dto.DebateTrend{
			TrendDirection:      "stable",
			StrongestArea:       "knowledge depth",
			WeakestArea:         "articulation",
			MostDiscussedTopics: []string{"Technology", "Ethics"},
			ImprovementRate:     0,
		}
	}

	sorted := sortDebateByTime(sessions)

	mid := len(sorted) / 2
	firstAvg := debateAverages(sorted[:mid])
	secondAvg := debateAverages(sorted[mid:])

	direction := "stable"
	if secondAvg.AvgOverallScore > firstAvg.AvgOverallScore+5 {
		direction = "improving"
	} else if secondAvg.AvgOverallScore < firstAvg.AvgOverallScore-5 {
		direction = "declining"
	}

	first := sorted[0].PerformanceMetrics.OverallScore
	last := sorted[len(sorted)-1].PerformanceMetrics.OverallScore
	improvementRate := 0
	if first != 0 {
		improvementRate = round(float64(last-first) / float64(first) * 100)
	}

	// Strongest and weakest areas come from the last three sessions only, so
	// the labels track current form rather than the whole window.
	latest := debateAverages(sorted[len(sorted)-3:])
	areas := []struct {
		name  string
		value int
	}{
		{"coherence", latest.AvgCoherence},
		{"persuasiveness", latest.AvgPersuasiveness},
		{"knowledge depth", latest.AvgKnowledgeDepth},
		{"articulation", latest.AvgArticulation},
	}
	strongest, weakest := areas[0], areas[0]
	for _, a := range areas[1:] {
		if a.value > strongest.value {
			strongest = a
		}
		if a.value < weakest.value {
			weakest = a
		}
	}

	return dto.DebateTrend{
		TrendDirection:      direction,
		StrongestArea:       strongest.name,
		WeakestArea:         weakest.name,
		MostDiscussedTopics: topTopics(sorted, 3),
		ImprovementRate:     improvementRate,
	}
}

func topTopics(sessions []*entity.DebateSession, limit int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, s := range sessions {
		if _, seen := counts[s.Topic]; !seen {
			order = append(order, s.Topic)
		}
		counts[s.Topic]++
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func (s *analyticsService) RealTimeMetrics(ctx context.Context, userId uuid.UUID, days int) (*dto.RealTimeMetrics, error) {
	eqSessions, err := s.eqRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}
	debateSessions, err := s.debateRepo.FindByUserSince(ctx, userId, windowStart(days))
	if err != nil {
		return nil, err
	}

	// Newest first for streak and warning scans.
	eq := sortEQByTime(eqSessions)
	reverseEQ(eq)
	debates := sortDebateByTime(debateSessions)
	reverseDebate(debates)

	metrics := dto.RealTimeMetrics{
		CurrentMood:   50,
		MoodTrend:     "stable",
		ActiveStreaks: calculateStreaks(eq, debates),
		Warnings:      generateWarnings(eq, debates),
	}

	if len(eq) > 0 {
		metrics.CurrentMood = eq[0].MoodScore
		metrics.DistressLevel = eq[0].DistressLevel
	}
	if len(eq) >= 2 {
		switch {
		case eq[0].MoodScore > eq[1].MoodScore+5:
			metrics.MoodTrend = "up"
		case eq[0].MoodScore < eq[1].MoodScore-5:
			metrics.MoodTrend = "down"
		}
	}

	metrics.DebateProgress = debateProgress(debates)
	metrics.Insights = combinedInsights(eq, debates)

	return &metrics, nil
}

func reverseEQ(s []*entity.EQSession) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseDebate(s []*entity.DebateSession) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// calculateStreaks scans newest-first runs of strong or weak results. Mood
// streaks need three consecutive sessions, debate streaks two.
func calculateStreaks(eq []*entity.EQSession, debates []*entity.DebateSession) []dto.Streak {
	streaks := []dto.Streak{}

	moodStreak := 1
	moodType := "positive"
	for i := 1; i < len(eq); i++ {
		high := eq[i].MoodScore >= 70 && eq[i-1].MoodScore >= 70
		low := eq[i].MoodScore <= 30 && eq[i-1].MoodScore <= 30
		if !high && !low {
			break
		}
		moodStreak++
		if high {
			moodType = "positive"
		} else {
			moodType = "negative"
		}
	}
	if moodStreak >= 3 {
		threshold := 70
		if moodType == "negative" {
			threshold = 30
		}
		streaks = append(streaks, dto.Streak{
			Type:      moodType,
			Count:     moodStreak,
			Metric:    "mood",
			Threshold: threshold,
		})
	}

	debateStreak := 1
	debateType := "positive"
	for i := 1; i < len(debates); i++ {
		high := debates[i].PerformanceMetrics.OverallScore >= 75 &&
			debates[i-1].PerformanceMetrics.OverallScore >= 75
		low := debates[i].PerformanceMetrics.OverallScore <= 40 &&
			debates[i-1].PerformanceMetrics.OverallScore <= 40
		if !high && !low {
			break
		}
		debateStreak++
		if high {
			debateType = "positive"
		} else {
			debateType = "negative"
		}
	}
	if debateStreak >= 2 {
		threshold := 75
		if debateType == "negative" {
			threshold = 40
		}
		streaks = append(streaks, dto.Streak{
			Type:      debateType,
			Count:     debateStreak,
			Metric:    "debate",
			Threshold: threshold,
		})
	}

	return streaks
}

func generateWarnings(eq []*entity.EQSession, debates []*entity.DebateSession) []dto.Warning {
	warnings := []dto.Warning{}

	if len(eq) > 0 {
		recent := eq[0]

		if recent.DistressLevel >= 75 {
			warnings = append(warnings, dto.Warning{
				Level:     "high",
				Message:   "Unusually high distress level detected",
				Metric:    "distress",
				Value:     recent.DistressLevel,
				Timestamp: recent.Timestamp,
			})
		}

		if recent.MoodScore <= 30 {
			warnings = append(warnings, dto.Warning{
				Level:     "medium",
				Message:   "Significant drop in mood detected",
				Metric:    "mood",
				Value:     recent.MoodScore,
				Timestamp: recent.Timestamp,
			})
		}

		if len(eq) >= 3 {
			minMood, maxMood := eq[0].MoodScore, eq[0].MoodScore
			for _, s := range eq[:3] {
				if s.MoodScore < minMood {
					minMood = s.MoodScore
				}
				if s.MoodScore > maxMood {
					maxMood = s.MoodScore
				}
			}
			if maxMood-minMood >= 40 {
				warnings = append(warnings, dto.Warning{
					Level:     "medium",
					Message:   "High emotional volatility detected",
					Metric:    "volatility",
					Value:     maxMood - minMood,
					Timestamp: time.Now(),
				})
			}
		}
	}

	if len(debates) >= 2 {
		recent, previous := debates[0], debates[1]
		if recent.PerformanceMetrics.OverallScore < previous.PerformanceMetrics.OverallScore-20 {
			warnings = append(warnings, dto.Warning{
				Level:     "low",
				Message:   "Significant drop in debate performance",
				Metric:    "debate",
				Value:     recent.PerformanceMetrics.OverallScore,
				Timestamp: recent.Timestamp,
			})
		}
	}

	return warnings
}

func debateProgress(debates []*entity.DebateSession) dto.DebateProgress {
	progress := dto.DebateProgress{
		ConsistentAreas:  []string{},
		ChallengingAreas: []string{},
	}
	if len(debates) > 0 {
		progress.LastScore = debates[0].PerformanceMetrics.OverallScore
	}
	if len(debates) >= 2 {
		progress.Improvement = debates[0].PerformanceMetrics.OverallScore -
			debates[1].PerformanceMetrics.OverallScore
	}
	if len(debates) < 3 {
		return progress
	}

	recent := debates[:3]
	areas := []struct {
		name    string
		extract func(entity.PerformanceMetrics) int
	}{
		{"coherence", func(m entity.PerformanceMetrics) int { return m.Coherence }},
		{"persuasiveness", func(m entity.PerformanceMetrics) int { return m.Persuasiveness }},
		{"knowledgeDepth", func(m entity.PerformanceMetrics) int { return m.KnowledgeDepth }},
		{"articulation", func(m entity.PerformanceMetrics) int { return m.Articulation }},
	}

	for _, area := range areas {
		minV, maxV, sum := 101, -1, 0
		for _, s := range recent {
			v := area.extract(s.PerformanceMetrics)
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			sum += v
		}
		avg := float64(sum) / 3
		if maxV-minV <= 10 && avg >= 70 {
			progress.ConsistentAreas = append(progress.ConsistentAreas, area.name)
		}
		if avg <= 50 {
			progress.ChallengingAreas = append(progress.ChallengingAreas, area.name)
		}
	}

	return progress
}

func combinedInsights(eq []*entity.EQSession, debates []*entity.DebateSession) dto.CombinedInsights {
	insights := dto.CombinedInsights{
		EmotionalState:    "neutral",
		DebatePerformance: "steady",
		RecommendedAction: "Continue practicing regularly",
	}

	if len(eq) > 0 {
		recent := eq[0]
		if recent.MoodScore >= 70 {
			insights.EmotionalState = "positive"
		} else if recent.MoodScore <= 30 {
			insights.EmotionalState = "negative"
		}
		if recent.DistressLevel >= 70 {
			insights.EmotionalState = "distressed"
			insights.RecommendedAction = "Consider taking a break and practicing stress management"
		}
	}

	if len(debates) > 0 {
		recent := debates[0]
		if recent.PerformanceMetrics.OverallScore >= 75 {
			insights.DebatePerformance = "strong"
			insights.RecommendedAction = "Challenge yourself with more complex topics"
		} else if recent.PerformanceMetrics.OverallScore <= 40 {
			insights.DebatePerformance = "struggling"
			insights.RecommendedAction = "Focus on fundamentals and structured arguments"
		}
	}

	return insights
}
