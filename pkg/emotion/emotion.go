package emotion

import (
	"fmt"
	"math"
	"strings"
)

// State is one label from the closed emotional taxonomy.
type State string

const (
	StateHappy      State = "happy"
	StateSad        State = "sad"
	StateAngry      State = "angry"
	StateAnxious    State = "anxious"
	StateNeutral    State = "neutral"
	StateCalm       State = "calm"
	StateDistressed State = "distressed"
)

// States lists all categories in a fixed order. Classification iterates this
// slice so results stay deterministic (map iteration order is not).
var States = []State{
	StateHappy, StateSad, StateAngry, StateAnxious,
	StateCalm, StateDistressed, StateNeutral,
}

// ScoreTriple quantifies an emotional snapshot. Higher mood and stability are
// better; higher distress is worse. All values stay within [0, 100].
type ScoreTriple struct {
	MoodScore      int `json:"mood_score"`
	DistressLevel  int `json:"distress_level"`
	StabilityScore int `json:"stability_score"`
}

// Baseline triples per state. The rank order (happy > calm > neutral >
// anxious/sad > angry > distressed on mood, reversed on distress) is a fixed
// property consumers rely on.
var baseScores = map[State]ScoreTriple{
	StateHappy:      {MoodScore: 90, DistressLevel: 5, StabilityScore: 85},
	StateCalm:       {MoodScore: 78, DistressLevel: 15, StabilityScore: 92},
	StateNeutral:    {MoodScore: 55, DistressLevel: 30, StabilityScore: 65},
	StateAnxious:    {MoodScore: 32, DistressLevel: 68, StabilityScore: 35},
	StateSad:        {MoodScore: 22, DistressLevel: 72, StabilityScore: 30},
	StateAngry:      {MoodScore: 18, DistressLevel: 80, StabilityScore: 20},
	StateDistressed: {MoodScore: 8, DistressLevel: 95, StabilityScore: 10},
}

type intensityModifier struct {
	phrase string
	value  float64
}

// Intensity markers and their signed multipliers. Matching is independent per
// phrase, so "not very" also matches "very". Kept as in the reference data.
var intensityModifiers = []intensityModifier{
	{"very", 0.15},
	{"extremely", 0.2},
	{"somewhat", -0.1},
	{"slightly", -0.15},
	{"a bit", -0.1},
	{"really", 0.1},
	{"absolutely", 0.2},
	{"totally", 0.15},
	{"completely", 0.2},
	{"so", 0.1},
	{"incredibly", 0.2},
	{"terribly", 0.15},
	{"barely", -0.2},
	{"hardly", -0.15},
	{"kind of", -0.1},
	{"sort of", -0.1},
	{"deeply", 0.18},
	{"profoundly", 0.2},
	{"mildly", -0.12},
	{"exceptionally", 0.2},
	{"marginally", -0.18},
	{"overwhelmingly", 0.22},
	{"tremendously", 0.2},
	{"just a little", -0.1},
	{"not very", -0.15},
	{"moderately", 0.05},
	{"intensely", 0.18},
	{"unbearably", 0.25},
	{"unbelievably", 0.22},
}

func (s State) positive() bool {
	return s == StateHappy || s == StateCalm
}

func (s State) negative() bool {
	return s == StateSad || s == StateAnxious || s == StateAngry || s == StateDistressed
}

// BaseScores returns the unmodified baseline triple for a state. Unknown
// states fall back to the neutral baseline; the classifier only produces
// values from the closed set, so this guards against enum drift.
func BaseScores(state State) ScoreTriple {
	if scores, ok := baseScores[state]; ok {
		return scores
	}
	return baseScores[StateNeutral]
}

// ScoreFor maps a detected state to its score triple, adjusted by any
// intensity-modifier phrases found in text. Neutral is never adjusted.
func ScoreFor(state State, text string) ScoreTriple {
	base := BaseScores(state)
	if text == "" {
		return base
	}

	lower := strings.ToLower(text)
	var sum float64
	for _, m := range intensityModifiers {
		if strings.Contains(lower, m.phrase) {
			sum += m.value
		}
	}
	if sum == 0 {
		return base
	}

	mood := float64(base.MoodScore)
	distress := float64(base.DistressLevel)
	stability := float64(base.StabilityScore)

	switch {
	case state.positive():
		mood *= 1 + sum
		stability *= 1 + sum
		distress *= 1 - sum
	case state.negative():
		mood *= 1 - sum
		stability *= 1 - sum
		distress *= 1 + sum
	default:
		return base
	}

	return ScoreTriple{
		MoodScore:      clampRound(mood),
		DistressLevel:  clampRound(distress),
		StabilityScore: clampRound(stability),
	}
}

// ThresholdExceeded reports whether a distress level meets or exceeds the
// alerting threshold. The caller owns what happens next (email, banner, ...).
func ThresholdExceeded(distressLevel, threshold int) bool {
	return distressLevel >= threshold
}

// DefaultDistressThreshold is the alerting cutoff used when none is configured.
const DefaultDistressThreshold = 70

// FormatState renders a state for display, optionally with its most relevant
// score: distress for negative states, mood for positive ones, and a balanced
// composite for neutral.
func FormatState(state State, showScore bool) string {
	if !showScore {
		return string(state)
	}
	scores := BaseScores(state)
	var display int
	switch {
	case state.negative():
		display = scores.DistressLevel
	case state.positive():
		display = scores.MoodScore
	default:
		display = int(math.Round(float64(scores.MoodScore+(100-scores.DistressLevel)) / 2))
	}
	return fmt.Sprintf("%s (%d/100)", state, display)
}

func clampRound(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
