package emotion

import (
	"testing"
)

func TestBaseScoresRankOrder(t *testing.T) {
	// Mood descends and distress ascends along the severity scale.
	order := []State{StateHappy, StateCalm, StateNeutral, StateAnxious, StateSad, StateAngry, StateDistressed}
	for i := 1; i < len(order); i++ {
		prev := BaseScores(order[i-1])
		curr := BaseScores(order[i])
		if curr.MoodScore >= prev.MoodScore {
			t.Errorf("mood of %s (%d) should be below %s (%d)", order[i], curr.MoodScore, order[i-1], prev.MoodScore)
		}
	}
	if BaseScores(StateHappy).DistressLevel >= BaseScores(StateDistressed).DistressLevel {
		t.Error("distress should ascend from happy to distressed")
	}
}

func TestBaseScoresUnknownState(t *testing.T) {
	got := BaseScores(State("confused"))
	want := BaseScores(StateNeutral)
	if got != want {
		t.Errorf("unknown state = %+v, want neutral baseline %+v", got, want)
	}
}

func TestScoreFor(t *testing.T) {
	tests := []struct {
		name  string
		state State
		text  string
		want  ScoreTriple
	}{
		{
			name:  "no modifiers returns baseline",
			state: StateHappy,
			text:  "today was a good day",
			want:  ScoreTriple{MoodScore: 90, DistressLevel: 5, StabilityScore: 85},
		},
		{
			name:  "positive state amplified and clamped",
			state: StateHappy,
			text:  "I am extremely happy today",
			want:  ScoreTriple{MoodScore: 100, DistressLevel: 4, StabilityScore: 100},
		},
		{
			name:  "negative state amplified raises distress",
			state: StateSad,
			text:  "I am very sad",
			want:  ScoreTriple{MoodScore: 19, DistressLevel: 83, StabilityScore: 26},
		},
		{
			name:  "neutral never adjusted",
			state: StateNeutral,
			text:  "things are very normal",
			want:  ScoreTriple{MoodScore: 55, DistressLevel: 30, StabilityScore: 65},
		},
		{
			name:  "empty text returns baseline",
			state: StateAnxious,
			text:  "",
			want:  ScoreTriple{MoodScore: 32, DistressLevel: 68, StabilityScore: 35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreFor(tt.state, tt.text)
			if got != tt.want {
				t.Errorf("ScoreFor(%s, %q) = %+v, want %+v", tt.state, tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreForDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		got := ScoreFor(StateSad, "I am terribly and deeply sad")
		first := ScoreFor(StateSad, "I am terribly and deeply sad")
		if got != first {
			t.Fatalf("ScoreFor not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestScoreForBoundsAllStates(t *testing.T) {
	texts := []string{"", "unbearably overwhelmingly tremendously bad", "barely hardly marginally"}
	for _, state := range States {
		for _, text := range texts {
			got := ScoreFor(state, text)
			for _, v := range []int{got.MoodScore, got.DistressLevel, got.StabilityScore} {
				if v < 0 || v > 100 {
					t.Errorf("ScoreFor(%s, %q) produced out-of-range value %d", state, text, v)
				}
			}
		}
	}
}

func TestThresholdExceeded(t *testing.T) {
	tests := []struct {
		distress  int
		threshold int
		want      bool
	}{
		{71, 70, true},
		{70, 70, true},
		{69, 70, false},
		{0, 0, true},
		{100, 70, true},
	}
	for _, tt := range tests {
		if got := ThresholdExceeded(tt.distress, tt.threshold); got != tt.want {
			t.Errorf("ThresholdExceeded(%d, %d) = %v, want %v", tt.distress, tt.threshold, got, tt.want)
		}
	}
}

func TestFormatState(t *testing.T) {
	tests := []struct {
		state     State
		showScore bool
		want      string
	}{
		{StateHappy, false, "happy"},
		{StateHappy, true, "happy (90/100)"},
		{StateSad, true, "sad (72/100)"},
		{StateNeutral, true, "neutral (63/100)"},
	}
	for _, tt := range tests {
		if got := FormatState(tt.state, tt.showScore); got != tt.want {
			t.Errorf("FormatState(%s, %v) = %q, want %q", tt.state, tt.showScore, got, tt.want)
		}
	}
}
