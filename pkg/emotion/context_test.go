package emotion

import (
	"reflect"
	"testing"
)

func TestConversationContextUpdate(t *testing.T) {
	ctx := NewConversationContext()

	ctx = ctx.Update(StateHappy)
	if ctx.MessageCount != 1 || ctx.ConsistentEmotionCount != 1 || ctx.EmotionChanges != 0 {
		t.Fatalf("after first update: %+v", ctx)
	}

	ctx = ctx.Update(StateHappy)
	if ctx.ConsistentEmotionCount != 2 || ctx.EmotionChanges != 0 {
		t.Fatalf("repeat should grow consistency: %+v", ctx)
	}

	ctx = ctx.Update(StateSad)
	if ctx.ConsistentEmotionCount != 1 || ctx.EmotionChanges != 1 || ctx.MessageCount != 3 {
		t.Fatalf("change should reset consistency and bump changes: %+v", ctx)
	}
}

func TestConversationContextHistoryCap(t *testing.T) {
	ctx := NewConversationContext()
	seq := []State{StateHappy, StateSad, StateAngry, StateAnxious, StateCalm, StateNeutral, StateHappy}
	for _, s := range seq {
		ctx = ctx.Update(s)
	}

	want := []State{StateAngry, StateAnxious, StateCalm, StateNeutral, StateHappy}
	if !reflect.DeepEqual(ctx.PreviousEmotions, want) {
		t.Errorf("history = %v, want %v", ctx.PreviousEmotions, want)
	}
	if ctx.MessageCount != len(seq) {
		t.Errorf("MessageCount = %d, want %d", ctx.MessageCount, len(seq))
	}
}

func TestConversationContextValueSemantics(t *testing.T) {
	ctx := NewConversationContext().Update(StateHappy).Update(StateHappy)
	before := append([]State(nil), ctx.PreviousEmotions...)

	_ = ctx.Update(StateSad)
	_ = ctx.Update(StateAngry)

	if !reflect.DeepEqual(ctx.PreviousEmotions, before) {
		t.Errorf("Update mutated the receiver's history: %v, want %v", ctx.PreviousEmotions, before)
	}
}

func TestContextAwareScore(t *testing.T) {
	tests := []struct {
		name  string
		state State
		ctx   ConversationContext
		want  ScoreTriple
	}{
		{
			name:  "first message passes through untouched",
			state: StateHappy,
			ctx:   ConversationContext{MessageCount: 1, ConsistentEmotionCount: 1},
			want:  ScoreTriple{MoodScore: 90, DistressLevel: 5, StabilityScore: 85},
		},
		{
			name:  "sustained sadness amplifies distress",
			state: StateSad,
			ctx:   ConversationContext{MessageCount: 5, ConsistentEmotionCount: 4},
			want:  ScoreTriple{MoodScore: 18, DistressLevel: 86, StabilityScore: 24},
		},
		{
			name:  "sustained happiness lifts mood and stability",
			state: StateHappy,
			ctx:   ConversationContext{MessageCount: 4, ConsistentEmotionCount: 3},
			want:  ScoreTriple{MoodScore: 100, DistressLevel: 4, StabilityScore: 98},
		},
		{
			name:  "amplification factor caps at 0.25",
			state: StateSad,
			ctx:   ConversationContext{MessageCount: 8, ConsistentEmotionCount: 6},
			want:  ScoreTriple{MoodScore: 17, DistressLevel: 90, StabilityScore: 23},
		},
		{
			name:  "early volatility costs stability",
			state: StateNeutral,
			ctx:   ConversationContext{MessageCount: 5, ConsistentEmotionCount: 1, EmotionChanges: 4},
			want:  ScoreTriple{MoodScore: 55, DistressLevel: 30, StabilityScore: 52},
		},
		{
			name:  "volatility penalty only applies early in a conversation",
			state: StateNeutral,
			ctx:   ConversationContext{MessageCount: 12, ConsistentEmotionCount: 1, EmotionChanges: 4},
			want:  ScoreTriple{MoodScore: 55, DistressLevel: 30, StabilityScore: 65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextAwareScore(tt.state, "", tt.ctx); got != tt.want {
				t.Errorf("ContextAwareScore(%s) = %+v, want %+v", tt.state, got, tt.want)
			}
		})
	}
}
