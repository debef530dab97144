package emotion

import "math"

const historyLimit = 5

// ConversationContext is the rolling per-conversation state used for
// context-aware scoring. It is a value type: Update returns a new context and
// never mutates shared history in place.
type ConversationContext struct {
	PreviousEmotions       []State `json:"previous_emotions"`
	MessageCount           int     `json:"message_count"`
	ConsistentEmotionCount int     `json:"consistent_emotion_count"`
	EmotionChanges         int     `json:"emotion_changes"`
}

// NewConversationContext returns an empty context for a fresh conversation.
func NewConversationContext() ConversationContext {
	return ConversationContext{}
}

// Update records a newly classified state. Consecutive repeats grow the
// consistency counter; a different state resets it to 1 and bumps the change
// counter. History keeps at most the last 5 states, most-recent-last.
func (c ConversationContext) Update(state State) ConversationContext {
	next := c
	next.MessageCount++

	if len(c.PreviousEmotions) > 0 {
		last := c.PreviousEmotions[len(c.PreviousEmotions)-1]
		if last == state {
			next.ConsistentEmotionCount++
		} else {
			next.ConsistentEmotionCount = 1
			next.EmotionChanges++
		}
	} else {
		next.ConsistentEmotionCount = 1
	}

	history := c.PreviousEmotions
	if len(history) > historyLimit-1 {
		history = history[len(history)-(historyLimit-1):]
	}
	next.PreviousEmotions = make([]State, 0, len(history)+1)
	next.PreviousEmotions = append(next.PreviousEmotions, history...)
	next.PreviousEmotions = append(next.PreviousEmotions, state)

	return next
}

// ContextAwareScore starts from ScoreFor and layers in conversation history:
// a sustained run of the same emotion amplifies it, and frequent emotion
// changes early in a conversation read as volatility and cost stability.
func ContextAwareScore(state State, text string, ctx ConversationContext) ScoreTriple {
	scores := ScoreFor(state, text)
	if ctx.MessageCount <= 1 {
		return scores
	}

	mood := float64(scores.MoodScore)
	distress := float64(scores.DistressLevel)
	stability := float64(scores.StabilityScore)

	if ctx.ConsistentEmotionCount > 2 {
		factor := math.Min(0.25, float64(ctx.ConsistentEmotionCount)*0.05)
		switch {
		case state.positive():
			mood *= 1 + factor
			stability *= 1 + factor
			distress *= 1 - factor
		case state.negative():
			mood *= 1 - factor
			stability *= 1 - factor
			distress *= 1 + factor
		}
	}

	if ctx.EmotionChanges > 3 && ctx.MessageCount < 10 {
		stability *= 0.8
	}

	return ScoreTriple{
		MoodScore:      clampRound(mood),
		DistressLevel:  clampRound(distress),
		StabilityScore: clampRound(stability),
	}
}
