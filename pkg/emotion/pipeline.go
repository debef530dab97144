package emotion

// Classification is the per-message result handed to chat consumers: the
// assigned state, its context-adjusted scores, and the context to carry into
// the next message.
type Classification struct {
	State   State
	Scores  ScoreTriple
	Context ConversationContext
}

// ClassifyAndScore runs the full per-message pipeline: classify text against
// the conversation history, fold the result into the context, then score with
// context awareness. The input context is not modified.
func ClassifyAndScore(text string, ctx ConversationContext) Classification {
	state := Classify(text, ctx.PreviousEmotions)
	updated := ctx.Update(state)
	scores := ContextAwareScore(state, text, updated)
	return Classification{
		State:   state,
		Scores:  scores,
		Context: updated,
	}
}
