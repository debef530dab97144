package emotion

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// patternGroup is a weighted bundle of alternative expressions for one state.
// A group contributes its weight at most once per message, however many of
// its patterns match.
type patternGroup struct {
	weight   float64
	patterns []*regexp.Regexp
}

// Weighted indicators per state. High-intensity phrasing weighs 1.5, standard
// vocabulary 1.0, casual/emoji-level signals 0.8. Crisis language under
// distressed weighs 2.0 and must win over everything else.
var indicators = map[State][]patternGroup{
	StateHappy: {
		{1.5, compileAll(
			`\bvery happy\b|\bextremely happy\b|\bover(?:\s)?joyed\b|\becstatic\b|\bthrilled\b`,
			`\beuphori(?:c|a)\b|\belated\b|\bin heaven\b|\bon cloud nine\b|\blove it\b`,
		)},
		{1.0, compileAll(
			`\bhappy\b|\bjoy(?:ful)?\b|\bexcited\b|\belated\b|\bcheer(?:ful)?\b|\bglad\b`,
			`\bgood mood\b|\bfeeling good\b|\bwonderful\b|\bgreat\b|\bamazing\b|\bfantastic\b`,
			`\bpositive\b|\bupbeat\b|\benergetic\b|\bvibrant\b|\blively\b|\bcontented\b`,
		)},
		{0.8, compileAll(
			`😊|😄|😁|🙂|😀|🤗|😍|❤️|💕|💯|🔥`,
			`\bsatisf(?:ied|ying)\b|\bpleas(?:ed|ant)\b|\bengaged\b|\boptimistic\b|\bthank you\b`,
		)},
	},
	StateSad: {
		{1.5, compileAll(
			`\bseverely depress(?:ed|ion)\b|\bextremely sad\b|\bhopeless\b|\bdesperate\b`,
			`\bheartbroken\b|\bcrushed\b|\bdevastated\b|\bdespondent\b|\bmiserable\b`,
		)},
		{1.0, compileAll(
			`\bsad\b|\bdepress(?:ed|ion|ing)?\b|\bdown\b|\blow\b|\bunhappy\b|\bgloomy\b`,
			`\blonely\b|\bheartbroken\b|\bempty\b|\bforlorn\b|\bmournful\b|\bmelancholic\b`,
		)},
		{0.8, compileAll(
			`😢|😭|😥|😓|🥺|💔|😞|😔|☹️|😿`,
			`\bdisappointed\b|\bdisheartened\b|\blet down\b|\bbummed\b|\bcrying\b`,
			`\bupset\b|\bhurting\b|\bstruggling\b|\bsighing\b|\bnot happy\b`,
		)},
	},
	StateAngry: {
		{1.5, compileAll(
			`\bfurious\b|\benraged\b|\bfuming\b|\bseething\b|\bincensed\b|\blivid\b`,
			`\boutraged\b|\binfuriated\b|\birate\b|\braging\b|\bexplod(?:e|ing)\b`,
		)},
		{1.0, compileAll(
			`\bangry\b|\bmad\b|\birrita(?:ted|ting)\b|\bannoy(?:ed|ing)?\b|\bhostile\b`,
			`\bfrustrated\b|\bpissed\b|\bhateful\b|\bresentful\b|\bvexed\b`,
		)},
		{0.8, compileAll(
			`😠|😡|🤬|👿|💢|💥|😤|😾`,
			`\bdisgruntled\b|\bunsatisfied\b|\bticked off\b|\bbothered\b`,
			`\bhate this\b|\bthis sucks\b|\bstupid\b|\bridiculous\b|\bnot fair\b`,
		)},
	},
	StateAnxious: {
		{1.5, compileAll(
			`\bsevere anxiety\b|\bpanic attack\b|\bterrified\b|\bparalyzed by fear\b`,
			`\boverwhelm(?:ed|ing)\b|\bfrozen\b|\bcannot cope\b|\bdread\b`,
		)},
		{1.0, compileAll(
			`\banxi(?:ous|ety)\b|\bworr(?:y|ied)\b|\bstress(?:ed|ful)?\b|\bfear(?:ful)?\b`,
			`\buneasy\b|\bpanic(?:ky)?\b|\bapprehens(?:ive|ion)\b|\btense\b|\bjittery\b`,
			`\bscared\b|\bfrightened\b|\bin danger\b|\bwhat if\b|\bmight happen\b`,
		)},
		{0.8, compileAll(
			`😰|😨|😧|😱|😬|🥴|🙀`,
			`\bnervous\b|\bagitated\b|\bon edge\b|\brestless\b|\bcannot relax\b`,
		)},
	},
	StateCalm: {
		{1.5, compileAll(
			`\bcompletely calm\b|\babsolutely peaceful\b|\butmost tranquility\b`,
			`\bzen\b|\bmeditative\b|\bdeep peace\b|\bblissful\b|\bserenity\b`,
		)},
		{1.0, compileAll(
			`\bcalm\b|\bpeace(?:ful)?\b|\brelax(?:ed|ing)?\b|\btranquil\b|\bserene\b`,
			`\bcomposed\b|\bcentered\b|\bmindful\b|\brestful\b|\bquiet\b|\bstill\b`,
			`\btaking it easy\b|\btaking deep breaths\b|\bbalanced\b|\bsteady\b`,
		)},
		{0.8, compileAll(
			`😌|🧘|💆|🌊|🌈|🌷`,
			`\bease\b|\bbalanced\b|\bsoothed\b|\bcontent\b|\buntroubled\b`,
		)},
	},
	StateDistressed: {
		{2.0, compileAll(
			`\bsuicid(?:e|al)\b|\bself[-\s]?harm\b|\bend(?:ing)? (?:it|life|everything)\b`,
			`\bwant to die\b|\bno reason to live\b|\bno way out\b|\bcannot go on\b`,
		)},
		{1.5, compileAll(
			`\bhelp(?:less)?\b|\bhurt(?:ing)?\b|\bharming\b|\bdespair\b|\bpain(?:ful)?\b`,
			`\btorture\b|\bdying\b|\bdeath\b|\bdead\b|\bkill\b|\bhate myself\b`,
			`\btrauma(?:tic|tized)?\b|\bnightmare\b|\bcrisis\b|\bbreaking down\b`,
		)},
		{1.0, compileAll(
			`\bno one cares\b|\ball alone\b|\bnever getting better\b|\btoo much\b`,
			`\bno purpose\b|\bempty\b|\bhopeless\b|\babandoned\b|\blost\b`,
			`\bgive up\b|\bcan'?t handle\b|\bfailing\b|\bno point\b|\bundone\b`,
		)},
	},
	StateNeutral: {
		{1.0, compileAll(
			`\bneutral\b|\bindifferent\b|\bmiddle ground\b|\bneither good nor bad\b`,
			`\baverage\b|\bmoderate\b|\bnormal\b|\btypical\b|\bregular\b|\busual\b`,
			`\bjust saying\b|\bjust checking\b|\bjust asking\b|\bjust curious\b`,
		)},
		{0.7, compileAll(
			`\bok\b|\bokay\b|\bfine\b|\balright\b|\bso-so\b|\bmeh\b`,
			`^(?:yes|no|maybe|not sure|i think so|perhaps|possibly)$`,
			`\bi see\b|\bunderstand\b|\bgot it\b|\bthat makes sense\b|\bfair enough\b`,
		)},
	},
}

var negationWords = []string{
	"not", "no", "never", "don't", "doesn't", "didn't", "won't", "wouldn't",
	"isn't", "aren't", "wasn't", "weren't", "haven't", "hasn't", "hadn't",
	"can't", "cannot", "couldn't", "shouldn't", "none", "nobody",
}

var (
	negationRegexps = compileWords(negationWords)
	questionStart   = regexp.MustCompile(`^(?:who|what|when|where|why|how|is|are|was|were|will|do|does|did|can|could|should|would|may|might|am|have|has|had)\b`)
	simpleReply     = regexp.MustCompile(`^(?:yes|no|maybe|i think so|probably|not really|sometimes)$`)
	greeting        = regexp.MustCompile(`^(?:hi|hello|hey|good morning|good afternoon|good evening|greetings)$`)
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

func compileWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return out
}

// ContainsNegation reports whether text carries a whole-word negation cue
// that may flip its emotional meaning.
func ContainsNegation(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range negationRegexps {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// IsQuestion reports whether text reads as a question: trailing question mark
// or a leading auxiliary/wh-word.
func IsQuestion(text string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	return questionStart.MatchString(trimmed)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// negated remaps a detected state for messages that negate it. "I'm not
// happy" reads sad; "I'm not sad" only reads neutral, not happy.
func negated(state State) State {
	switch state {
	case StateHappy:
		return StateSad
	case StateSad:
		return StateNeutral
	case StateCalm:
		return StateAnxious
	case StateAnxious:
		return StateNeutral
	case StateAngry:
		return StateNeutral
	default:
		return state
	}
}

// Classify assigns one emotional state to text. recent carries the states of
// the user's prior messages in order, most-recent-last; pass nil when no
// conversation history exists. Classify is a pure function and always returns
// a member of the closed set.
func Classify(text string, recent []State) State {
	lower := strings.ToLower(text)
	length := utf8.RuneCountInString(lower)

	scores := map[State]float64{StateNeutral: 0.2}
	for state, groups := range indicators {
		for _, group := range groups {
			for _, re := range group.patterns {
				if re.MatchString(lower) {
					scores[state] += group.weight
					break
				}
			}
		}
	}

	// Short inputs skew neutral; the boost fades as length approaches 50.
	contentFactor := math.Min(1.0, math.Sqrt(float64(length)/50))
	if length < 15 {
		scores[StateNeutral] += (1 - contentFactor) * 0.7
	}

	// Multiple strong non-neutral signals mean the message is anything but
	// neutral, so dampen it.
	strong := 0
	for _, state := range States {
		if state != StateNeutral && scores[state] > 0.7 {
			strong++
		}
	}
	if strong > 1 {
		scores[StateNeutral] -= 0.2 * float64(strong)
	}

	if len(recent) > 0 {
		last := recent[len(recent)-1]
		if length < 10 && last != StateNeutral {
			scores[last] += 0.3
		}

		if len(recent) >= 3 && scores[StateDistressed] > 0 {
			window := recent[len(recent)-3:]
			escalating := true
			for _, s := range window {
				if !s.negative() {
					escalating = false
					break
				}
			}
			if escalating {
				scores[StateDistressed] *= 1.2
			}
		}
	}

	dominant := StateNeutral
	var highest float64
	for _, state := range States {
		if scores[state] > highest {
			highest = scores[state]
			dominant = state
		}
	}

	trimmed := strings.TrimSpace(lower)
	if highest < 0.6 {
		// Bare acknowledgements and greetings carry no emotional signal.
		if simpleReply.MatchString(trimmed) || greeting.MatchString(trimmed) {
			return StateNeutral
		}
		return StateNeutral
	}

	if ContainsNegation(lower) {
		return negated(dominant)
	}

	if IsQuestion(lower) && dominant != StateDistressed {
		// Crisis language inside a question still surfaces.
		if scores[StateDistressed] > 0.5 {
			return StateDistressed
		}
		if scores[dominant] < 1.2 {
			return StateNeutral
		}
	}

	return dominant
}
