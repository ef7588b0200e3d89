// Package normalizer rewrites raw text into a token-augmented form
// that surfaces negation, intensity, and affect cues for the scoring
// stages. The rewrite order is load-bearing: every step operates on
// the output of the previous one, so later steps see already
// substituted sentinels and never double-process them.
package normalizer

import (
	"regexp"
	"strings"
)

// Sentinel markers embedded in normalized text. Scoring code should
// prefer the Markers record over searching for these strings; the
// markers exist in the text so the keyword tokenizer can recognize
// and discard them.
const (
	NegationPrefix    = "NOT_"
	IntensifierPrefix = "INTENSIFIER_"
	DiminisherPrefix  = "DIMINISHER_"

	ExcitementMarker = " EXCITEMENT "
	ConfusionMarker  = " CONFUSION "
	PauseMarker      = " PAUSE "
)

// Markers is the structured side-channel produced alongside the
// rewritten text: boolean cues the estimator consumes directly
// instead of re-scanning for sentinel substrings.
type Markers struct {
	Negation    bool
	Intensifier bool
	Diminisher  bool

	Excitement bool
	Confusion  bool
	Pause      bool

	// Emoji and emoticon cues folded to 3-class polarity: love counts
	// as positive, anger as negative.
	PositiveEmoji bool
	NegativeEmoji bool
	NeutralEmoji  bool
}

var (
	// Longest alternatives first so "nothing" is never consumed as "not".
	negationRe    = regexp.MustCompile(`(?i)\b(?:nothing|nowhere|neither|nobody|never|none|nor|not|no)\s+`)
	intensifierRe = regexp.MustCompile(`(?i)\b(?:extremely|incredibly|absolutely|completely|totally|very)\s+`)
	diminisherRe  = regexp.MustCompile(`(?i)\b(?:slightly|somewhat|rather|quite|fairly|pretty)\s+`)

	excitementRe = regexp.MustCompile(`!{2,}`)
	confusionRe  = regexp.MustCompile(`\?{2,}`)
	pauseRe      = regexp.MustCompile(`\.{3,}`)
)

type contraction struct {
	re          *regexp.Regexp
	replacement string
}

// Table order matters: "won't" and "can't" must be expanded before the
// generic "n't" rule eats their suffix, and "n't" before "'d" style
// suffixes get a chance to misfire.
var contractions = []contraction{
	{regexp.MustCompile(`(?i)won't`), "will not"},
	{regexp.MustCompile(`(?i)can't`), "cannot"},
	{regexp.MustCompile(`(?i)n't`), " not"},
	{regexp.MustCompile(`(?i)'re`), " are"},
	{regexp.MustCompile(`(?i)'ve`), " have"},
	{regexp.MustCompile(`(?i)'ll`), " will"},
	{regexp.MustCompile(`(?i)'d`), " would"},
	{regexp.MustCompile(`(?i)'m`), " am"},
	{regexp.MustCompile(`(?i)it's`), "it is"},
	{regexp.MustCompile(`(?i)that's`), "that is"},
}

// Normalize rewrites text and reports which cues were found. It is
// deterministic, pure, and total: any input produces some output.
// Running it on its own output is a no-op for every sentinel class.
func Normalize(text string) (string, Markers) {
	var m Markers

	s := strings.TrimSpace(text)

	if negationRe.MatchString(s) {
		m.Negation = true
		s = negationRe.ReplaceAllString(s, NegationPrefix)
	}
	if intensifierRe.MatchString(s) {
		m.Intensifier = true
		s = intensifierRe.ReplaceAllString(s, IntensifierPrefix)
	}
	if diminisherRe.MatchString(s) {
		m.Diminisher = true
		s = diminisherRe.ReplaceAllString(s, DiminisherPrefix)
	}

	for _, c := range contractions {
		s = c.re.ReplaceAllString(s, c.replacement)
	}

	if excitementRe.MatchString(s) {
		m.Excitement = true
		s = excitementRe.ReplaceAllString(s, ExcitementMarker)
	}
	if confusionRe.MatchString(s) {
		m.Confusion = true
		s = confusionRe.ReplaceAllString(s, ConfusionMarker)
	}
	if pauseRe.MatchString(s) {
		m.Pause = true
		s = pauseRe.ReplaceAllString(s, PauseMarker)
	}

	s = replaceAll(s, positiveEmojis, " EMOJI_POSITIVE ", &m.PositiveEmoji)
	s = replaceAll(s, negativeEmojis, " EMOJI_NEGATIVE ", &m.NegativeEmoji)
	s = replaceAll(s, neutralEmojis, " EMOJI_NEUTRAL ", &m.NeutralEmoji)
	s = replaceAll(s, angerEmojis, " EMOJI_ANGER ", &m.NegativeEmoji)
	s = replaceAll(s, loveEmojis, " EMOJI_LOVE ", &m.PositiveEmoji)

	s = replaceAll(s, positiveEmoticons, " EMOTICON_POSITIVE ", &m.PositiveEmoji)
	s = replaceAll(s, negativeEmoticons, " EMOTICON_NEGATIVE ", &m.NegativeEmoji)
	s = replaceAll(s, neutralEmoticons, " EMOTICON_NEUTRAL ", &m.NeutralEmoji)

	return s, m
}

func replaceAll(s string, patterns []string, marker string, found *bool) string {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			*found = true
			s = strings.ReplaceAll(s, p, marker)
		}
	}
	return s
}
