package sentiment

import (
	"regexp"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
)

// Fixed word lists for the local estimator and the keyword extractor.
// These are an approximation, not an NLP engine; the remote
// classifiers carry the linguistic weight when they are reachable.
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "wonderful", "fantastic",
		"awesome", "love", "happy", "best", "beautiful", "perfect",
		"brilliant", "enjoy", "nice", "pleased", "delighted", "impressive",
		"excited", "glad", "superb", "favorite",
	}

	negativeWords = []string{
		"bad", "terrible", "awful", "horrible", "hate", "worst", "poor",
		"disappointing", "disappointed", "sad", "angry", "annoying",
		"broken", "useless", "boring", "painful", "wrong", "fail",
		"failed", "disgusting", "ugly", "nasty",
	}

	neutralWords = []string{
		"okay", "fine", "average", "normal", "regular", "standard",
		"typical", "moderate", "usual", "ordinary", "acceptable",
	}
)

// Conditional cue words; each distinct cue in a sentence nudges the
// neutral score.
var conditionalWords = []string{"if", "would", "could", "might", "maybe", "perhaps"}

// Question openers; a sentence starting with one counts as a question
// cue once the terminal punctuation has been split away.
var questionWords = []string{"what", "when", "where", "who", "why", "how", "which"}

// Stop words discarded by the keyword extractor. Normalizer sentinel
// fragments are in here so markers never leak into keyword output.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"with": true, "this": true, "that": true, "from": true, "they": true,
	"have": true, "has": true, "had": true, "was": true, "were": true,
	"been": true, "being": true, "will": true, "would": true,
	"could": true, "should": true, "than": true, "then": true,
	"them": true, "there": true, "their": true, "what": true,
	"when": true, "where": true, "who": true, "why": true, "how": true,
	"about": true, "into": true, "over": true, "after": true,
	"because": true, "while": true, "just": true, "also": true,
	"some": true, "such": true, "not": true, "you": true, "your": true,
	"excitement": true, "confusion": true, "pause": true,
	"emoji": true, "emoticon": true,
	"negation": true, "intensifier": true, "diminisher": true,
}

var (
	positiveWordRes = compileWordList(positiveWords)
	negativeWordRes = compileWordList(negativeWords)
	neutralWordRes  = compileWordList(neutralWords)

	positiveWordSet = toSet(positiveWords)
	negativeWordSet = toSet(negativeWords)
	neutralWordSet  = toSet(neutralWords)
)

func compileWordList(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return res
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// keywordListFor returns the label-specific keyword set used by the
// extractor's retention and scoring rules.
func keywordListFor(label models.SentimentLabel) map[string]bool {
	switch label {
	case models.LabelPositive:
		return positiveWordSet
	case models.LabelNegative:
		return negativeWordSet
	default:
		return neutralWordSet
	}
}

// isSentimentBearing reports whether a token appears in any of the
// three word lists.
func isSentimentBearing(token string) bool {
	return positiveWordSet[token] || negativeWordSet[token] || neutralWordSet[token]
}
