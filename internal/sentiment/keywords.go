package sentiment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/IT-VAX/SentimentAnalysis/internal/models"
	"github.com/IT-VAX/SentimentAnalysis/internal/normalizer"
)

const (
	maxKeywords        = 6
	minKeywordLength   = 3
	longKeywordMin     = 4
	keywordWindow      = 2
	labelListBonus     = 3.0
	maxLengthComponent = 1.0
)

// Tokens are runs of word characters; underscore is a word character,
// which keeps normalizer sentinels like NOT_happy intact as single
// tokens so the final underscore filter can drop them whole.
var tokenSplitRe = regexp.MustCompile(`\W+`)

type scoredKeyword struct {
	token string
	score float64
}

// ExtractKeywords returns up to 6 tokens that best explain why text
// was assigned label. The label is an input, not something this
// routine decides.
func ExtractKeywords(text string, label models.SentimentLabel) []string {
	normalized, _ := normalizer.Normalize(text)
	tokens := tokenize(normalized)
	if len(tokens) == 0 {
		return nil
	}

	labelList := keywordListFor(label)

	// Candidate pass: first occurrence order, deduplicated.
	seen := make(map[string]bool, len(tokens))
	var candidates []string
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true

		if labelList[tok] || len(tok) > longKeywordMin || nearSentimentWord(tokens, tok) {
			candidates = append(candidates, tok)
		}
	}

	scored := make([]scoredKeyword, 0, len(candidates))
	for _, tok := range candidates {
		score := float64(countToken(tokens, tok))
		if labelList[tok] {
			score += labelListBonus
		}
		score += lengthComponent(tok)
		scored = append(scored, scoredKeyword{token: tok, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	keywords := make([]string, 0, maxKeywords)
	for _, sk := range scored {
		// Safety net: no sentinel fragment ever leaves this function.
		if strings.Contains(sk.token, "_") {
			continue
		}
		keywords = append(keywords, sk.token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// tokenize lowercases and splits on non-word runs, discarding short
// tokens and stop words.
func tokenize(text string) []string {
	parts := tokenSplitRe.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) < minKeywordLength {
			continue
		}
		if stopWords[p] {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// nearSentimentWord reports whether the first occurrence of tok sits
// within the ±2-token window of any sentiment-bearing word.
func nearSentimentWord(tokens []string, tok string) bool {
	idx := -1
	for i, t := range tokens {
		if t == tok {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	lo := idx - keywordWindow
	if lo < 0 {
		lo = 0
	}
	hi := idx + keywordWindow
	if hi > len(tokens)-1 {
		hi = len(tokens) - 1
	}
	for i := lo; i <= hi; i++ {
		if i == idx {
			continue
		}
		if isSentimentBearing(tokens[i]) {
			return true
		}
	}
	return false
}

func countToken(tokens []string, tok string) int {
	n := 0
	for _, t := range tokens {
		if t == tok {
			n++
		}
	}
	return n
}

func lengthComponent(tok string) float64 {
	c := float64(len(tok)) / 10
	if c > maxLengthComponent {
		return maxLengthComponent
	}
	return c
}
