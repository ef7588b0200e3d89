package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrimsWhitespace(t *testing.T) {
	got, _ := Normalize("   hello world   ")
	assert.Equal(t, "hello world", got)
}

func TestNormalizeNegation(t *testing.T) {
	got, m := Normalize("This is not good")

	assert.Contains(t, got, "NOT_good")
	assert.True(t, m.Negation)
}

func TestNormalizeNegationVariants(t *testing.T) {
	for _, word := range []string{"not", "no", "never", "nothing", "nobody", "neither", "nor"} {
		got, m := Normalize(word + " fun")
		assert.Contains(t, got, "NOT_fun", "negation word %q", word)
		assert.True(t, m.Negation)
	}
}

func TestNormalizeIntensifier(t *testing.T) {
	got, m := Normalize("this is very good")

	assert.Contains(t, got, "INTENSIFIER_good")
	assert.True(t, m.Intensifier)
	assert.False(t, m.Negation)
}

func TestNormalizeDiminisher(t *testing.T) {
	got, m := Normalize("this is slightly boring")

	assert.Contains(t, got, "DIMINISHER_boring")
	assert.True(t, m.Diminisher)
}

func TestNormalizeContractions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"I won't go", "I will not go"},
		{"I can't stand it", "I cannot stand it"},
		{"I don't care", "I do not care"},
		{"you're late", "you are late"},
		{"I've seen it", "I have seen it"},
		{"she'll come", "she will come"},
		{"I'm here", "I am here"},
	}

	for _, tt := range tests {
		got, _ := Normalize(tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizePunctuationRuns(t *testing.T) {
	got, m := Normalize("wow!!")
	assert.Contains(t, got, "EXCITEMENT")
	assert.True(t, m.Excitement)

	got, m = Normalize("really??")
	assert.Contains(t, got, "CONFUSION")
	assert.True(t, m.Confusion)

	got, m = Normalize("well...")
	assert.Contains(t, got, "PAUSE")
	assert.True(t, m.Pause)

	// A single terminal mark is left alone.
	got, m = Normalize("done!")
	assert.NotContains(t, got, "EXCITEMENT")
	assert.False(t, m.Excitement)
}

func TestNormalizeEmoji(t *testing.T) {
	got, m := Normalize("great day 😊")
	assert.Contains(t, got, "EMOJI_POSITIVE")
	assert.True(t, m.PositiveEmoji)

	got, m = Normalize("so sad 😢")
	assert.Contains(t, got, "EMOJI_NEGATIVE")
	assert.True(t, m.NegativeEmoji)

	// Anger folds into the negative cue, love into the positive one.
	got, m = Normalize("furious 😡")
	assert.Contains(t, got, "EMOJI_ANGER")
	assert.True(t, m.NegativeEmoji)

	got, m = Normalize("adore it ❤")
	assert.Contains(t, got, "EMOJI_LOVE")
	assert.True(t, m.PositiveEmoji)

	got, m = Normalize("hmm 🤔")
	assert.Contains(t, got, "EMOJI_NEUTRAL")
	assert.True(t, m.NeutralEmoji)
}

func TestNormalizeEmoticons(t *testing.T) {
	got, m := Normalize("nice one :)")
	assert.Contains(t, got, "EMOTICON_POSITIVE")
	assert.True(t, m.PositiveEmoji)

	got, m = Normalize("oh no :(")
	assert.Contains(t, got, "EMOTICON_NEGATIVE")
	assert.True(t, m.NegativeEmoji)

	got, m = Normalize("meh :|")
	assert.Contains(t, got, "EMOTICON_NEUTRAL")
	assert.True(t, m.NeutralEmoji)
}

func TestNormalizeIdempotentOnSentinels(t *testing.T) {
	inputs := []string{
		"This is not good!!",
		"very happy 😊 :)",
		"slightly worried... really??",
		"never again 😡",
	}

	for _, in := range inputs {
		once, _ := Normalize(in)
		twice, _ := Normalize(once)

		assert.NotContains(t, twice, "NOT_NOT_")
		assert.NotContains(t, twice, "INTENSIFIER_INTENSIFIER_")
		assert.NotContains(t, twice, "DIMINISHER_DIMINISHER_")
		assert.False(t, strings.Contains(twice, "EMOJI_EMOJI_"))
	}
}

func TestNormalizeIsPure(t *testing.T) {
	in := "not bad!! 😊"
	first, m1 := Normalize(in)
	second, m2 := Normalize(in)

	assert.Equal(t, first, second)
	assert.Equal(t, m1, m2)
}
