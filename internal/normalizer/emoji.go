package normalizer

// Emoji buckets. Codepoint sets are fixed; anything outside them is
// left untouched.
var (
	positiveEmojis = []string{"😀", "😃", "😄", "😁", "😆", "😊", "🙂", "😉", "😌", "👍", "🎉", "✨"}
	negativeEmojis = []string{"😞", "😟", "😢", "😭", "😔", "🙁", "👎", "💔"}
	neutralEmojis  = []string{"😐", "😑", "😶", "🤔", "🤨"}
	angerEmojis    = []string{"😠", "😡", "🤬", "💢"}
	loveEmojis     = []string{"❤️", "❤", "😍", "🥰", "😘", "💕", "💖"}
)

// ASCII emoticons, longest patterns first so ":-)" is consumed before
// ":)" ever matches inside it.
var (
	positiveEmoticons = []string{":-D", ":-)", ";-)", ":D", "=D", ":)", "=)", ":]", ";)", ":P", ":p", "^^"}
	negativeEmoticons = []string{":'-(", ":'(", ":-(", "D:", ":(", "=(", ":["}
	neutralEmoticons  = []string{":-|", ":-/", ":-\\", ":|", ":/", ":\\"}
)
