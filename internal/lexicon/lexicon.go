// Package lexicon holds the static keyword sets used by the analyzers.
// Every set is built once at init and is read-only afterwards.
package lexicon

// Set is an immutable collection of lowercase strings.
type Set struct {
	name  string
	words []string
	index map[string]struct{}
}

func newSet(name string, words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{name: name, words: words, index: m}
}

// Name returns the set's identifier.
func (s Set) Name() string { return s.name }

// Has reports whether w (already lowercased) is a member.
func (s Set) Has(w string) bool {
	_, ok := s.index[w]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.words) }

// Words returns the members in declaration order. The slice is a copy.
func (s Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Pair is an ordered from→to substitution.
type Pair struct {
	From string
	To   string
}

var (
	Stopwords = newSet("stopwords",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've", "you'll", "you'd",
		"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
		"herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
		"or", "because", "as", "until", "while", "of", "at", "by", "for", "with", "about", "against", "between",
		"into", "through", "during", "before", "after", "above", "below", "to", "from", "up", "down", "in", "out",
		"on", "off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
		"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't",
		"should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn",
		"couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't",
		"isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
		"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
		// stems left when the tokenizer splits can't, won't and shan't
		"ca", "wo", "sha",
	)

	FormalKeywords = newSet("formal_keywords",
		"therefore", "consequently", "furthermore", "moreover", "nevertheless", "thus", "hence",
		"accordingly", "aforementioned", "herein", "whereas", "notwithstanding", "subsequently",
		"regarding", "pursuant", "hereby",
	)

	InformalKeywords = newSet("informal_keywords",
		"yeah", "cool", "gonna", "wanna", "gotta", "kinda", "sorta", "stuff", "awesome", "yep",
		"nope", "dude", "guys", "btw", "omg",
	)

	PositiveKeywords = newSet("positive_keywords",
		"good", "great", "excellent", "happy", "wonderful", "fantastic", "amazing", "love",
		"best", "positive", "success", "beneficial", "pleased", "delighted",
	)

	NegativeKeywords = newSet("negative_keywords",
		"bad", "poor", "terrible", "sad", "awful", "horrible", "dislike", "worst", "negative",
		"failure", "problem", "unfortunately", "disappointed", "upset",
	)

	PassiveAuxiliaries = newSet("passive_auxiliaries",
		"am", "is", "are", "was", "were", "be", "been", "being",
	)

	// Fillers are the adverbs stripped by the concise style.
	Fillers = newSet("filler_words",
		"very", "really", "just", "actually", "basically", "literally", "quite", "simply", "totally",
	)
)

// Expansions turns contractions and slang into their formal spelling.
var Expansions = []Pair{
	{"don't", "do not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"can't", "cannot"},
	{"won't", "will not"},
	{"isn't", "is not"},
	{"aren't", "are not"},
	{"wasn't", "was not"},
	{"weren't", "were not"},
	{"it's", "it is"},
	{"that's", "that is"},
	{"I'm", "I am"},
	{"I've", "I have"},
	{"I'll", "I will"},
	{"you're", "you are"},
	{"we're", "we are"},
	{"they're", "they are"},
	{"let's", "let us"},
	{"gonna", "going to"},
	{"wanna", "want to"},
	{"gotta", "got to"},
	{"kinda", "kind of"},
	{"sorta", "sort of"},
	{"yeah", "yes"},
}

// Contractions is the reverse direction used by the casual and friendly styles.
var Contractions = []Pair{
	{"do not", "don't"},
	{"does not", "doesn't"},
	{"did not", "didn't"},
	{"cannot", "can't"},
	{"will not", "won't"},
	{"is not", "isn't"},
	{"are not", "aren't"},
	{"it is", "it's"},
	{"that is", "that's"},
	{"I am", "I'm"},
	{"I have", "I've"},
	{"I will", "I'll"},
	{"you are", "you're"},
	{"we are", "we're"},
	{"they are", "they're"},
}

// Simplifications maps complex vocabulary to plain equivalents.
var Simplifications = []Pair{
	{"utilize", "use"},
	{"utilizes", "uses"},
	{"utilization", "use"},
	{"facilitate", "help"},
	{"demonstrate", "show"},
	{"demonstrates", "shows"},
	{"approximately", "about"},
	{"commence", "begin"},
	{"terminate", "end"},
	{"endeavor", "try"},
	{"sufficient", "enough"},
	{"assistance", "help"},
	{"purchase", "buy"},
	{"subsequently", "later"},
	{"numerous", "many"},
	{"additional", "more"},
	{"obtain", "get"},
	{"require", "need"},
	{"requires", "needs"},
	{"individuals", "people"},
	{"regarding", "about"},
	{"ascertain", "find out"},
	{"prior to", "before"},
	{"in order to", "to"},
}
