package similarity

import (
	"math"
	"strings"
	"unicode"
)

// Common English function words excluded from the vocabulary.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "could": true, "did": true, "do": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "he": true, "her": true, "here": true,
	"hers": true, "him": true, "his": true, "how": true, "i": true,
	"if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "itself": true, "just": true, "me": true, "more": true,
	"most": true, "my": true, "no": true, "nor": true, "not": true,
	"now": true, "of": true, "off": true, "on": true, "once": true,
	"only": true, "or": true, "other": true, "our": true, "ours": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"until": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true, "yours": true,
}

// tokenize lowercases text and splits it into letter/digit runs, dropping
// stop words and single-character tokens.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len(tok) < 2 || stopWords[tok] {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// termFreq returns raw counts scaled by document length.
func termFreq(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	n := float64(len(tokens))
	for tok := range tf {
		tf[tok] /= n
	}
	return tf
}

// documentFreq counts how many documents contain each term.
func documentFreq(docs []map[string]float64) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		for tok := range doc {
			df[tok]++
		}
	}
	return df
}

// inverseDocFreq uses the smoothed form ln((1+N)/(1+df)) + 1, which keeps
// terms present in every document from vanishing entirely.
func inverseDocFreq(df map[string]int, totalDocs int) map[string]float64 {
	idf := make(map[string]float64, len(df))
	for tok, count := range df {
		idf[tok] = math.Log(float64(1+totalDocs)/float64(1+count)) + 1
	}
	return idf
}

// weigh combines term and inverse-document frequencies and L2-normalizes
// the result, so cosine similarity reduces to a dot product.
func weigh(tf map[string]float64, idf map[string]float64) map[string]float64 {
	if len(tf) == 0 {
		return nil
	}
	vec := make(map[string]float64, len(tf))
	var norm float64
	for tok, f := range tf {
		w := f * idf[tok]
		vec[tok] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for tok := range vec {
		vec[tok] /= norm
	}
	return vec
}

// dot is the cosine similarity of two L2-normalized sparse vectors.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for tok, w := range a {
		sum += w * b[tok]
	}
	return sum
}
