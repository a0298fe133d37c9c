package similarity

import (
	"sort"

	"StockScope/internal/model"
)

// Rank scores every corpus entry against the target description and returns
// the topN most similar tickers, best first. The target ticker is never part
// of the output. If targetTicker already has a corpus entry, that entry is
// used and targetDescription is ignored, so the text is not double-counted.
//
// An empty corpus or an empty target description yields an empty ranking;
// insufficient data is a normal state here, not an error. Rank is pure: it
// touches no network and keeps no state.
func Rank(targetDescription string, corpus model.DescriptionCorpus, targetTicker string, topN int) []model.SimilarityMatch {
	if topN <= 0 || len(corpus) == 0 {
		return nil
	}
	targetTicker = model.NormalizeTicker(targetTicker)

	// Deterministic corpus order so equal scores always tie-break the same way.
	tickers := make([]string, 0, len(corpus))
	for t := range corpus {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	targetText := targetDescription
	if text, ok := corpus[targetTicker]; ok {
		targetText = text
	}
	targetTF := termFreq(tokenize(targetText))
	if targetTF == nil {
		return nil
	}

	corpusTF := make([]map[string]float64, len(tickers))
	docs := make([]map[string]float64, 0, len(tickers)+1)
	for i, t := range tickers {
		corpusTF[i] = termFreq(tokenize(corpus[t]))
		docs = append(docs, corpusTF[i])
	}
	if _, inCorpus := corpus[targetTicker]; !inCorpus {
		docs = append(docs, targetTF)
	}

	idf := inverseDocFreq(documentFreq(docs), len(docs))
	targetVec := weigh(targetTF, idf)
	if targetVec == nil {
		return nil
	}

	matches := make([]model.SimilarityMatch, 0, len(tickers))
	for i, t := range tickers {
		if t == targetTicker {
			continue
		}
		matches = append(matches, model.SimilarityMatch{
			Ticker: t,
			Score:  dot(targetVec, weigh(corpusTF[i], idf)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}
