package model

// SimilarityMatch is one ranked peer with its cosine similarity score.
type SimilarityMatch struct {
	Ticker string  `json:"ticker"`
	Score  float64 `json:"score"`
}

// DescriptionCorpus maps ticker symbols to business-description text.
// A ticker is either present with non-empty text or absent; the cache does
// not distinguish never-attempted, fetched-empty, and fetch-failed entries.
// The corpus BuildReport records that distinction at build time.
type DescriptionCorpus map[string]string
