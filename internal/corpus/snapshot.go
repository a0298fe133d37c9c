package corpus

import "StockScope/internal/model"

// SnapshotStore persists the description corpus across process restarts.
// It is a warm-start cache, never authoritative: Load on a missing or
// unreadable snapshot yields an empty corpus, not an error.
type SnapshotStore interface {
	Load() model.DescriptionCorpus
	Save(corpus model.DescriptionCorpus) error
	Close() error
}

// NoopStore is used when no snapshot path is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Load() model.DescriptionCorpus        { return model.DescriptionCorpus{} }
func (n *NoopStore) Save(_ model.DescriptionCorpus) error { return nil }
func (n *NoopStore) Close() error                         { return nil }
