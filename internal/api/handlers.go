package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"StockScope/internal/calculator"
	"StockScope/internal/corpus"
	"StockScope/internal/gateway"
	"StockScope/internal/model"
	"StockScope/internal/similarity"
)

const defaultTopN = 10

// Handlers wires the core services behind the JSON endpoints. The corpus is
// session state: built on demand, warm-started from the snapshot store.
type Handlers struct {
	Gateway *gateway.Gateway
	Builder *corpus.Builder
	Store   corpus.SnapshotStore

	FastPrefixSize int

	mu     sync.Mutex
	corpus model.DescriptionCorpus
}

// NewHandlers creates the handler set, warm-starting the description corpus
// from the snapshot store.
func NewHandlers(gw *gateway.Gateway, builder *corpus.Builder, store corpus.SnapshotStore, fastPrefixSize int) *Handlers {
	warm := store.Load()
	if len(warm) > 0 {
		log.Printf("[INFO] corpus warm-started with %d descriptions", len(warm))
	}
	return &Handlers{
		Gateway:        gw,
		Builder:        builder,
		Store:          store,
		FastPrefixSize: fastPrefixSize,
		corpus:         warm,
	}
}

func (h *Handlers) corpusCopy() model.DescriptionCorpus {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(model.DescriptionCorpus, len(h.corpus))
	for t, d := range h.corpus {
		out[t] = d
	}
	return out
}

// HealthCheck reports liveness and cache occupancy.
func (h *Handlers) HealthCheck(c *gin.Context) {
	h.mu.Lock()
	corpusSize := len(h.corpus)
	h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"cache_size":  h.Gateway.CacheSize(),
		"corpus_size": corpusSize,
	})
}

// failureStatus maps the gateway/calculator error taxonomy onto HTTP codes.
func failureStatus(err error) int {
	var noData *gateway.NoDataError
	var missingField *gateway.MissingFieldError
	var schema *gateway.SchemaError
	var fetch *gateway.FetchError
	switch {
	case errors.As(err, &noData):
		return http.StatusNotFound
	case errors.As(err, &missingField):
		return http.StatusBadGateway
	case errors.As(err, &schema):
		return http.StatusBadGateway
	case errors.As(err, &fetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, ticker string, err error) {
	c.JSON(failureStatus(err), gin.H{
		"ticker": ticker,
		"error":  err.Error(),
	})
}

func parseRange(c *gin.Context) (start, end time.Time, err error) {
	end = time.Now().Truncate(24 * time.Hour)
	start = end.AddDate(-1, 0, 0)
	if v := c.Query("start"); v != "" {
		if start, err = time.Parse("2006-01-02", v); err != nil {
			return start, end, fmt.Errorf("invalid start date %q", v)
		}
	}
	if v := c.Query("end"); v != "" {
		if end, err = time.Parse("2006-01-02", v); err != nil {
			return start, end, fmt.Errorf("invalid end date %q", v)
		}
	}
	return start, end, nil
}

func requireTicker(c *gin.Context) (string, bool) {
	ticker := model.NormalizeTicker(c.Query("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticker parameter is required"})
		return "", false
	}
	return ticker, true
}

// GetPrices returns the normalized daily price series for a ticker.
func (h *Handlers) GetPrices(c *gin.Context) {
	ticker, ok := requireTicker(c)
	if !ok {
		return
	}
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ticker": ticker, "error": err.Error()})
		return
	}
	series, err := h.Gateway.FetchPriceSeries(ticker, start, end)
	if err != nil {
		fail(c, ticker, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetGrowth returns the derived daily EPS / P/E series for a ticker.
func (h *Handlers) GetGrowth(c *gin.Context) {
	ticker, ok := requireTicker(c)
	if !ok {
		return
	}
	start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ticker": ticker, "error": err.Error()})
		return
	}

	prices, err := h.Gateway.FetchPriceSeries(ticker, start, end)
	if err != nil {
		fail(c, ticker, err)
		return
	}
	income, err := h.Gateway.FetchIncomeStatement(ticker)
	if err != nil {
		fail(c, ticker, err)
		return
	}
	var shares *float64
	if snap, ok := h.Gateway.FetchFundamentals(ticker); ok {
		shares = snap.SharesOutstanding
	}

	series, err := calculator.ComputeGrowthSeries(prices, income, shares)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ticker": ticker, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetFundamentals returns the best-effort fundamentals snapshot.
func (h *Handlers) GetFundamentals(c *gin.Context) {
	ticker, ok := requireTicker(c)
	if !ok {
		return
	}
	snap, ok := h.Gateway.FetchFundamentals(ticker)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"ticker": ticker,
			"error":  fmt.Sprintf("fundamentals unavailable for %s", ticker),
		})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetMembership returns the index member ticker list.
func (h *Handlers) GetMembership(c *gin.Context) {
	tickers, err := h.Gateway.FetchIndexMembership()
	if err != nil {
		fail(c, "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickers": tickers, "count": len(tickers)})
}

type buildRequest struct {
	Mode string `json:"mode"`
}

// BuildCorpus fetches descriptions for the index universe and replaces the
// session corpus. mode "fast" covers a bounded prefix of the universe;
// "complete" covers all of it.
func (h *Handlers) BuildCorpus(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Mode != "fast" && req.Mode != "complete") {
		c.JSON(http.StatusBadRequest, gin.H{"error": `mode must be "fast" or "complete"`})
		return
	}

	tickers, err := h.Gateway.FetchIndexMembership()
	if err != nil {
		fail(c, "", err)
		return
	}
	if req.Mode == "fast" && len(tickers) > h.FastPrefixSize {
		tickers = tickers[:h.FastPrefixSize]
	}

	built, report := h.Builder.Build(tickers, func(completed, total int, ticker string) {
		if completed%50 == 0 || completed == total {
			log.Printf("[INFO] corpus build %d/%d (%s)", completed, total, ticker)
		}
	})

	h.mu.Lock()
	h.corpus = built
	h.mu.Unlock()

	if err := h.Store.Save(built); err != nil {
		log.Printf("[WARN] save corpus snapshot: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"corpus_size": len(built),
		"report":      report,
	})
}

// peersFor resolves the target description and ranks the session corpus.
func (h *Handlers) peersFor(ticker string, topN int) []model.SimilarityMatch {
	var description string
	if snap, ok := h.Gateway.FetchFundamentals(ticker); ok {
		description = snap.Description()
	}
	return similarity.Rank(description, h.corpusCopy(), ticker, topN)
}

func parseTopN(c *gin.Context) int {
	topN := defaultTopN
	if v := c.Query("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}
	return topN
}

// GetPeers returns the ranked peer list for a ticker. An empty list means
// the corpus has not been built or the ticker has no usable description.
func (h *Handlers) GetPeers(c *gin.Context) {
	ticker, ok := requireTicker(c)
	if !ok {
		return
	}
	peers := h.peersFor(ticker, parseTopN(c))
	c.JSON(http.StatusOK, gin.H{"ticker": ticker, "peers": peers})
}

// Compare returns comparison metric rows for a ticker and its ranked peers.
// A ticker with incomplete fundamentals is reported as skipped; it never
// aborts the rest of the batch.
func (h *Handlers) Compare(c *gin.Context) {
	ticker, ok := requireTicker(c)
	if !ok {
		return
	}
	peers := h.peersFor(ticker, parseTopN(c))

	tickers := make([]string, 0, len(peers)+1)
	tickers = append(tickers, ticker)
	for _, p := range peers {
		tickers = append(tickers, p.Ticker)
	}

	rows := make([]model.ComparisonRow, 0, len(tickers))
	var skipped []string
	for _, t := range tickers {
		snap, ok := h.Gateway.FetchFundamentals(t)
		if !ok {
			skipped = append(skipped, t)
			continue
		}
		row, ok := calculator.ComputeComparisonRow(snap)
		if !ok {
			skipped = append(skipped, t)
			continue
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"ticker":  ticker,
		"peers":   peers,
		"rows":    rows,
		"skipped": skipped,
	})
}
