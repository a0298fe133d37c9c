package gateway

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Some public sources reject requests without a browser-like User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Gateway wraps the market-data provider and the index-membership source,
// normalizing their response shapes and caching results per request key.
type Gateway struct {
	BaseURL       string
	MembershipURL string
	Client        *http.Client

	PriceTTL        time.Duration
	FundamentalsTTL time.Duration
	MembershipTTL   time.Duration

	cache *ttlCache
}

// NewGateway creates a Gateway with optional proxy support.
func NewGateway(baseURL, membershipURL, proxyURL string) *Gateway {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Gateway{
		BaseURL:       baseURL,
		MembershipURL: membershipURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		PriceTTL:        TTLPrices,
		FundamentalsTTL: TTLFundamentals,
		MembershipTTL:   TTLMembership,
		cache:           newTTLCache(),
	}
}

// SweepCache drops expired cache entries and returns how many were removed.
func (g *Gateway) SweepCache() int {
	return g.cache.sweep()
}

// CacheSize reports the number of live cache entries.
func (g *Gateway) CacheSize() int {
	return g.cache.len()
}

// getBody performs a GET with the client identification header and returns
// the response body. Transport failures and non-200 statuses come back as
// *FetchError.
func (g *Gateway) getBody(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: endpoint, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return body, nil
}
