package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membershipPage = `<html><body>
<table>
	<tr><th>Rank</th><th>Name</th></tr>
	<tr><td>1</td><td>Not the right table</td></tr>
</table>
<table>
	<tr><th>Symbol</th><th>Security</th></tr>
	<tr><td>aapl</td><td>Apple Inc.</td></tr>
	<tr><td>MSFT</td><td>Microsoft</td></tr>
	<tr><td>AAPL</td><td>Apple duplicate row</td></tr>
	<tr><td>NVDA</td><td>NVIDIA</td></tr>
</table>
</body></html>`

func TestFetchIndexMembership(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(membershipPage))
	}))
	defer srv.Close()

	gw := newTestGateway("", srv.URL)
	tickers, err := gw.FetchIndexMembership()
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, tickers)
	assert.Contains(t, gotUA, "Mozilla", "membership source rejects requests without a browser-like User-Agent")
}

func TestFetchIndexMembership_Cached(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(membershipPage))
	}))
	defer srv.Close()

	gw := newTestGateway("", srv.URL)
	_, err := gw.FetchIndexMembership()
	require.NoError(t, err)
	_, err = gw.FetchIndexMembership()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchIndexMembership_NoSymbolColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><body><table><tr><th>Name</th></tr><tr><td>Apple</td></tr></table></body></html>`))
	}))
	defer srv.Close()

	_, err := newTestGateway("", srv.URL).FetchIndexMembership()
	var schema *SchemaError
	require.ErrorAs(t, err, &schema)
}

func TestFetchIndexMembership_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestGateway("", srv.URL).FetchIndexMembership()
	var fetch *FetchError
	require.ErrorAs(t, err, &fetch)
}
