package restyutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClientDumpsExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.Write([]byte("miner list"))
	}))
	defer srv.Close()

	output := NewMemoryOutput()
	client := resty.New()
	InstrumentClient(client, output)

	res, err := client.R().Get(srv.URL + "/miners")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())

	require.Equal(t, 1, output.Len())
	dump, ok := output.Get("1")
	require.True(t, ok)
	require.Contains(t, dump, "GET "+srv.URL+"/miners")
	require.Contains(t, dump, "X-Test: yes")
	require.True(t, strings.HasSuffix(dump, "miner list"))
}

func TestInstrumentClientNilOutput(t *testing.T) {
	client := resty.New()
	InstrumentClient(client, nil)
}
