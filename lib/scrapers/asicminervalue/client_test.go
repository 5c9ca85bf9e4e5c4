package asicminervalue

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"minerprofit-backend/lib/chrono"

	"github.com/stretchr/testify/require"
)

func listingPage(models ...string) string {
	var rows strings.Builder
	for i, model := range models {
		fmt.Fprintf(
			&rows,
			"<tr><td>Bitmain %s (%d Th)</td><td>3500W</td><td>SHA-256</td><td>$%d.50 /day</td></tr>\n",
			model, 100+i, i+1,
		)
	}
	return fmt.Sprintf("<html><body><table>%s</table></body></html>", rows.String())
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchMiners(t *testing.T) {
	page := listingPage("Antminer A1", "Antminer A2", "Antminer A3", "Antminer A4", "Antminer A5")
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(page))
	})

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	client := NewClient(ClientOptions{
		BaseUrl: srv.URL,
		Clock:   chrono.NewFakeClock(now),
	})

	records, err := client.FetchMiners(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 5)
	require.Equal(t, "Bitmain Antminer A1", records[0].Name)
	require.Equal(t, 1.5, records[0].DailyProfitUsd)
	require.Equal(t, "104 Th/s", records[4].Hashrate)
	for _, r := range records {
		require.Equal(t, now, r.FetchedAt)
	}
}

func TestFetchMinersTooFew(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage("Antminer A1", "Antminer A2")))
	})

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	_, err := client.FetchMiners(context.Background())
	require.ErrorIs(t, err, ErrTooFewRecords)
}

func TestFetchMinersErrorStatus(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	_, err := client.FetchMiners(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrTooFewRecords)
}

func TestFetchMinersTimeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	client := NewClient(ClientOptions{BaseUrl: srv.URL, Timeout: 20 * time.Millisecond})
	_, err := client.FetchMiners(context.Background())
	require.Error(t, err)
}

func TestFetchIncome(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/miners/bitmain/antminer-s21-pro" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body><div>Income</div><div>$ 11.42</div><div>/day</div></body></html>`))
	})

	client := NewClient(ClientOptions{BaseUrl: srv.URL})
	income, err := client.FetchIncome(context.Background(), "/miners/bitmain/antminer-s21-pro")
	require.NoError(t, err)
	require.Equal(t, 11.42, income)
}

func TestParseIncome(t *testing.T) {
	income, err := ParseIncome("Profit $3.00 Income $10.25 Electricity $2.00")
	require.NoError(t, err)
	require.Equal(t, 10.25, income)

	_, err = ParseIncome("no figures here")
	require.ErrorIs(t, err, ErrIncomeNotFound)

	_, err = ParseIncome("Income $5,000")
	require.ErrorIs(t, err, ErrIncomeNotFound)
}
