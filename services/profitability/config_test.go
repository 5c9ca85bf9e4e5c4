package profitability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	configlibsql "minerprofit-backend/lib/configutil/libsql"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	require.Equal(t, 24*time.Hour, cfg.TTL())
	require.Equal(t, 30*time.Second, cfg.Timeout())

	cfg.Cache.TtlHours = 1
	cfg.Source.TimeoutSeconds = 10
	require.Equal(t, time.Hour, cfg.TTL())
	require.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestBuildWithFileStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := Config{
		Source: SourceConfig{BaseUrl: srv.URL, TimeoutSeconds: 5},
		Store:  configlibsql.Struct{File: filepath.Join(t.TempDir(), "profits.db")},
	}
	components, err := Build(context.Background(), cfg, BuildOptions{})
	require.NoError(t, err)
	defer components.Close()
	require.NotNil(t, components.Persistent)

	snapshot, err := components.Store.GetAll(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, TierFallback, snapshot.Source)

	record, err := components.Resolver.ResolveProfit(context.Background(), "Antminer S21 Pro 234 TH", false)
	require.NoError(t, err)
	require.Equal(t, 2.45, record.DailyProfitUsd)
}
