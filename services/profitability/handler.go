package profitability

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"minerprofit-backend/lib/matcher"
	"minerprofit-backend/lib/scrapers/asicminervalue"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxAvailableMiners caps the name sample in a 404 body.
const maxAvailableMiners = 20

type Handler struct {
	store    *Store
	resolver *Resolver
}

func NewHandler(store *Store, resolver *Resolver) *Handler {
	return &Handler{store: store, resolver: resolver}
}

type RouterOptions struct {
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
	// RequestTimeout bounds every request, it defaults to a minute.
	RequestTimeout time.Duration
}

// NewRouter mounts the handler's routes with the standard middleware stack.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = time.Minute
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(loggingMiddleware)
	router.Use(middleware.Timeout(opts.RequestTimeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", h.HandleHealth)
	router.Get("/profitability", h.HandleProfitability)
	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.DebugContext(
			r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type matchResponse struct {
	asicminervalue.MinerRecord
	Source     Tier      `json:"source"`
	MatchedFor string    `json:"matchedFor"`
	Score      float64   `json:"score"`
	Earnings   *Earnings `json:"earnings,omitempty"`
}

type notFoundResponse struct {
	Error           string   `json:"error"`
	SearchedFor     string   `json:"searchedFor"`
	AvailableMiners []string `json:"availableMiners"`
}

type listResponse struct {
	Miners      []asicminervalue.MinerRecord `json:"miners"`
	Source      Tier                         `json:"source"`
	Count       int                          `json:"count"`
	LastUpdated time.Time                    `json:"lastUpdated"`
}

type cacheFallbackResponse struct {
	Miners []asicminervalue.MinerRecord `json:"miners"`
	Source string                       `json:"source"`
	Error  string                       `json:"error"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleProfitability serves GET /profitability. With a `model` (or
// `name`) it resolves a single miner, without one it lists every miner.
func (h *Handler) HandleProfitability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	model := query.Get("model")
	if model == "" {
		model = query.Get("name")
	}
	refresh, _ := strconv.ParseBool(query.Get("refresh"))

	var pricePerKwh *float64
	if raw := query.Get("electricity"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid electricity price",
				Details: raw,
			})
			return
		}
		pricePerKwh = &price
	}

	if model == "" {
		h.list(w, r, refresh)
		return
	}
	h.resolve(w, r, model, refresh, pricePerKwh)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, model string, refresh bool, pricePerKwh *float64) {
	res, err := h.resolver.Resolve(r.Context(), model, refresh)
	if err != nil {
		h.failed(w, r, err)
		return
	}

	if !res.Matched {
		names := make([]string, len(res.Snapshot.Miners))
		for i, m := range res.Snapshot.Miners {
			names[i] = m.Name
		}
		writeJSON(w, http.StatusNotFound, notFoundResponse{
			Error:           "no matching miner found",
			SearchedFor:     model,
			AvailableMiners: matcher.RankNames(model, names, maxAvailableMiners),
		})
		return
	}

	body := matchResponse{
		MinerRecord: res.Record,
		Source:      res.Snapshot.Source,
		MatchedFor:  model,
		Score:       res.Score,
	}
	if pricePerKwh != nil {
		earnings := ProjectEarnings(res.Record.DailyProfitUsd, res.Record.PowerWatts(), *pricePerKwh)
		body.Earnings = &earnings
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, refresh bool) {
	snapshot, err := h.store.GetAll(r.Context(), refresh)
	if err != nil {
		h.failed(w, r, err)
		return
	}

	miners := make([]asicminervalue.MinerRecord, 0, len(snapshot.Miners))
	for _, m := range snapshot.Miners {
		if m.DailyProfitUsd > 0 {
			miners = append(miners, m)
		}
	}
	lastUpdated := snapshot.FetchedAt
	if len(miners) > 0 && !miners[0].FetchedAt.IsZero() {
		lastUpdated = miners[0].FetchedAt
	}

	writeJSON(w, http.StatusOK, listResponse{
		Miners:      miners,
		Source:      snapshot.Source,
		Count:       len(miners),
		LastUpdated: lastUpdated,
	})
}

func (h *Handler) failed(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "profitability request failed", "err", err)

	cached, ok := h.store.Cached()
	if ok {
		writeJSON(w, http.StatusInternalServerError, cacheFallbackResponse{
			Miners: cached.Miners,
			Source: "cache-fallback",
			Error:  "fresh fetch failed",
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "failed to load miner profits",
		Details: err.Error(),
	})
}
