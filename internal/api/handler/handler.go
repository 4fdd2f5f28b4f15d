// Package handler provides HTTP handlers for all API endpoints.
// Each product request does one fresh pass over the content store and the
// normalizer; the response cache is opt-in.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ptpsports/clinic-facts/internal/api/respond"
	"github.com/ptpsports/clinic-facts/internal/cache"
	"github.com/ptpsports/clinic-facts/internal/config"
	"github.com/ptpsports/clinic-facts/internal/eventfacts"
	"github.com/ptpsports/clinic-facts/internal/metrics"
	"github.com/ptpsports/clinic-facts/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store      store.Store
	normalizer *eventfacts.Normalizer
	cache      *cache.Cache
	metrics    *metrics.Metrics
	cfg        *config.Config
	logger     *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(st store.Store, c *cache.Cache, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		store:      st,
		normalizer: eventfacts.New(cfg.Location(), cfg.Profile).WithCurrency(cfg.Currency),
		cache:      c,
		metrics:    m,
		cfg:        cfg,
		logger:     logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":     "Clinic Facts API",
		"version":  "1.0.0",
		"status":   "running",
		"docs":     "/docs",
		"timezone": h.normalizer.Location().String(),
		"sport":    h.normalizer.Profile().Sport,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies content store connectivity.
// @Summary Content store health check
// @Description Verifies the content store is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("Content store health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns response cache statistics (enabled flag, active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Shared helpers
// --------------------------------------------------------------------------

// productID parses the {productID} URL parameter, writing a 400 on failure.
func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Product ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// resolver returns a Resolver whose store failures are logged and counted.
func (h *Handler) resolver() *eventfacts.Resolver {
	res := eventfacts.NewResolver(h.store)
	res.OnError = func(productID int64, name string, err error) {
		h.logger.Warn("Field resolution failed", "product_id", productID, "field", name, "error", err)
		h.metrics.FieldError(name)
	}
	return res
}

// loadInput reads the listing and resolves every field. It writes the error
// response itself and returns ok=false when the product cannot be loaded.
func (h *Handler) loadInput(ctx context.Context, w http.ResponseWriter, id int64) (eventfacts.Input, bool) {
	listing, err := h.store.Listing(ctx, id)
	if err != nil {
		h.writeStoreError(w, id, err)
		return eventfacts.Input{}, false
	}
	return h.resolver().Input(ctx, listing), true
}

// ensureProduct writes a 404/503 and returns false when id does not load.
func (h *Handler) ensureProduct(ctx context.Context, w http.ResponseWriter, id int64) bool {
	if _, err := h.store.Listing(ctx, id); err != nil {
		h.writeStoreError(w, id, err)
		return false
	}
	return true
}

func (h *Handler) writeStoreError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Product "+strconv.FormatInt(id, 10)+" not found")
		return
	}
	h.logger.Error("Content store request failed", "product_id", id, "error", err)
	respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Content store unavailable")
}

// cacheKey namespaces entries by product so writes can invalidate them.
func cacheKey(id int64, kind string) string {
	return strconv.FormatInt(id, 10) + ":" + kind
}

// serveCached answers from the cache when possible. It reports true when
// the response was written.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key, contentType string) bool {
	data, etag, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return true
	}
	respond.WriteBytes(w, contentType, data, etag, h.ttl(), true)
	return true
}

// writeFresh stores data (when caching is on) and writes it.
func (h *Handler) writeFresh(w http.ResponseWriter, r *http.Request, key, contentType string, data []byte) {
	etag := h.cache.Set(key, data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteBytes(w, contentType, data, etag, h.ttl(), false)
}

func (h *Handler) ttl() time.Duration {
	if !h.cache.Enabled() {
		return 0
	}
	return h.cache.TTL()
}

func (h *Handler) invalidate(id int64) {
	if n := h.cache.InvalidatePrefix(strconv.FormatInt(id, 10) + ":"); n > 0 {
		h.logger.Debug("Cache invalidated", "product_id", id, "keys", n)
	}
}
