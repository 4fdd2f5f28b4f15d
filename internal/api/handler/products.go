package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/ptpsports/clinic-facts/internal/api/respond"
	"github.com/ptpsports/clinic-facts/internal/eventfacts"
	"github.com/ptpsports/clinic-facts/internal/render"
	"github.com/ptpsports/clinic-facts/internal/store"
)

// ListProducts returns every product ID in the content store.
// @Summary List products
// @Description Returns the IDs of all products in the content store.
// @Tags products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} respond.ErrorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ids, err := h.store.ListingIDs(r.Context())
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Content store unavailable")
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"products": ids,
		"count":    len(ids),
	})
}

// GetFacts returns the normalized event facts for a product.
// @Summary Get event facts
// @Description Returns display date/time, ISO start/end, location line, full address, availability, and the SportsEvent record (null when no start date resolves).
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} eventfacts.Facts
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/facts [get]
func (h *Handler) GetFacts(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	key := cacheKey(id, "facts")
	if h.serveCached(w, r, key, "application/json") {
		return
	}
	in, ok := h.loadInput(r.Context(), w, id)
	if !ok {
		return
	}

	facts := h.normalizer.Normalize(in)
	h.metrics.Render("facts")
	if facts.StructuredEvent == nil {
		h.metrics.Suppressed()
	}

	data, err := json.Marshal(facts)
	if err != nil {
		h.logger.Error("Encode facts failed", "product_id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Could not encode facts")
		return
	}
	h.writeFresh(w, r, key, "application/json", data)
}

// GetEvent returns the JSON-LD SportsEvent document for a product.
// @Summary Get structured data
// @Description Returns the schema.org SportsEvent JSON-LD document. Responds 204 when the start date does not resolve, since no record is emitted in that case.
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} eventfacts.EventRecord
// @Success 204 "No structured data for this product"
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/event [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	key := cacheKey(id, "event")
	if h.serveCached(w, r, key, render.ContentTypeJSONLD) {
		return
	}
	in, ok := h.loadInput(r.Context(), w, id)
	if !ok {
		return
	}

	rec := h.normalizer.BuildEventRecord(in)
	h.metrics.Render("event")
	if rec == nil {
		h.metrics.Suppressed()
		respond.WriteNoContent(w)
		return
	}
	data, err := render.JSONLD(rec)
	if err != nil {
		h.logger.Error("Encode event record failed", "product_id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "Could not encode event record")
		return
	}
	h.writeFresh(w, r, key, render.ContentTypeJSONLD, data)
}

// GetMeta returns the SEO and Open Graph strings for a product.
// @Summary Get page meta
// @Description Returns the page title, meta description, Open Graph title/description, and location keywords.
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} eventfacts.PageMeta
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/meta [get]
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	in, ok := h.loadInput(r.Context(), w, id)
	if !ok {
		return
	}
	h.metrics.Render("meta")
	respond.WriteJSONObject(w, http.StatusOK, h.normalizer.PageMeta(in))
}

// GetHead returns the rendered <head> fragment for a product page.
// @Summary Get head fragment
// @Description Returns the HTML meta tags followed by the JSON-LD script element (omitted when no start date resolves).
// @Tags products
// @Produce html
// @Param productID path int true "Product ID"
// @Success 200 {string} string
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/head [get]
func (h *Handler) GetHead(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	key := cacheKey(id, "head")
	const contentType = "text/html; charset=utf-8"
	if h.serveCached(w, r, key, contentType) {
		return
	}
	in, ok := h.loadInput(r.Context(), w, id)
	if !ok {
		return
	}

	rec := h.normalizer.BuildEventRecord(in)
	h.metrics.Render("head")
	if rec == nil {
		h.metrics.Suppressed()
	}

	var buf bytes.Buffer
	if err := render.Head(&buf, h.normalizer.PageMeta(in), rec); err != nil {
		h.logger.Error("Render head failed", "product_id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "RENDER_FAILED", "Could not render head")
		return
	}
	h.writeFresh(w, r, key, contentType, buf.Bytes())
}

// GetLocation returns the location tab content for a product.
// @Summary Get location details
// @Description Returns venue (defaulted), location line, full address, parking info, and map URLs.
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} eventfacts.LocationDetails
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/location [get]
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	if !h.ensureProduct(r.Context(), w, id) {
		return
	}
	h.metrics.Render("location")
	respond.WriteJSONObject(w, http.StatusOK, eventfacts.BuildLocation(h.resolver().Location(r.Context(), id)))
}

// GetSchedule returns the clinic agenda for a product.
// @Summary Get schedule
// @Description Returns the stored agenda rows, or the default clinic agenda when none are stored.
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	if !h.ensureProduct(r.Context(), w, id) {
		return
	}
	items, err := store.Schedule(r.Context(), h.store, id)
	if err != nil {
		h.logger.Warn("Schedule read failed", "product_id", id, "error", err)
	}
	h.metrics.Render("schedule")
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"items":     eventfacts.ScheduleOrDefault(items),
		"isDefault": len(eventfacts.CleanSchedule(items)) == 0,
	})
}

// GetSafety returns the custom safety reminders for a product.
// @Summary Get safety reminders
// @Description Returns the stored safety reminder text (may contain simple markup).
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/safety [get]
func (h *Handler) GetSafety(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	if !h.ensureProduct(r.Context(), w, id) {
		return
	}
	h.metrics.Render("safety")
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"reminders": h.resolver().Meta(r.Context(), id, eventfacts.MetaSafetyReminders),
	})
}
