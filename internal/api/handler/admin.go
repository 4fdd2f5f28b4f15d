package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ptpsports/clinic-facts/internal/api/respond"
	"github.com/ptpsports/clinic-facts/internal/eventfacts"
	"github.com/ptpsports/clinic-facts/internal/store"
)

// maxAdminBody bounds admin request bodies.
const maxAdminBody = 64 << 10

// PutLocation updates the location box metadata for a product.
// @Summary Update location
// @Description Writes venue, address, city, state, zip, parking info, and map fields. Omitted fields are left unchanged; text is stripped of markup.
// @Tags admin
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param body body store.LocationUpdate true "Location fields"
// @Success 200 {object} eventfacts.LocationDetails
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/location [put]
func (h *Handler) PutLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var u store.LocationUpdate
	if !decodeBody(w, r, &u) {
		return
	}
	if err := store.ApplyLocation(r.Context(), h.store, id, u); err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.afterWrite(id, "location")
	respond.WriteJSONObject(w, http.StatusOK, eventfacts.BuildLocation(h.resolver().Location(r.Context(), id)))
}

type scheduleBody struct {
	Items []eventfacts.ScheduleItem `json:"items"`
}

// PutSchedule replaces the agenda for a product.
// @Summary Replace schedule
// @Description Stores the agenda rows; rows with neither time nor activity are dropped.
// @Tags admin
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param body body scheduleBody true "Agenda rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/schedule [put]
func (h *Handler) PutSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var body scheduleBody
	if !decodeBody(w, r, &body) {
		return
	}
	saved, err := store.SetSchedule(r.Context(), h.store, id, body.Items)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.afterWrite(id, "schedule")
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"items": saved,
	})
}

type safetyBody struct {
	Reminders string `json:"reminders"`
}

// PutSafety stores the safety reminders text for a product.
// @Summary Update safety reminders
// @Description Stores reminder text; markup is limited to safe inline elements.
// @Tags admin
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param body body safetyBody true "Reminder text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /products/{productID}/safety [put]
func (h *Handler) PutSafety(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}
	var body safetyBody
	if !decodeBody(w, r, &body) {
		return
	}
	saved, err := store.SetSafetyReminders(r.Context(), h.store, id, body.Reminders)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	h.afterWrite(id, "safety")
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"reminders": saved,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdminBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON", err.Error())
		return false
	}
	return true
}

func (h *Handler) afterWrite(id int64, section string) {
	h.metrics.AdminWrite(section)
	h.invalidate(id)
	h.logger.Info("Product metadata updated", "product_id", id, "section", section)
}
