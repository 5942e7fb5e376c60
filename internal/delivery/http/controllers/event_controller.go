package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"daybook/internal/delivery/http/helpers"
	"daybook/internal/domain"
)

// EventController serves the calendar API: event CRUD, recurrence-aware
// edits and deletes, overlap checks, and series lookups.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// EventRequest is the request body for creating or updating an event.
type EventRequest struct {
	domain.Event
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "title is required")
	}
	if e.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if e.StartTime == "" {
		errs = append(errs, "startTime is required")
	}
	if e.EndTime == "" {
		errs = append(errs, "endTime is required")
	}
	if !e.Repeat.Type.Known() {
		errs = append(errs, "repeat.type must be one of none, daily, weekly, monthly, yearly")
	}
	if e.Repeat.Interval < 0 {
		errs = append(errs, "repeat.interval must not be negative")
	}
	if e.NotificationTime < 0 {
		errs = append(errs, "notificationTime must not be negative")
	}
	return errs
}

// EventListRequest is the request body for bulk event creation.
type EventListRequest struct {
	Events []*domain.Event `json:"events"`
}

// Validate implements Validator.
func (e EventListRequest) Validate() []string {
	if len(e.Events) == 0 {
		return []string{"events must not be empty"}
	}
	return nil
}

// SeriesUpdateRequest is the request body for PUT /api/recurring-events/{seriesID}.
type SeriesUpdateRequest struct {
	domain.SeriesUpdate
}

// Validate implements Validator. Absent fields are fine; present ones obey
// the same rules as event creation.
func (s SeriesUpdateRequest) Validate() []string {
	var errs []string
	if s.Title != nil && *s.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if s.NotificationTime != nil && *s.NotificationTime < 0 {
		errs = append(errs, "notificationTime must not be negative")
	}
	return errs
}

// EventsResponse is the data payload carrying a list of events.
type EventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// ApplyResponse is the data payload for edit and delete requests. Outcome
// is "applied" or "awaiting_choice"; Related is set when a choice is
// required; FailedEventIDs lists series batch members whose call failed.
type ApplyResponse struct {
	Outcome        string          `json:"outcome"`
	Related        []*domain.Event `json:"related,omitempty"`
	Events         []*domain.Event `json:"events,omitempty"`
	FailedEventIDs []string        `json:"failedEventIds,omitempty"`
}

func applyResponse(res *domain.ApplyResult) ApplyResponse {
	out := ApplyResponse{
		Outcome: "applied",
		Related: res.Related,
		Events:  res.Events,
	}
	if res.Outcome == domain.OutcomeAwaitingChoice {
		out.Outcome = "awaiting_choice"
	}
	if res.Batch != nil {
		for _, item := range res.Batch.Failed() {
			out.FailedEventIDs = append(out.FailedEventIDs, item.EventID)
		}
	}
	return out
}

// scopeChoice maps the scope query parameter to a series choice.
func scopeChoice(r *http.Request) (domain.SeriesChoice, bool) {
	switch r.URL.Query().Get("scope") {
	case "":
		return domain.ChoiceUnspecified, true
	case "single":
		return domain.ChoiceThisEvent, true
	case "series":
		return domain.ChoiceWholeSeries, true
	default:
		return domain.ChoiceUnspecified, false
	}
}

func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrFetchFailed):
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeFetchFailed, err.Error())
	case errors.Is(err, domain.ErrPersistFailed):
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodePersistFailed, err.Error())
	default:
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events, optionally filtered by a search term over title/description/location and restricted to the week or month containing the reference date.
// @Tags events
// @Produce json
// @Param search query string false "Search term"
// @Param view query string false "Calendar view" Enums(week, month)
// @Param date query string false "Reference date (YYYY-MM-DD), required when view is set"
// @Success 200 {object} helpers.APIResponse "data contains {events}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: fetch_failed"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	term := q.Get("search")
	view := domain.CalendarView(q.Get("view"))
	if view != domain.ViewAll && view != domain.ViewWeek && view != domain.ViewMonth {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "view must be week or month")
		return
	}

	var ref domain.Date
	if s := q.Get("date"); s != "" {
		parsed, err := domain.ParseDate(s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		ref = parsed
	} else if view != domain.ViewAll {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date is required when view is set")
		return
	}

	events, err := c.Service.SearchEvents(r.Context(), term, view, ref)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{Events: events})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. A recurring rule is expanded into all of its dated instances, each stamped with a shared series id; the created instances are returned.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains {events} with every created instance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	req.Event.ID = ""
	created, err := c.Service.CreateEvent(r.Context(), &req.Event)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventsResponse{Events: created})
}

// CreateEventList godoc
// @Summary Bulk-create events
// @Description Persists a pre-expanded list of events as given, in one transaction.
// @Tags events
// @Accept json
// @Produce json
// @Param events body EventListRequest true "Events to create"
// @Success 201 {object} helpers.APIResponse "data contains {events}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed"
// @Router /api/events-list [post]
func (c *EventController) CreateEventList(w http.ResponseWriter, r *http.Request) {
	var req EventListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.CreateEvents(r.Context(), req.Events)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventsResponse{Events: created})
}

// CheckOverlap godoc
// @Summary Check for overlapping events
// @Description Returns stored events whose time range intersects the candidate's. The candidate itself is excluded when it carries an id.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Candidate event"
// @Success 200 {object} helpers.APIResponse "data contains {events} that overlap"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: fetch_failed"
// @Router /api/events/overlap [post]
func (c *EventController) CheckOverlap(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	overlapping, err := c.Service.CheckOverlap(r.Context(), &req.Event)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if overlapping == nil {
		overlapping = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{Events: overlapping})
}

// GetSeries godoc
// @Summary List the series members of an event
// @Description Returns every instance belonging to the same recurring series as the event, the event itself included. Empty when the event does not recur or is the only member.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains {events}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: fetch_failed"
// @Router /api/events/{eventID}/series [get]
func (c *EventController) GetSeries(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	ref, err := c.Service.FindRelated(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	members := ref.Members
	if members == nil {
		members = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{Events: members})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies an edit. Without a scope, editing a multi-member series answers with outcome awaiting_choice and the related instances; scope=single detaches the instance from its series, scope=series updates the shared fields of every member.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param scope query string false "Edit scope" Enums(single, series)
// @Param event body EventRequest true "Updated event"
// @Success 200 {object} helpers.APIResponse "data contains the apply outcome and refreshed events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed or partial_series_failure"
// @Router /api/events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	choice, ok := scopeChoice(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "scope must be single or series")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	req.Event.ID = eventID

	res, err := c.Service.RequestEdit(r.Context(), &req.Event, choice)
	if err != nil {
		if errors.Is(err, domain.ErrPartialSeriesFailure) && res != nil {
			c.writePartialFailure(w, r, res, err)
			return
		}
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, applyResponse(res))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an instance or its whole series. Without a scope, deleting a multi-member series answers with outcome awaiting_choice; scope=single removes only this instance, scope=series removes every member.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Param scope query string false "Delete scope" Enums(single, series)
// @Success 200 {object} helpers.APIResponse "data contains the apply outcome and refreshed events"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed or partial_series_failure"
// @Router /api/events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	choice, ok := scopeChoice(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "scope must be single or series")
		return
	}

	res, err := c.Service.RequestDelete(r.Context(), eventID, choice)
	if err != nil {
		if errors.Is(err, domain.ErrPartialSeriesFailure) && res != nil {
			c.writePartialFailure(w, r, res, err)
			return
		}
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, applyResponse(res))
}

// UpdateSeries godoc
// @Summary Update a recurring series
// @Description Applies the shared-field payload to every instance of the series. Dates and times of individual instances are untouched.
// @Tags recurring-events
// @Accept json
// @Produce json
// @Param seriesID path string true "Series ID"
// @Param update body SeriesUpdateRequest true "Shared fields to update"
// @Success 200 {object} helpers.APIResponse "data contains {events} after the update"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed"
// @Router /api/recurring-events/{seriesID} [put]
func (c *EventController) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	seriesID := r.PathValue("seriesID")
	if seriesID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing seriesID")
		return
	}
	var req SeriesUpdateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	events, err := c.Service.UpdateSeries(r.Context(), seriesID, req.SeriesUpdate)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{Events: events})
}

// DeleteSeries godoc
// @Summary Delete a recurring series
// @Description Removes every instance of the series in one call.
// @Tags recurring-events
// @Produce json
// @Param seriesID path string true "Series ID"
// @Success 200 {object} helpers.APIResponse "data contains {events} after the delete"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: persist_failed"
// @Router /api/recurring-events/{seriesID} [delete]
func (c *EventController) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	seriesID := r.PathValue("seriesID")
	if seriesID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing seriesID")
		return
	}
	events, err := c.Service.DeleteSeries(r.Context(), seriesID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventsResponse{Events: events})
}

// writePartialFailure reports a series batch that only partly succeeded.
// The succeeded calls stay applied; the payload names the failed members
// and carries the refreshed pool so the client can reconcile.
func (c *EventController) writePartialFailure(w http.ResponseWriter, r *http.Request, res *domain.ApplyResult, err error) {
	c.Logger.ErrorContext(r.Context(), "series batch partially failed", "path", r.URL.Path, "err", err)
	helpers.WriteJSONPartial(w, http.StatusBadGateway, applyResponse(res), helpers.ErrCodePartialFailure, err.Error())
}
