package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/snapshelf/orderdesk/internal/auth"
	"github.com/snapshelf/orderdesk/internal/query"
	"github.com/snapshelf/orderdesk/internal/session"
	"github.com/snapshelf/orderdesk/internal/stats"
	"github.com/snapshelf/orderdesk/internal/store"
	"github.com/snapshelf/orderdesk/internal/types"
)

type HandlerSet struct {
	orders     *store.Store
	gate       *session.Gate
	aggregator *stats.Aggregator
}

var (
	ErrCouldNotParseBody = errors.New("could not parse body")
	ErrLoginDataEmpty    = errors.New("email or password cannot be empty")
)

func NewHandlerSet(orders *store.Store, gate *session.Gate, aggregator *stats.Aggregator) *HandlerSet {
	return &HandlerSet{
		orders:     orders,
		gate:       gate,
		aggregator: aggregator,
	}
}

func (h *HandlerSet) parseLoginData(body []byte) (email string, password string, err error) {

	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		return "", "", ErrCouldNotParseBody
	}

	if data.Email == "" || data.Password == "" {
		return "", "", ErrLoginDataEmpty
	}

	return data.Email, data.Password, nil
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return
	}

	email, password, err := h.parseLoginData(body)
	if err != nil {
		if errors.Is(err, ErrCouldNotParseBody) {
			http.Error(w, "Could not parse body", http.StatusBadRequest)
		} else {
			http.Error(w, "Email and password cannot be empty", http.StatusBadRequest)
		}
		return
	}

	user, token, err := h.gate.Login(email, password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	auth.SetAuthCookie(token, w, h.gate.TTLSeconds())

	h.writeJSON(w, struct {
		User  *session.User `json:"user"`
		Token string        `json:"token"`
	}{User: user, Token: token})
}

func (h *HandlerSet) HandleRefresh(w http.ResponseWriter, req *http.Request) {

	token, err := auth.TokenFromRequest(req)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	user, fresh, err := h.gate.Refresh(token)
	if err != nil {
		auth.ClearAuthCookie(w)
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	auth.SetAuthCookie(fresh, w, h.gate.TTLSeconds())

	h.writeJSON(w, struct {
		User  *session.User `json:"user"`
		Token string        `json:"token"`
	}{User: user, Token: fresh})
}

func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersView) {
		return
	}

	filters, err := parseFilters(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders := query.Apply(h.orders.List(), filters)
	h.writeJSON(w, orders)
}

func (h *HandlerSet) HandleGetStats(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermStatsView) {
		return
	}

	filters, err := parseFilters(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := h.aggregator.Summarize(query.Apply(h.orders.List(), filters))
	h.writeJSON(w, summary)
}

func (h *HandlerSet) HandleGetCatalog(w http.ResponseWriter, req *http.Request) {

	h.writeJSON(w, struct {
		Statuses   []types.CatalogEntry `json:"statuses"`
		Priorities []types.CatalogEntry `json:"priorities"`
	}{Statuses: types.StatusCatalog, Priorities: types.PriorityCatalog})
}

func (h *HandlerSet) HandleGetTeam(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermTeamView) {
		return
	}

	h.writeJSON(w, h.orders.Roster())
}

func (h *HandlerSet) HandleUpdateStatus(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersEdit) {
		return
	}

	var data struct {
		Status types.Status `json:"status"`
		Note   string       `json:"note"`
	}
	if !h.parseBody(w, req, &data) {
		return
	}

	order, err := h.orders.UpdateStatus(chi.URLParam(req, "orderID"), data.Status, data.Note)
	if err != nil {
		h.handleStoreError(err, w)
		return
	}
	h.writeJSON(w, order)
}

func (h *HandlerSet) HandleUpdatePriority(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersEdit) {
		return
	}

	var data struct {
		Priority types.Priority `json:"priority"`
	}
	if !h.parseBody(w, req, &data) {
		return
	}

	order, err := h.orders.UpdatePriority(chi.URLParam(req, "orderID"), data.Priority)
	if err != nil {
		h.handleStoreError(err, w)
		return
	}
	h.writeJSON(w, order)
}

func (h *HandlerSet) HandleAssign(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersAssign) {
		return
	}

	var data struct {
		AssignedTo string `json:"assigned_to"`
	}
	if !h.parseBody(w, req, &data) {
		return
	}

	order, err := h.orders.Assign(chi.URLParam(req, "orderID"), data.AssignedTo)
	if err != nil {
		h.handleStoreError(err, w)
		return
	}
	h.writeJSON(w, order)
}

func (h *HandlerSet) HandleCancel(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersCancel) {
		return
	}

	var data struct {
		Reason string `json:"reason"`
	}
	if !h.parseBody(w, req, &data) {
		return
	}

	order, err := h.orders.Cancel(chi.URLParam(req, "orderID"), data.Reason)
	if err != nil {
		h.handleStoreError(err, w)
		return
	}
	h.writeJSON(w, order)
}

// HandleBulkUpdate always answers 200; per-item failures sit inside the
// result list and never abort the batch.
func (h *HandlerSet) HandleBulkUpdate(w http.ResponseWriter, req *http.Request) {

	if !h.requirePermission(w, req, session.PermOrdersEdit) {
		return
	}

	var data struct {
		OrderIDs []string     `json:"order_ids"`
		Updates  store.Update `json:"updates"`
	}
	if !h.parseBody(w, req, &data) {
		return
	}

	if data.Updates.AssignedTo != nil && !h.requirePermission(w, req, session.PermOrdersAssign) {
		return
	}

	h.writeJSON(w, h.orders.BulkUpdate(data.OrderIDs, data.Updates))
}

func (h *HandlerSet) parseBody(w http.ResponseWriter, req *http.Request, into any) bool {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
		return false
	}

	if err := json.Unmarshal(body, into); err != nil {
		http.Error(w, "Could not parse body",
			http.StatusBadRequest)
		return false
	}
	return true
}

func (h *HandlerSet) requirePermission(w http.ResponseWriter, req *http.Request, permission string) bool {
	claims, ok := auth.GetAuthenticatedUser(req)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return false
	}

	if !session.HasPermission(claims.Role, permission) {
		http.Error(w, "Permission denied", http.StatusForbidden)
		return false
	}
	return true
}

func (h *HandlerSet) handleStoreError(err error, w http.ResponseWriter) {

	var orderNotFound *store.OrderNotFoundError
	if errors.As(err, &orderNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var memberNotFound *store.TeamMemberNotFoundError
	if errors.As(err, &memberNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var validation *store.ValidationError
	if errors.As(err, &validation) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	logger.Error(err)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func (h *HandlerSet) writeJSON(w http.ResponseWriter, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	_, err = w.Write(response)
	if err != nil {
		http.Error(w, "Something went wrong",
			http.StatusInternalServerError)
	}
}

func parseFilters(req *http.Request) (query.Filters, error) {

	params := req.URL.Query()
	filters := query.Filters{
		Status:     params.Get("status"),
		Priority:   params.Get("priority"),
		AssignedTo: params.Get("assigned_to"),
		Search:     params.Get("search"),
	}

	from, err := parseDate(params.Get("date_from"))
	if err != nil {
		return filters, err
	}
	filters.DateFrom = from

	to, err := parseDate(params.Get("date_to"))
	if err != nil {
		return filters, err
	}
	filters.DateTo = to

	return filters, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("could not parse date " + value)
}
