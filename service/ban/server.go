package ban

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// DeliveryLister is implemented by notify.Dispatcher
type DeliveryLister interface {
	ListDeliveries(ctx context.Context, customerID string) ([]model.MessageDeliveryStatus, error)
}

// Server is the admin HTTP adapter of IService.
// Expiry is left to the sweep and has no route.
type Server struct {
	service    IService
	deliveries DeliveryLister
	logger     *zap.Logger
}

// NewServer ...
func NewServer(service IService, deliveries DeliveryLister, logger *zap.Logger) *Server {
	return &Server{
		service:    service,
		deliveries: deliveries,
		logger:     logger,
	}
}

// Register adds the admin routes to the gateway mux
func (s *Server) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{method: http.MethodPost, pattern: "/api/v1/customers", handler: s.handleRegister},
		{method: http.MethodGet, pattern: "/api/v1/customers/{id}", handler: s.handleGetCustomer},
		{method: http.MethodGet, pattern: "/api/v1/customers/{id}/status", handler: s.handleGetStatus},
		{method: http.MethodGet, pattern: "/api/v1/customers/{id}/bans", handler: s.handleGetHistory},
		{method: http.MethodPost, pattern: "/api/v1/customers/{id}/bans", handler: s.handleImpose},
		{method: http.MethodPost, pattern: "/api/v1/customers/{id}/lift", handler: s.handleLift},
		{method: http.MethodGet, pattern: "/api/v1/customers/{id}/deliveries", handler: s.handleListDeliveries},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type statusResponse struct {
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
}

type imposeRequest struct {
	Reason       string `json:"reason"`
	DurationDays uint32 `json:"duration_days"`
	StaffID      string `json:"staff_id"`
}

type liftRequest struct {
	StaffID string `json:"staff_id"`
}

type banResponse struct {
	ID           int64      `json:"id"`
	CustomerID   string     `json:"customer_id"`
	Reason       string     `json:"reason"`
	BannedAt     time.Time  `json:"banned_at"`
	DurationDays uint32     `json:"duration_days"`
	ExpiresAt    *time.Time `json:"expires_at"`
	IsActive     bool       `json:"is_active"`
	BannedByID   string     `json:"banned_by_id"`
	RemovedAt    *time.Time `json:"removed_at"`
	RemovedByID  *string    `json:"removed_by_id"`
	RemovalKind  string     `json:"removal_kind"`
}

type deliveryResponse struct {
	ID           int64     `json:"id"`
	TemplateName string    `json:"template_name"`
	Channel      string    `json:"channel"`
	Recipient    string    `json:"recipient"`
	Attempt      int       `json:"attempt"`
	IsSuccessful bool      `json:"is_successful"`
	MessageID    *string   `json:"message_id"`
	ErrorText    *string   `json:"error_text"`
	SentAt       time.Time `json:"sent_at"`
}

func toCustomerResponse(c model.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt,
	}
}

func toBanResponse(r model.BanRecord) banResponse {
	resp := banResponse{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		Reason:       r.Reason,
		BannedAt:     r.BannedAt,
		DurationDays: r.DurationDays,
		IsActive:     r.IsActive,
		BannedByID:   r.BannedByID,
		RemovalKind:  r.RemovalKind.String(),
	}
	if r.ExpiresAt.Valid {
		t := r.ExpiresAt.Time
		resp.ExpiresAt = &t
	}
	if r.RemovedAt.Valid {
		t := r.RemovedAt.Time
		resp.RemovedAt = &t
	}
	if r.RemovedByID.Valid {
		id := r.RemovedByID.String
		resp.RemovedByID = &id
	}
	return resp
}

func toDeliveryResponse(d model.MessageDeliveryStatus) deliveryResponse {
	resp := deliveryResponse{
		ID:           d.ID,
		TemplateName: d.TemplateName,
		Channel:      d.Channel,
		Recipient:    d.Recipient,
		Attempt:      d.Attempt,
		IsSuccessful: d.IsSuccessful,
		SentAt:       d.SentAt,
	}
	if d.MessageID.Valid {
		id := d.MessageID.String
		resp.MessageID = &id
	}
	if d.ErrorText.Valid {
		text := d.ErrorText.String
		resp.ErrorText = &text
	}
	return resp
}

// httpStatus maps the sentinel errors to status codes
func httpStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) newContext(r *http.Request) context.Context {
	return otellib.ToContext(r.Context(), s.logger.With(
		zap.String("http.method", r.Method),
		zap.String("http.path", r.URL.Path),
	))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		otellib.Extract(ctx).Error("admin request failed", zap.Error(err))
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return validationError(err)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx := s.newContext(r)

	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	customer, err := s.service.Register(ctx, RegisterInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	customer, err := s.service.GetCustomer(ctx, params["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	status, err := s.service.GetCustomerStatus(ctx, params["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		CustomerID: params["id"],
		Status:     status.String(),
	})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	records, err := s.service.GetBanHistory(ctx, params["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	result := make([]banResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toBanResponse(record))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleImpose(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	var req imposeRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	record, err := s.service.ImposeBan(ctx, params["id"], req.Reason, req.DurationDays, req.StaffID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBanResponse(record))
}

func (s *Server) handleLift(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	var req liftRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	record, err := s.service.LiftBan(ctx, params["id"], req.StaffID)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBanResponse(record))
}

func (s *Server) handleListDeliveries(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ctx := s.newContext(r)

	if _, err := s.service.GetCustomer(ctx, params["id"]); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	deliveries, err := s.deliveries.ListDeliveries(ctx, params["id"])
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	result := make([]deliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		result = append(result, toDeliveryResponse(d))
	}
	writeJSON(w, http.StatusOK, result)
}
