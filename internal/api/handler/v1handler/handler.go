// Package v1handler implements the v1 HTTP handlers: the public registration
// endpoint and the authenticated admin surface over the contestant roster.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"tasjeel/internal/adminauth"
	"tasjeel/internal/registration"
	"tasjeel/internal/roster"
	"tasjeel/pkg/logger"
	"tasjeel/pkg/serrors"
)

// Deps are the service dependencies of the v1 handlers.
type Deps struct {
	// Registrar accepts public submissions.
	Registrar registration.Registrar
	// Registry serves the administrative roster operations.
	Registry roster.Registry
	// Sessions guards the admin surface.
	Sessions adminauth.Sessions
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 route table. Patterns carry the /v1 prefix so the
// result can be mounted directly on the server mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/contestants", h.register)

	mux.HandleFunc("POST /v1/admin/login", h.login)
	mux.HandleFunc("POST /v1/admin/logout", h.requireSession(h.logout))
	mux.HandleFunc("GET /v1/admin/contestants", h.requireSession(h.listContestants))
	mux.HandleFunc("GET /v1/admin/contestants/export", h.requireSession(h.exportContestants))
	mux.HandleFunc("PATCH /v1/admin/contestants/{nationalID}", h.requireSession(h.updateContestant))
	mux.HandleFunc("DELETE /v1/admin/contestants/{nationalID}", h.requireSession(h.deleteContestant))

	return mux
}

// errorResponse is the uniform error body of the v1 API.
type errorResponse struct {
	Error string `json:"error"`
	// Fields carries per-field validation messages when present.
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not encode response: "+err.Error())
	}
}

// writeError maps a service error to its transport status. Validation
// failures keep their per-field messages; everything without a semantic kind
// is logged and hidden behind a generic 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		status = http.StatusBadRequest
	case serrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	case serrors.ErrConflict, registration.ErrDuplicateRegistration:
		status = http.StatusConflict
	case serrors.ErrUnavailable:
		status = http.StatusServiceUnavailable
	}

	body := errorResponse{Error: err.Error()}

	var valErr *registration.ValidationError
	if errors.As(err, &valErr) {
		body.Fields = valErr.Fields
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
		body.Error = "internal error"
	} else if status == http.StatusServiceUnavailable {
		// store failures are logged with their cause but surfaced generically
		logger.Error(ctx, err.Error())
		body.Error = "temporarily unavailable, please retry"
	}

	writeJSON(ctx, w, status, body)
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
