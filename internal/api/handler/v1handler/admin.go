package v1handler

import (
	"net/http"
	"time"

	"tasjeel/internal/roster"
	"tasjeel/pkg/domain"
	"tasjeel/pkg/storage"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	token, session, err := h.deps.Sessions.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, loginResponse{
		Token:     token,
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// criteriaFromQuery builds filter criteria from the shared list/export query
// parameters.
func criteriaFromQuery(r *http.Request) roster.Criteria {
	q := r.URL.Query()

	return roster.Criteria{
		Query:     q.Get("q"),
		Center:    q.Get("center"),
		Level:     q.Get("level"),
		Committee: q.Get("committee"),
	}
}

type listResponse struct {
	Contestants []domain.Contestant `json:"contestants"`
	Total       int                 `json:"total"`
}

func (h *Handler) listContestants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Registry.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	rows = roster.Filter(rows, criteriaFromQuery(r))
	writeJSON(r.Context(), w, http.StatusOK, listResponse{Contestants: rows, Total: len(rows)})
}

// contestantPatch carries the mutable fields of an admin edit. Absent fields
// stay untouched; the national id is taken from the path and never patched.
type contestantPatch struct {
	FullName      *string `json:"fullName"`
	PhoneNumber   *string `json:"phoneNumber"`
	Level         *string `json:"level"`
	Center        *string `json:"center"`
	ExamCommittee *string `json:"examCommittee"`
	Address       *string `json:"address"`
	GoldenPsalms  *bool   `json:"goldenPsalms"`
}

func (h *Handler) updateContestant(w http.ResponseWriter, r *http.Request) {
	var patch contestantPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	updated, err := h.deps.Registry.Update(r.Context(), r.PathValue("nationalID"), storage.ContestantUpdates{
		FullName:      patch.FullName,
		PhoneNumber:   patch.PhoneNumber,
		Level:         patch.Level,
		Center:        patch.Center,
		ExamCommittee: patch.ExamCommittee,
		Address:       patch.Address,
		GoldenPsalms:  patch.GoldenPsalms,
	})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (h *Handler) deleteContestant(w http.ResponseWriter, r *http.Request) {
	if _, err := h.deps.Registry.Delete(r.Context(), r.PathValue("nationalID")); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportContestants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.deps.Registry.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	out := roster.ExportCSV(roster.Filter(rows, criteriaFromQuery(r)))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+roster.Filename(time.Now().UTC())+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
