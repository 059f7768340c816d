package v1handler

import (
	"net/http"

	"tasjeel/internal/registration"
)

// submissionRequest is the public registration form payload.
type submissionRequest struct {
	FullName      string `json:"fullName"`
	NationalID    string `json:"nationalId"`
	PhoneNumber   string `json:"phoneNumber"`
	Level         string `json:"level"`
	Center        string `json:"center"`
	ExamCommittee string `json:"examCommittee"`
	Address       string `json:"address"`
	GoldenPsalms  bool   `json:"goldenPsalms"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	stored, err := h.deps.Registrar.Register(r.Context(), registration.Submission{
		FullName:      req.FullName,
		NationalID:    req.NationalID,
		PhoneNumber:   req.PhoneNumber,
		Level:         req.Level,
		Center:        req.Center,
		ExamCommittee: req.ExamCommittee,
		Address:       req.Address,
		GoldenPsalms:  req.GoldenPsalms,
	})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, stored)
}
