// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/utils"
	"github.com/MKhiriev/go-trace-warnings/models"
)

// startDownload runs one download cycle and blocks until it finishes. The
// cycle is detached from the request so a disconnecting caller does not
// abort it half way.
func (h *Handler) startDownload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	outcome, err := h.services.Downloader.StartDownload(context.WithoutCancel(r.Context()))
	if err != nil {
		log.Err(err).Str("func", "*Handler.startDownload").Msg("download cycle failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DownloadResponse{
		Outcome: outcome,
		Status:  h.services.Downloader.Status(),
	}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: h.services.Downloader.Status()}, http.StatusOK)
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	matches, err := h.services.Matcher.Matches(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMatches").Msg("error listing matches")
		http.Error(w, "error listing matches", statusFromError(err))
		return
	}
	if matches == nil {
		matches = []models.TraceTimeIntervalMatch{}
	}

	utils.WriteJSON(w, models.MatchesResponse{Matches: matches, Length: len(matches)}, http.StatusOK)
}

func (h *Handler) recordCheckin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var checkin models.Checkin
	if err := json.NewDecoder(r.Body).Decode(&checkin); err != nil {
		log.Err(err).Str("func", "*Handler.recordCheckin").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.Checkins.Record(r.Context(), checkin)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordCheckin").Msg("error recording checkin")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) listCheckins(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	checkins, err := h.services.Checkins.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCheckins").Msg("error listing checkins")
		http.Error(w, "error listing checkins", statusFromError(err))
		return
	}
	if checkins == nil {
		checkins = []models.Checkin{}
	}

	utils.WriteJSON(w, models.CheckinsResponse{Checkins: checkins, Length: len(checkins)}, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Submission.Submit(r.Context(), req.TransmissionRiskLevel); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("error submitting checkins")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) previewSubmission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	level, err := strconv.Atoi(r.URL.Query().Get("transmission_risk_level"))
	if err != nil {
		http.Error(w, "transmission_risk_level must be a number", http.StatusBadRequest)
		return
	}

	submissions, err := h.services.Submission.PrepareSubmission(r.Context(), level)
	if err != nil {
		log.Err(err).Str("func", "*Handler.previewSubmission").Msg("error preparing submission")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if submissions == nil {
		submissions = []models.CheckinSubmission{}
	}

	utils.WriteJSON(w, models.SubmissionPreviewResponse{Submissions: submissions, Length: len(submissions)}, http.StatusOK)
}
