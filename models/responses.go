package models

// DownloadResponse is returned by the control API after a download cycle.
type DownloadResponse struct {
	// Outcome is the coarsest result kind observed across regions.
	Outcome DownloadOutcome `json:"outcome"`

	// Status is the downloader state after the cycle, normally idle.
	Status DownloadStatus `json:"status"`
}

// StatusResponse reports the current downloader state.
type StatusResponse struct {
	Status DownloadStatus `json:"status"`
}

// MatchesResponse lists every stored match.
type MatchesResponse struct {
	Matches []TraceTimeIntervalMatch `json:"matches"`
	Length  int                      `json:"length"`
}

// CheckinsResponse lists every stored check-in.
type CheckinsResponse struct {
	Checkins []Checkin `json:"checkins"`
	Length   int       `json:"length"`
}

// SubmitRequest asks the client to upload its pending check-ins with the
// given transmission risk level (1..8).
type SubmitRequest struct {
	TransmissionRiskLevel int `json:"transmission_risk_level"`
}

// SubmissionPreviewResponse lists the reports a submission would upload.
type SubmissionPreviewResponse struct {
	Submissions []CheckinSubmission `json:"submissions"`
	Length      int                 `json:"length"`
}
