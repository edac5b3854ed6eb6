package request

// CleanupRequest parameterizes one expiry/cleanup sweep. DaysOld defaults
// server-side when zero or absent.
type CleanupRequest struct {
	DaysOld int `json:"days_old"`
}

// BatchUpdateRequest parameterizes a batch market-average refresh. An
// empty assessment id list means every known assessment.
type BatchUpdateRequest struct {
	AssessmentIDs    []string `json:"assessment_ids"`
	ForceRecalculate bool     `json:"force_recalculate"`
}
