package models

import "time"

// Scheduled job names.
const (
	JobRateUpdate  = "rateUpdate"
	JobDailyReport = "dailyReport"
)

// JobStatus reports whether a scheduled job is registered and when it fires next.
// swagger:model JobStatus
type JobStatus struct {
	Running bool       `json:"running"`
	NextRun *time.Time `json:"nextRun"`
}
