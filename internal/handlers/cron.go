package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// JobStatuser defines the status read the scheduler must implement.
type JobStatuser interface {
	Status() map[string]models.JobStatus
}

// RateUpdateRunner defines the on-demand refresh the scheduler must implement.
type RateUpdateRunner interface {
	RunRateUpdate(ctx context.Context) (int, error)
}

// JobController defines per-job start/stop the scheduler must implement.
type JobController interface {
	StartJob(name string) error
	StopJob(name string) error
}

// UpdateRatesResponse represents a successful on-demand refresh response
// swagger:model UpdateRatesResponse
type UpdateRatesResponse struct {
	// Success message
	// default: Rates updated
	Message string `json:"message"`

	// Number of pairs upserted
	// default: 42
	Updated int `json:"updated"`
}

// JobActionResponse represents a successful job start/stop response
// swagger:model JobActionResponse
type JobActionResponse struct {
	// Success message
	// default: Job started
	Message string `json:"message"`

	// Job name
	// default: rateUpdate
	Job string `json:"job"`
}

// NewCronStatusHandler returns an HTTP handler reporting scheduled jobs.
// @Summary Scheduled job status
// @Description Reports each cron job's registration state and next fire time.
// @Tags cron
// @Produce json
// @Success 200 {object} map[string]models.JobStatus "Job statuses"
// @Router /cron/status [get]
func NewCronStatusHandler(statuser JobStatuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statuser.Status())
	}
}

// NewCronUpdateRatesHandler returns an HTTP handler running the provider
// refresh synchronously.
// @Summary Refresh rates from providers
// @Description Pulls bulk snapshots from both external providers and upserts every pair found, synchronously.
// @Tags cron
// @Produce json
// @Success 200 {object} handlers.UpdateRatesResponse "Refresh result"
// @Failure 500 {object} handlers.ErrorResponse "Refresh failed"
// @Router /cron/update-rates [post]
func NewCronUpdateRatesHandler(runner RateUpdateRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := runner.RunRateUpdate(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UpdateRatesResponse{Message: "Rates updated", Updated: updated})
	}
}

// NewCronJobStartHandler returns an HTTP handler registering a cron job.
// @Summary Start a cron job
// @Description Registers the named job with the scheduler. Starting a running job is a no-op.
// @Tags cron
// @Produce json
// @Param name path string true "Job name: rateUpdate or dailyReport"
// @Success 200 {object} handlers.JobActionResponse "Started"
// @Failure 400 {object} handlers.ErrorResponse "Unknown job"
// @Router /cron/jobs/{name}/start [post]
func NewCronJobStartHandler(controller JobController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := controller.StartJob(name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, JobActionResponse{Message: "Job started", Job: name})
	}
}

// NewCronJobStopHandler returns an HTTP handler removing a cron job.
// @Summary Stop a cron job
// @Description Removes the named job from the scheduler.
// @Tags cron
// @Produce json
// @Param name path string true "Job name: rateUpdate or dailyReport"
// @Success 200 {object} handlers.JobActionResponse "Stopped"
// @Failure 400 {object} handlers.ErrorResponse "Unknown job"
// @Router /cron/jobs/{name}/stop [post]
func NewCronJobStopHandler(controller JobController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := controller.StopJob(name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, JobActionResponse{Message: "Job stopped", Job: name})
	}
}
