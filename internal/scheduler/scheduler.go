package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cambix/currency-conversion-api/internal/logger"
	"github.com/cambix/currency-conversion-api/internal/models"
)

const (
	rateUpdateSpec  = "0 * * * *" // hourly
	dailyReportSpec = "0 0 * * *" // daily at midnight
)

// RateRefresher triggers the bulk provider refresh.
type RateRefresher interface {
	RefreshAllFromProviders(ctx context.Context) (int, error)
}

// DailyReporter builds and renders the prior day's report.
type DailyReporter interface {
	Daily(ctx context.Context, date time.Time) (*models.DailyReport, error)
	RenderPDF(report *models.DailyReport) ([]byte, error)
}

// Scheduler runs the fixed-interval jobs: hourly rate refresh and the daily
// report for the prior day. Jobs fire independently of request handling; a
// job failure is logged and never stops future firings.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]cron.EntryID
	rates   RateRefresher
	reports DailyReporter
	timeout time.Duration
}

func New(rates RateRefresher, reports DailyReporter, jobTimeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		entries: make(map[string]cron.EntryID),
		rates:   rates,
		reports: reports,
		timeout: jobTimeout,
	}
}

// Start registers both jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if err := s.StartJob(models.JobRateUpdate); err != nil {
		return err
	}
	if err := s.StartJob(models.JobDailyReport); err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.Infow("scheduler started",
		"jobs", []string{models.JobRateUpdate, models.JobDailyReport})
	return nil
}

// Stop halts the cron loop; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Log.Info("scheduler stopped")
}

// StartJob registers a single job by name. Registering a running job is a
// no-op.
func (s *Scheduler) StartJob(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; ok {
		return nil
	}

	var (
		id  cron.EntryID
		err error
	)
	switch name {
	case models.JobRateUpdate:
		id, err = s.cron.AddFunc(rateUpdateSpec, s.runRateUpdate)
	case models.JobDailyReport:
		id, err = s.cron.AddFunc(dailyReportSpec, s.runDailyReport)
	default:
		return fmt.Errorf("unknown cron job: %s", name)
	}
	if err != nil {
		return err
	}

	s.entries[name] = id
	logger.Log.Infow("cron job registered", "job", name)
	return nil
}

// StopJob removes a single job by name.
func (s *Scheduler) StopJob(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("unknown cron job: %s", name)
	}

	s.cron.Remove(id)
	delete(s.entries, name)
	logger.Log.Infow("cron job stopped", "job", name)
	return nil
}

// Status reports each known job's registration state and next fire time.
func (s *Scheduler) Status() map[string]models.JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := make(map[string]models.JobStatus, 2)
	for _, name := range []string{models.JobRateUpdate, models.JobDailyReport} {
		id, ok := s.entries[name]
		if !ok {
			status[name] = models.JobStatus{Running: false}
			continue
		}
		entry := s.cron.Entry(id)
		js := models.JobStatus{Running: true}
		if !entry.Next.IsZero() {
			next := entry.Next
			js.NextRun = &next
		}
		status[name] = js
	}
	return status
}

// RunRateUpdate exposes the refresh synchronously for on-demand invocation.
func (s *Scheduler) RunRateUpdate(ctx context.Context) (int, error) {
	return s.rates.RefreshAllFromProviders(ctx)
}

func (s *Scheduler) runRateUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	updated, err := s.rates.RefreshAllFromProviders(ctx)
	if err != nil {
		logger.Log.Errorw("scheduled rate update failed", "error", err)
		return
	}
	logger.Log.Infow("scheduled rate update completed", "updated", updated)
}

// runDailyReport builds yesterday's report and renders the PDF. Days with no
// conversions are skipped entirely.
func (s *Scheduler) runDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	report, err := s.reports.Daily(ctx, yesterday)
	if err != nil {
		logger.Log.Errorw("scheduled daily report failed", "error", err)
		return
	}
	if report.Statistics.TotalConversions == 0 {
		logger.Log.Infow("no conversions for day, skipping report", "date", report.Date)
		return
	}

	pdfBytes, err := s.reports.RenderPDF(report)
	if err != nil {
		logger.Log.Errorw("daily report rendering failed", "date", report.Date, "error", err)
		return
	}
	logger.Log.Infow("daily report generated",
		"date", report.Date,
		"conversions", report.Statistics.TotalConversions,
		"bytes", len(pdfBytes),
	)
}
