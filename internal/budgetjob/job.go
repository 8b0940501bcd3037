// Package budgetjob periodically recomputes the spent amount of every budget.
package budgetjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSpec runs the refresh at the start of every hour.
const DefaultSpec = "0 * * * *"

// Refresher recomputes budgets of all owners.
type Refresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// Job schedules Refresher runs.
type Job struct {
	cron      *cron.Cron
	refresher Refresher
	logger    zerolog.Logger
	timeout   time.Duration
}

// New returns Job running r on the standard cron spec.
func New(spec string, r Refresher, logger zerolog.Logger) (*Job, error) {
	if spec == "" {
		spec = DefaultSpec
	}

	j := &Job{
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		refresher: r,
		logger:    logger.With().Str("job", "budget_refresh").Logger(),
		timeout:   time.Minute,
	}

	if _, err := j.cron.AddFunc(spec, j.Run); err != nil {
		return nil, fmt.Errorf("invalid budget refresh spec %q: %w", spec, err)
	}

	return j, nil
}

// Run refreshes budgets once.
func (j *Job) Run() {
	ctx, cancel := context.WithTimeout(j.logger.WithContext(context.Background()), j.timeout)
	defer cancel()

	start := time.Now()

	n, err := j.refresher.RefreshAll(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("budget refresh failed")
		return
	}

	j.logger.Info().Int("changed", n).Dur("took", time.Since(start)).Msg("budgets refreshed")
}

// Start runs the schedule in its own goroutine.
func (j *Job) Start() {
	j.cron.Start()
}

// Stop stops the schedule and waits for a running refresh to finish.
func (j *Job) Stop() {
	<-j.cron.Stop().Done()
}
