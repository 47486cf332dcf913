package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/infrastructure/monitoring"

	"github.com/robfig/cron/v3"
)

const (
	defaultSnapshotSchedule = "*/15 * * * *"
	defaultSnapshotTimeout  = 2 * time.Minute
)

type Job interface {
	Run(ctx context.Context) error
}

// PortfolioSnapshotJob publishes the number of stored credits per status
// as a gauge.
type PortfolioSnapshotJob struct {
	repo    credit.CreditRepository
	publish func(map[string]int)
	logger  *slog.Logger
}

func NewPortfolioSnapshotJob(repo credit.CreditRepository, logger *slog.Logger) *PortfolioSnapshotJob {
	if repo == nil || logger == nil {
		panic("PortfolioSnapshotJob dependencies cannot be nil")
	}
	return &PortfolioSnapshotJob{
		repo:    repo,
		publish: monitoring.SetCreditsByStatus,
		logger:  logger.With("job", "PortfolioSnapshot"),
	}
}

func (j *PortfolioSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting portfolio snapshot job.")

	counts, err := j.repo.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count credits by status, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count credits: %w", err)
	}

	snapshot := make(map[string]int, len(counts))
	total := 0
	for status, n := range counts {
		snapshot[string(status)] = n
		total += n
	}
	j.publish(snapshot)

	j.logger.InfoContext(ctx, "Portfolio snapshot job finished successfully.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("total_credits", total),
		slog.Int("statuses", len(snapshot)),
	)
	return nil
}

// Schedule registers job on c with a cron expression; every run gets its own timeout.
func Schedule(c *cron.Cron, name, expr string, timeout time.Duration, job Job, logger *slog.Logger) (cron.EntryID, error) {
	if expr == "" {
		expr = defaultSnapshotSchedule
		logger.Warn("Batch schedule not configured, using default", "job_name", name, "schedule", expr)
	}
	if timeout <= 0 {
		timeout = defaultSnapshotTimeout
	}

	jobID, err := c.AddJob(expr, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", name)
		jobLogger.Info("Cron triggered: running job.")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if runErr := job.Run(ctx); runErr != nil {
			jobLogger.Error("Job finished with error", slog.Any("error", runErr))
		}
	}))
	if err != nil {
		return 0, fmt.Errorf("failed to schedule %s job with schedule %q: %w", name, expr, err)
	}

	logger.Info("Scheduled batch job", "job_name", name, "schedule", expr, "job_id", jobID)
	return jobID, nil
}
