package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBoardReportJob *OrderBoardReportJob
}

// NewJobManager creates the manager. An empty reportSchedule leaves the report job out.
func NewJobManager(
	reportSchedule string,
	summaryHandler queries.GetOrderStatusSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reportSchedule != "" {
		jm.orderBoardReportJob = NewOrderBoardReportJob(reportSchedule, summaryHandler, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.orderBoardReportJob == nil {
		return nil
	}
	if err := jm.orderBoardReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order board report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderBoardReportJob != nil {
		jm.orderBoardReportJob.Stop()
	}
}
