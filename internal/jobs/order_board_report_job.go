package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBoardReportJob periodically logs the number of orders per status.
type OrderBoardReportJob struct {
	handler  queries.GetOrderStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBoardReportJob creates the job. schedule is parsed when the job starts.
func NewOrderBoardReportJob(
	schedule string,
	handler queries.GetOrderStatusSummaryQueryHandler,
	logger *slog.Logger,
) *OrderBoardReportJob {
	return &OrderBoardReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_board_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *OrderBoardReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order board report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderBoardReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order board report failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(summary.Statuses)+2)
	for _, s := range summary.Statuses {
		attrs = append(attrs, s.Status.String(), s.Count)
	}
	attrs = append(attrs, "total", summary.Total)

	j.logger.InfoContext(ctx, "Order board", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBoardReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order board report job stopped")
}
